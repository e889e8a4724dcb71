// pkg/capability/registry_test.go
package capability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePreservesTableOrder(t *testing.T) {
	reg := Default()

	// Granted out of table order.
	caps := reg.Resolve([]string{"manage_users", "manage_organizations", "manage_industries"})
	require.Len(t, caps, 3)
	assert.Equal(t, "Organizations", caps[0].DisplayName)
	assert.Equal(t, "Industries", caps[1].DisplayName)
	assert.Equal(t, "Users", caps[2].DisplayName)
}

func TestResolveIgnoresUnknownPermissions(t *testing.T) {
	reg := Default()

	caps := reg.Resolve([]string{"manage_widgets", "verify_organizations"})
	require.Len(t, caps, 1)
	assert.Equal(t, "/verifications", caps[0].Route)

	assert.Empty(t, reg.Resolve(nil))
}

func TestAllows(t *testing.T) {
	reg := Default()
	assert.True(t, reg.Allows("manage_roles"))
	assert.False(t, reg.Allows("manage_widgets"))
}

func TestLoadRegistryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capabilities.json")
	payload := `{
		"version": "2",
		"capabilities": [
			{"permission": "manage_users", "displayName": "Users", "route": "/users"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, "2", reg.Version)
	require.Len(t, reg.Capabilities, 1)
	assert.Equal(t, "/users", reg.Capabilities[0].Route)

	_, err = LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
