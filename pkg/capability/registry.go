// pkg/capability/registry.go
package capability

import (
	"encoding/json"
	"os"
)

// LoadRegistry reads a capability registry from a JSON file, used when the
// table ships as a config asset instead of the built-in default.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg Registry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// Default is the built-in permission table.
func Default() *Registry {
	return &Registry{
		Version: "1",
		Capabilities: []Capability{
			{Permission: "manage_organizations", DisplayName: "Organizations", Route: "/organizations", Group: "records"},
			{Permission: "manage_industries", DisplayName: "Industries", Route: "/industries", Group: "catalog"},
			{Permission: "manage_categories", DisplayName: "Categories", Route: "/categories", Group: "catalog"},
			{Permission: "manage_commissions", DisplayName: "Commissions", Route: "/commissions", Group: "catalog"},
			{Permission: "manage_services", DisplayName: "Services", Route: "/services", Group: "catalog"},
			{Permission: "manage_roles", DisplayName: "Roles", Route: "/roles", Group: "access"},
			{Permission: "manage_permissions", DisplayName: "Permissions", Route: "/permissions", Group: "access"},
			{Permission: "manage_users", DisplayName: "Users", Route: "/users", Group: "access"},
			{Permission: "verify_organizations", DisplayName: "Verifications", Route: "/verifications", Group: "field"},
			{Permission: "review_verifications", DisplayName: "Verification Review", Route: "/verifications/review", Group: "field"},
			{Permission: "manage_gallery", DisplayName: "Gallery", Route: "/gallery", Group: "records"},
		},
	}
}

// Resolve returns the capabilities unlocked by the granted permission keys,
// preserving table order. Unknown keys are ignored; the mapping is resolved
// once per sign-in, not per navigation.
func (r *Registry) Resolve(granted []string) []Capability {
	set := make(map[string]struct{}, len(granted))
	for _, p := range granted {
		set[p] = struct{}{}
	}
	var out []Capability
	for _, cap := range r.Capabilities {
		if _, ok := set[cap.Permission]; ok {
			out = append(out, cap)
		}
	}
	return out
}

// Allows reports whether a single permission key unlocks anything.
func (r *Registry) Allows(permission string) bool {
	for _, cap := range r.Capabilities {
		if cap.Permission == permission {
			return true
		}
	}
	return false
}
