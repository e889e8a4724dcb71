// pkg/capability/schema.go
package capability

// Registry maps backend permission keys onto the screens and actions the
// app exposes. The mapping is declarative data, so adding a permission is a
// table entry, not a code change.
type Registry struct {
	Version      string       `json:"version"`
	LastUpdated  string       `json:"lastUpdated"`
	Capabilities []Capability `json:"capabilities"`
}

// Capability is one entry the user can reach when the matching permission
// was granted.
type Capability struct {
	Permission  string `json:"permission"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
	Route       string `json:"route"`
	Icon        string `json:"icon,omitempty"`
	Group       string `json:"group,omitempty"`
}
