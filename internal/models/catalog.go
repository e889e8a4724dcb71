// internal/models/catalog.go
package models

// CatalogItem is the uniform shape of the admin-managed reference records:
// industries, categories, commissions, services, roles, permissions.
// The client never owns these; they mirror API responses.
type CatalogItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ParentID    string   `json:"parentId,omitempty"` // e.g. category -> industry
	Rate        *float64 `json:"rate,omitempty"`     // commissions, percent in [0,100]
	Price       *float64 `json:"price,omitempty"`    // services
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// MatchesQuery reports whether the item matches a case-insensitive
// substring search on name or description.
func (c CatalogItem) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	return containsFold(c.Name, query) || containsFold(c.Description, query)
}
