// internal/api/catalog.go
package api

import (
	"context"
	"net/url"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

// CatalogResource is a typed handle on one catalog collection (industries,
// categories, commissions, services, roles, permissions). All of them share
// the same list/create/update/delete contract.
type CatalogResource struct {
	client *Client
	path   string
	name   string
}

func (c *Client) Industries() *CatalogResource {
	return &CatalogResource{client: c, path: "/industries", name: "industries"}
}

func (c *Client) Categories() *CatalogResource {
	return &CatalogResource{client: c, path: "/categories", name: "categories"}
}

func (c *Client) Commissions() *CatalogResource {
	return &CatalogResource{client: c, path: "/commissions", name: "commissions"}
}

func (c *Client) Services() *CatalogResource {
	return &CatalogResource{client: c, path: "/services", name: "services"}
}

func (c *Client) Roles() *CatalogResource {
	return &CatalogResource{client: c, path: "/roles", name: "roles"}
}

func (c *Client) Permissions() *CatalogResource {
	return &CatalogResource{client: c, path: "/permissions", name: "permissions"}
}

// Name identifies the resource in logs and error messages.
func (r *CatalogResource) Name() string {
	return r.name
}

// List returns all records, optionally filtered by a parent id (for
// example categories by industry).
func (r *CatalogResource) List(ctx context.Context, parentID string) ([]models.CatalogItem, error) {
	var q url.Values
	if parentID != "" {
		q = url.Values{"parentId": {parentID}}
	}
	var out []models.CatalogItem
	if err := r.client.get(ctx, r.path, q, &out, r.name); err != nil {
		return nil, err
	}
	return out, nil
}

// Create submits a new record and returns the stored copy.
func (r *CatalogResource) Create(ctx context.Context, fields map[string]interface{}) (*models.CatalogItem, error) {
	var out models.CatalogItem
	if err := r.client.post(ctx, r.path, fields, &out, r.name); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces fields of an existing record.
func (r *CatalogResource) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.CatalogItem, error) {
	var out models.CatalogItem
	if err := r.client.put(ctx, r.path+"/"+id, fields, &out, r.name); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a record by id.
func (r *CatalogResource) Delete(ctx context.Context, id string) error {
	return r.client.delete(ctx, r.path+"/"+id, r.name)
}
