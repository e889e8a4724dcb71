// internal/api/organizations.go
package api

import (
	"context"
	"net/url"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

func (c *Client) ListOrganizations(ctx context.Context, industryID string) ([]models.Organization, error) {
	var q url.Values
	if industryID != "" {
		q = url.Values{"industryId": {industryID}}
	}
	var out []models.Organization
	if err := c.get(ctx, "/organizations", q, &out, "organizations"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrganization(ctx context.Context, id string) (*models.Organization, error) {
	var out models.Organization
	if err := c.get(ctx, "/organizations/"+id, nil, &out, "organizations"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrganization(ctx context.Context, fields map[string]interface{}) (*models.Organization, error) {
	var out models.Organization
	if err := c.post(ctx, "/organizations", fields, &out, "organizations"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrganization(ctx context.Context, id string, fields map[string]interface{}) (*models.Organization, error) {
	var out models.Organization
	if err := c.put(ctx, "/organizations/"+id, fields, &out, "organizations"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrganization(ctx context.Context, id string) error {
	return c.delete(ctx, "/organizations/"+id, "organizations")
}

// ListPackages returns the purchasable subscription packages.
func (c *Client) ListPackages(ctx context.Context) ([]models.Package, error) {
	var out []models.Package
	if err := c.get(ctx, "/packages", nil, &out, "packages"); err != nil {
		return nil, err
	}
	return out, nil
}
