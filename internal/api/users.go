// internal/api/users.go
package api

import (
	"context"
	"net/url"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

// CreatedUser is the create-user response: the stored record plus the
// server-generated password, shown once to the admin.
type CreatedUser struct {
	User     models.User `json:"user"`
	Password string      `json:"password"`
}

func (c *Client) ListUsers(ctx context.Context, roleID string) ([]models.User, error) {
	var q url.Values
	if roleID != "" {
		q = url.Values{"roleId": {roleID}}
	}
	var out []models.User
	if err := c.get(ctx, "/users", q, &out, "users"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, fields map[string]interface{}) (*CreatedUser, error) {
	var out CreatedUser
	if err := c.post(ctx, "/users", fields, &out, "users"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	var out models.User
	if err := c.put(ctx, "/users/"+id, fields, &out, "users"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/users/"+id, "users")
}

// UserPermissions returns the permission keys granted to the signed-in
// user; the capability table is evaluated against this list.
func (c *Client) UserPermissions(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/users/me/permissions", nil, &out, "permissions"); err != nil {
		return nil, err
	}
	return out, nil
}
