// internal/api/verifications.go
package api

import (
	"context"
	"net/url"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

func (c *Client) ListVerifications(ctx context.Context, status string) ([]models.Verification, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {status}}
	}
	var out []models.Verification
	if err := c.get(ctx, "/verifications", q, &out, "verifications"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitVerification(ctx context.Context, v *models.Verification) (*models.Verification, error) {
	var out models.Verification
	if err := c.post(ctx, "/verifications", v, &out, "verifications"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewVerification records an admin decision, "approved" or "rejected".
func (c *Client) ReviewVerification(ctx context.Context, id, decision, comment string) (*models.Verification, error) {
	body := map[string]interface{}{"status": decision, "comment": comment}
	var out models.Verification
	if err := c.put(ctx, "/verifications/"+id+"/review", body, &out, "verifications"); err != nil {
		return nil, err
	}
	return &out, nil
}
