// internal/api/gallery.go
package api

import (
	"context"
	"net/url"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

func (c *Client) ListGallery(ctx context.Context, organizationID string) ([]models.GalleryItem, error) {
	q := url.Values{"organizationId": {organizationID}}
	var out []models.GalleryItem
	if err := c.get(ctx, "/gallery", q, &out, "gallery"); err != nil {
		return nil, err
	}
	return out, nil
}

// AttachGalleryItem links an already-uploaded media URL to an organization.
func (c *Client) AttachGalleryItem(ctx context.Context, organizationID, mediaURL, kind, caption string) (*models.GalleryItem, error) {
	body := map[string]interface{}{
		"organizationId": organizationID,
		"url":            mediaURL,
		"kind":           kind,
		"caption":        caption,
	}
	var out models.GalleryItem
	if err := c.post(ctx, "/gallery", body, &out, "gallery"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteGalleryItem(ctx context.Context, id string) error {
	return c.delete(ctx, "/gallery/"+id, "gallery")
}
