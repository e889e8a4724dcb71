// internal/models/organization.go
package models

// Organization mirrors the backend's organization record.
type Organization struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	IndustryID string `json:"industryId,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
	Address    string `json:"address,omitempty"`
	LogoURL    string `json:"logoUrl,omitempty"`
	IsVerified bool   `json:"isVerified"`
	Status     string `json:"status,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// GalleryItem is an image or video attached to an organization profile.
type GalleryItem struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	URL            string `json:"url"`
	Kind           string `json:"kind"` // "image" | "video"
	Caption        string `json:"caption,omitempty"`
}
