// internal/models/verification.go
package models

import "time"

// Verification is a field-agent-submitted record reviewed by an
// administrator for approval or rejection.
type Verification struct {
	ID             string             `json:"id"`
	OrganizationID string             `json:"organizationId"`
	AgentID        string             `json:"agentId"`
	Location       *LocationSelection `json:"location,omitempty"`
	PhotoURLs      []string           `json:"photoUrls,omitempty"`
	AttachmentURLs []string           `json:"attachmentUrls,omitempty"`
	Status         string             `json:"status"` // "pending" | "approved" | "rejected"
	Comment        string             `json:"comment,omitempty"`
	SubmittedAt    string             `json:"submittedAt,omitempty"`
	ReviewedAt     string             `json:"reviewedAt,omitempty"`
}

// PendingUpload is a locally staged image or video awaiting submission to
// the media host. It is discarded if the screen is exited before save.
type PendingUpload struct {
	ID        string    `json:"id"`
	LocalPath string    `json:"localPath"`
	Kind      string    `json:"kind"` // "image" | "video"
	CreatedAt time.Time `json:"createdAt"`
}
