// internal/models/subscription.go
package models

// Package is a purchasable subscription tier.
type Package struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Durations []string `json:"durations"` // e.g. "monthly", "yearly"
	Features  []string `json:"features,omitempty"`
}

// ProfileData is the organization profile collected on the wizard's
// profile step.
type ProfileData struct {
	BusinessName  string `json:"businessName"`
	About         string `json:"about,omitempty"`
	LogoURL       string `json:"logoUrl,omitempty"`
	PublicProfile bool   `json:"publicProfile"`
	WantsVerified bool   `json:"wantsVerified"`
}

// PaymentSummary is the amount breakdown carried into the payment steps.
type PaymentSummary struct {
	PackagePrice  float64 `json:"packagePrice"`
	LocationFee   float64 `json:"locationFee"`
	TotalAmount   float64 `json:"totalAmount"`
	PromoCode     string  `json:"promoCode,omitempty"`
	TransactionID string  `json:"transactionId,omitempty"`
}

// WizardState is the parameter set accumulated across the subscription
// wizard. It is never persisted; leaving the flow discards it.
type WizardState struct {
	SelectedPackage  *Package           `json:"selectedPackage,omitempty"`
	SelectedDuration string             `json:"selectedDuration,omitempty"`
	PromoCode        string             `json:"promoCode,omitempty"`
	ProfileData      *ProfileData       `json:"profileData,omitempty"`
	LocationData     *LocationSelection `json:"locationData,omitempty"`
	PaymentSummary   PaymentSummary     `json:"paymentSummary"`
}
