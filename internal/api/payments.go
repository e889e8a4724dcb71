// internal/api/payments.go
package api

import (
	"context"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

// CheckoutSession is the hosted-checkout page handed to the embedded web
// view. Completion is detected from the redirect URL, not from this call.
type CheckoutSession struct {
	CheckoutURL string `json:"checkoutUrl"`
	Reference   string `json:"reference"`
}

// InitiateCheckout opens a hosted checkout for the given amount.
func (c *Client) InitiateCheckout(ctx context.Context, amount float64, summary *models.PaymentSummary) (*CheckoutSession, error) {
	body := map[string]interface{}{
		"amount":  amount,
		"summary": summary,
	}
	var out CheckoutSession
	if err := c.post(ctx, "/payments/checkout", body, &out, "payments"); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyTransaction confirms a gateway transaction id with the backend and
// activates the subscription it paid for.
func (c *Client) VerifyTransaction(ctx context.Context, transactionID string) error {
	body := map[string]interface{}{"transactionId": transactionID}
	return c.post(ctx, "/payments/verify", body, nil, "payments")
}
