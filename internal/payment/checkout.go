// internal/payment/checkout.go
package payment

import (
	"context"
	"net/url"
	"strings"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/errors"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
)

// Status is the gateway's outcome for one checkout attempt.
type Status string

const (
	StatusSuccessful Status = "successful"
	StatusCancelled  Status = "cancelled"
	StatusFailed     Status = "failed"
)

// Result is the parsed outcome of a gateway redirect.
type Result struct {
	Status        Status
	TransactionID string
}

// ParseRedirectURL inspects a URL the embedded checkout page navigated to
// and decides whether it is the gateway's completion redirect. ok is false
// for intermediate navigation that should be left alone.
//
// The successful case is decided by a substring match on the raw URL before
// any transaction id is extracted, so a redirect that carries
// "status=successful" anywhere counts as success even when the id is
// missing or the URL does not parse cleanly.
func ParseRedirectURL(raw string) (Result, bool) {
	if strings.Contains(raw, "status=successful") {
		return Result{Status: StatusSuccessful, TransactionID: extractTransactionID(raw)}, true
	}
	if strings.Contains(raw, "status=cancelled") {
		return Result{Status: StatusCancelled}, true
	}
	if strings.Contains(raw, "status=failed") {
		return Result{Status: StatusFailed, TransactionID: extractTransactionID(raw)}, true
	}
	return Result{}, false
}

func extractTransactionID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	q := u.Query()
	if id := q.Get("transaction_id"); id != "" {
		return id
	}
	// Some gateway redirects use the reference key instead.
	return q.Get("tx_ref")
}

// ==========================
// CHECKOUT FLOW
// ==========================

// Verifier confirms a transaction with the backend after the gateway
// reports success. *api.Client satisfies it.
type Verifier interface {
	VerifyTransaction(ctx context.Context, transactionID string) error
}

// Checkout ties redirect parsing to server-side verification.
type Checkout struct {
	verifier Verifier
	log      logger.Logger
}

func NewCheckout(verifier Verifier, log logger.Logger) *Checkout {
	return &Checkout{verifier: verifier, log: log}
}

// Complete handles the gateway's completion redirect. Successful redirects
// are verified against the backend before the flow may proceed; cancelled
// and failed redirects map to their respective errors. ok is false when the
// URL is not a completion redirect at all.
func (c *Checkout) Complete(ctx context.Context, rawURL string) (Result, bool, error) {
	result, ok := ParseRedirectURL(rawURL)
	if !ok {
		return Result{}, false, nil
	}

	switch result.Status {
	case StatusSuccessful:
		if err := c.verifier.VerifyTransaction(ctx, result.TransactionID); err != nil {
			c.log.WithError(err).Warn("transaction verification failed", map[string]interface{}{
				"transaction_id": result.TransactionID,
			})
			return result, true, err
		}
		return result, true, nil
	case StatusCancelled:
		return result, true, errors.NewPaymentCancelledError()
	default:
		return result, true, errors.NewPaymentFailedError("gateway reported failure")
	}
}
