// Package payment defines the charge capability used during checkout.
// The storefront never talks to a real acquirer; the mock processor
// stands in for one and always approves well-formed charges.
package payment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
)

// TestCardNumber is the card number the demo environment accepts.
const TestCardNumber = "4111 1111 1111 1111"

// Card holds the details collected by the payment form.
type Card struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// Receipt records a completed charge.
type Receipt struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paid_at"`
}

// Processor charges a card for an amount. Implementations must be safe
// for concurrent use.
type Processor interface {
	Charge(ctx context.Context, card Card, amount decimal.Decimal) (Receipt, error)
}

// CardMock approves every charge with complete card details and a
// positive amount. It issues a unique reference per charge so receipts
// stay distinguishable.
type CardMock struct {
	now func() time.Time
}

var _ Processor = (*CardMock)(nil)

// NewCardMock returns a processor that always approves valid charges.
func NewCardMock() *CardMock {
	return &CardMock{now: time.Now}
}

// Charge validates the card details and amount and issues a receipt.
func (m *CardMock) Charge(_ context.Context, card Card, amount decimal.Decimal) (Receipt, error) {
	if m == nil {
		return Receipt{}, apperrors.E(apperrors.KindUnavailable, "payment processor is not configured")
	}
	if strings.TrimSpace(card.Number) == "" {
		return Receipt{}, apperrors.E(apperrors.KindInvalidInput, "card number is required")
	}
	if strings.TrimSpace(card.Expiry) == "" {
		return Receipt{}, apperrors.E(apperrors.KindInvalidInput, "card expiry is required")
	}
	if strings.TrimSpace(card.CVV) == "" {
		return Receipt{}, apperrors.E(apperrors.KindInvalidInput, "card cvv is required")
	}
	if !amount.IsPositive() {
		return Receipt{}, apperrors.E(apperrors.KindInvalidInput, "charge amount must be positive")
	}

	return Receipt{
		Reference: uuid.NewString(),
		Amount:    amount,
		PaidAt:    m.now().UTC(),
	}, nil
}
