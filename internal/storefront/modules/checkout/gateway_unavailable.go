package checkout

import (
	"context"

	"github.com/shopspring/decimal"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) PlaceOrder(context.Context, string, OrderPlacement) (string, error) {
	return "", apperrors.E(apperrors.KindUnavailable, "order backend is not configured")
}

func (unavailableGateway) RecordTransaction(context.Context, string, string, decimal.Decimal) (string, error) {
	return "", apperrors.E(apperrors.KindUnavailable, "order backend is not configured")
}
