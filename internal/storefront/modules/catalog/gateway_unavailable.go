package catalog

import (
	"context"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListProducts(context.Context) ([]ProductSummary, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "catalog backend is not configured")
}

func (unavailableGateway) GetProduct(context.Context, string) (ProductSummary, bool, error) {
	return ProductSummary{}, false, apperrors.E(apperrors.KindUnavailable, "catalog backend is not configured")
}
