package cart

import (
	"context"

	cartengine "github.com/haatbazar/storefront/internal/storefront/cart"
	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) Product(context.Context, string) (cartengine.Product, bool, error) {
	return cartengine.Product{}, false, apperrors.E(apperrors.KindUnavailable, "catalog backend is not configured")
}
