package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/haatbazar/storefront/internal/storefront/backend"
	cartengine "github.com/haatbazar/storefront/internal/storefront/cart"
	"github.com/haatbazar/storefront/internal/storefront/module"
)

// NewHTTPGateway builds the production product gateway from shared
// dependencies.
func NewHTTPGateway(deps module.Dependencies) ProductGateway {
	if deps.Backend == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: deps.Backend}
}

type httpGateway struct {
	client *backend.Client
}

func (g httpGateway) Product(ctx context.Context, productID string) (cartengine.Product, bool, error) {
	product, found, err := g.client.GetProduct(ctx, productID)
	if err != nil || !found {
		return cartengine.Product{}, false, err
	}
	return cartengine.Product{
		ID:           product.ID,
		Name:         product.Name,
		Image:        product.Image,
		Unit:         product.Unit,
		PricePerUnit: decimal.NewFromFloat(product.Price),
		SellerID:     product.SellerID,
	}, true, nil
}
