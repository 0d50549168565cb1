package catalog

import (
	"context"

	"github.com/haatbazar/storefront/internal/storefront/backend"
	"github.com/haatbazar/storefront/internal/storefront/module"
)

// NewHTTPGateway builds the production catalog gateway from shared
// dependencies.
func NewHTTPGateway(deps module.Dependencies) CatalogGateway {
	if deps.Backend == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: deps.Backend}
}

type httpGateway struct {
	client *backend.Client
}

func (g httpGateway) ListProducts(ctx context.Context) ([]ProductSummary, error) {
	products, err := g.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]ProductSummary, 0, len(products))
	for _, product := range products {
		summaries = append(summaries, productSummary(product))
	}
	return summaries, nil
}

func (g httpGateway) GetProduct(ctx context.Context, productID string) (ProductSummary, bool, error) {
	product, found, err := g.client.GetProduct(ctx, productID)
	if err != nil || !found {
		return ProductSummary{}, false, err
	}
	return productSummary(product), true, nil
}

func productSummary(product backend.Product) ProductSummary {
	return ProductSummary{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Image:       product.Image,
		Unit:        product.Unit,
		Price:       product.Price,
		Quantity:    product.Quantity,
		SellerID:    product.SellerID,
	}
}
