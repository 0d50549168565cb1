// Package catalog exposes marketplace listings through the storefront.
// The storefront holds no product data of its own; everything here is a
// reshaped read of the backend catalog.
package catalog

import (
	"context"
	"strings"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
)

// ProductSummary is a transport-safe product for storefront responses.
type ProductSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity,omitempty"`
	SellerID    string  `json:"seller_id"`
}

// CatalogGateway loads product summaries for catalog handlers.
type CatalogGateway interface {
	ListProducts(ctx context.Context) ([]ProductSummary, error)
	GetProduct(ctx context.Context, productID string) (ProductSummary, bool, error)
}

type service struct {
	gateway CatalogGateway
}

func newService(gateway CatalogGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) listProducts(ctx context.Context) ([]ProductSummary, error) {
	products, err := s.gateway.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		return []ProductSummary{}, nil
	}
	return products, nil
}

func (s service) getProduct(ctx context.Context, productID string) (ProductSummary, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ProductSummary{}, apperrors.E(apperrors.KindNotFound, "product not found")
	}
	product, found, err := s.gateway.GetProduct(ctx, productID)
	if err != nil {
		return ProductSummary{}, err
	}
	if !found {
		return ProductSummary{}, apperrors.E(apperrors.KindNotFound, "product not found")
	}
	return product, nil
}
