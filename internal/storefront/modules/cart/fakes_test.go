package cart

import (
	"context"

	"github.com/shopspring/decimal"

	cartengine "github.com/haatbazar/storefront/internal/storefront/cart"
)

// fakeGateway implements ProductGateway for tests with a fixed product
// table and error injection.
type fakeGateway struct {
	products map[string]cartengine.Product
	err      error
}

var _ ProductGateway = fakeGateway{}

func (f fakeGateway) Product(_ context.Context, productID string) (cartengine.Product, bool, error) {
	if f.err != nil {
		return cartengine.Product{}, false, f.err
	}
	products := f.products
	if products == nil {
		products = map[string]cartengine.Product{
			"p1": {ID: "p1", Name: "Rice", Unit: "kg", PricePerUnit: decimal.NewFromInt(50), SellerID: "s1"},
			"p2": {ID: "p2", Name: "Lentils", Unit: "kg", PricePerUnit: decimal.NewFromInt(100), SellerID: "s2"},
		}
	}
	product, found := products[productID]
	return product, found, nil
}
