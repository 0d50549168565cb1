package catalog

import "context"

// fakeGateway implements CatalogGateway for tests with configurable
// return values and error injection.
type fakeGateway struct {
	products []ProductSummary
	listErr  error
	getErr   error
}

var _ CatalogGateway = fakeGateway{}

func (f fakeGateway) ListProducts(context.Context) ([]ProductSummary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.products == nil {
		return []ProductSummary{{ID: "p1", Name: "Rice", Price: 50, SellerID: "s1"}}, nil
	}
	return f.products, nil
}

func (f fakeGateway) GetProduct(_ context.Context, productID string) (ProductSummary, bool, error) {
	if f.getErr != nil {
		return ProductSummary{}, false, f.getErr
	}
	products := f.products
	if products == nil {
		products = []ProductSummary{{ID: "p1", Name: "Rice", Price: 50, SellerID: "s1"}}
	}
	for _, product := range products {
		if product.ID == productID {
			return product, true, nil
		}
	}
	return ProductSummary{}, false, nil
}
