package checkout

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/haatbazar/storefront/internal/storefront/backend"
	"github.com/haatbazar/storefront/internal/storefront/module"
)

// NewHTTPGateway builds the production order gateway from shared
// dependencies.
func NewHTTPGateway(deps module.Dependencies) OrderGateway {
	if deps.Backend == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: deps.Backend}
}

type httpGateway struct {
	client *backend.Client
}

func (g httpGateway) PlaceOrder(ctx context.Context, token string, placement OrderPlacement) (string, error) {
	products := make([]backend.OrderedProduct, 0, len(placement.Items))
	for _, item := range placement.Items {
		products = append(products, backend.OrderedProduct{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal.InexactFloat64(),
		})
	}
	order, err := g.client.CreateOrder(ctx, token, backend.OrderRequest{
		BuyerID:         placement.BuyerID,
		SellerID:        placement.SellerID,
		OrderedProducts: products,
		TotalPrice:      placement.TotalPrice.InexactFloat64(),
		ShippingAddress: placement.ShippingAddress,
		BillingAddress:  placement.BillingAddress,
		Status:          backend.OrderStatusPending,
	})
	if err != nil {
		return "", err
	}
	return order.ID, nil
}

func (g httpGateway) RecordTransaction(ctx context.Context, token, orderID string, amount decimal.Decimal) (string, error) {
	tx, err := g.client.CreateTransaction(ctx, token, backend.TransactionRequest{
		OrderID:     orderID,
		Amount:      amount.InexactFloat64(),
		PaymentType: backend.PaymentTypeCard,
		Status:      backend.TransactionStatusSuccess,
	})
	if err != nil {
		return "", err
	}
	return tx.ID, nil
}
