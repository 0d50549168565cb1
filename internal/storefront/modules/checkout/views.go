package checkout

import "github.com/haatbazar/storefront/internal/storefront/checkout"

// OrderItemView is one drafted order line. Money travels as plain
// numbers on the wire.
type OrderItemView struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderDraftView is one seller's drafted order.
type OrderDraftView struct {
	SellerID   string          `json:"seller_id"`
	Items      []OrderItemView `json:"items"`
	TotalPrice float64         `json:"total_price"`
}

// DraftView is the checkout preview response body.
type DraftView struct {
	Orders          []OrderDraftView `json:"orders"`
	GrandTotal      float64          `json:"grand_total"`
	ShippingAddress string           `json:"shipping_address"`
}

// SellerOutcomeView reports what happened to one seller's order after
// the charge succeeded.
type SellerOutcomeView struct {
	SellerID      string  `json:"seller_id"`
	OrderID       string  `json:"order_id,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Error         string  `json:"error,omitempty"`
}

// PaymentResultView is the payment confirmation response body.
type PaymentResultView struct {
	PaymentReference string              `json:"payment_reference"`
	AmountCharged    float64             `json:"amount_charged"`
	Orders           []SellerOutcomeView `json:"orders"`
	CartCleared      bool                `json:"cart_cleared"`
}

func draftView(groups []checkout.SellerOrder, shippingAddress string) DraftView {
	view := DraftView{
		Orders:          make([]OrderDraftView, 0, len(groups)),
		GrandTotal:      checkout.GrandTotal(groups).InexactFloat64(),
		ShippingAddress: shippingAddress,
	}
	for _, group := range groups {
		draft := OrderDraftView{
			SellerID:   group.SellerID,
			Items:      make([]OrderItemView, 0, len(group.Items)),
			TotalPrice: group.TotalPrice.InexactFloat64(),
		}
		for _, item := range group.Items {
			draft.Items = append(draft.Items, OrderItemView{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Subtotal:  item.Subtotal.InexactFloat64(),
			})
		}
		view.Orders = append(view.Orders, draft)
	}
	return view
}
