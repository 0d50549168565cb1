package cart

import (
	cartengine "github.com/haatbazar/storefront/internal/storefront/cart"
)

// ItemView is a transport-safe cart line item. Money travels as plain
// numbers on the wire.
type ItemView struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
	SellerID  string  `json:"seller_id"`
}

// CartView is the full cart response body.
type CartView struct {
	Items     []ItemView `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

// SummaryView is the lightweight cart badge response body.
type SummaryView struct {
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

func emptyCartView() CartView {
	return CartView{Items: []ItemView{}}
}

func cartViewFromEngine(engine *cartengine.Engine) CartView {
	view := emptyCartView()
	for _, item := range engine.Items() {
		view.Items = append(view.Items, ItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Unit:      item.Unit,
			Price:     item.Price.InexactFloat64(),
			Quantity:  item.Quantity,
			Total:     item.Total.InexactFloat64(),
			SellerID:  item.SellerID,
		})
	}
	view.Total = engine.CartTotal().InexactFloat64()
	view.ItemCount = engine.ItemCount()
	return view
}

func (v CartView) summary() SummaryView {
	return SummaryView{Total: v.Total, ItemCount: v.ItemCount}
}
