// Package checkout partitions the flat cart into one order per seller.
// Each seller fulfills and bills its own lines independently, so checkout
// always produces a set of orders, never a single combined one.
package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/haatbazar/storefront/internal/storefront/cart"
)

// UnknownSellerID buckets line items that carry no seller identity.
// Upstream product data is not always populated consistently; grouping
// such lines together keeps checkout functional instead of failing.
const UnknownSellerID = "unknown"

// OrderItem is a cart line item reshaped into the backend order schema.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SellerOrder groups the cart lines fulfilled and billed by one seller.
type SellerOrder struct {
	SellerID   string          `json:"seller_id"`
	Items      []OrderItem     `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// GroupBySeller partitions line items by seller id. Groups appear in
// first-seen seller order; within a group, items keep their cart order.
// The sum of group totals always equals the cart total at grouping time.
func GroupBySeller(items []cart.LineItem) []SellerOrder {
	groups := make([]SellerOrder, 0)
	indexBySeller := make(map[string]int)

	for _, item := range items {
		sellerID := strings.TrimSpace(item.SellerID)
		if sellerID == "" {
			sellerID = UnknownSellerID
		}

		idx, seen := indexBySeller[sellerID]
		if !seen {
			idx = len(groups)
			indexBySeller[sellerID] = idx
			groups = append(groups, SellerOrder{
				SellerID:   sellerID,
				Items:      []OrderItem{},
				TotalPrice: decimal.Zero,
			})
		}

		groups[idx].Items = append(groups[idx].Items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Total,
		})
		groups[idx].TotalPrice = groups[idx].TotalPrice.Add(item.Total)
	}

	return groups
}

// GrandTotal returns the sum of all group totals; zero for no groups.
func GrandTotal(groups []SellerOrder) decimal.Decimal {
	total := decimal.Zero
	for _, group := range groups {
		total = total.Add(group.TotalPrice)
	}
	return total
}
