// Package cart implements the buyer's in-progress order: an ordered
// collection of line items keyed by product id, persisted whole on every
// mutation so cart contents survive restarts and reloads.
package cart

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
	"github.com/haatbazar/storefront/internal/storefront/storage"
)

// Product carries the product attributes captured into a line item at add
// time. Display attributes are copied, not referenced; they can go stale if
// the product changes later.
type Product struct {
	ID           string
	Name         string
	Image        string
	Unit         string
	PricePerUnit decimal.Decimal
	SellerID     string
}

// LineItem is one product's presence in the cart.
//
// Total always equals Price * Quantity; it is recomputed on every quantity
// change rather than stored authoritatively.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	SellerID  string          `json:"seller_id"`
}

// Engine is the single source of truth for one cart. It is hydrated from
// the snapshot store, mutated through its methods, and re-serialized whole
// after every mutation.
//
// An Engine is request-scoped: it is not safe for concurrent use, and two
// engines loaded from the same key race on the snapshot (last writer wins),
// mirroring the whole-document persistence model.
type Engine struct {
	store storage.CartStore
	key   string
	items []LineItem
}

// Load hydrates a cart engine from the snapshot store. A missing or
// unparsable snapshot degrades to an empty cart rather than failing.
func Load(ctx context.Context, store storage.CartStore, cartKey string) (*Engine, error) {
	cartKey = strings.TrimSpace(cartKey)
	if store == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "cart store is not configured")
	}
	if cartKey == "" {
		return nil, apperrors.E(apperrors.KindInvalidInput, "cart key is required")
	}

	engine := &Engine{store: store, key: cartKey, items: []LineItem{}}

	payload, found, err := store.GetCartSnapshot(ctx, cartKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return engine, nil
	}

	var items []LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		// Corrupt snapshots are discarded, never propagated.
		return engine, nil
	}
	if items != nil {
		engine.items = items
	}
	return engine, nil
}

// AddToCart inserts a new line item, or merges quantities when the product
// is already present.
func (e *Engine) AddToCart(ctx context.Context, product Product, quantity int) error {
	productID := strings.TrimSpace(product.ID)
	if productID == "" {
		return apperrors.E(apperrors.KindInvalidInput, "product id is required")
	}
	if quantity <= 0 {
		return apperrors.E(apperrors.KindInvalidInput, "quantity must be positive")
	}
	if product.PricePerUnit.IsNegative() {
		return apperrors.E(apperrors.KindInvalidInput, "product price must not be negative")
	}

	for idx := range e.items {
		if e.items[idx].ProductID != productID {
			continue
		}
		e.items[idx].Quantity += quantity
		e.items[idx].Total = e.items[idx].Price.Mul(decimal.NewFromInt(int64(e.items[idx].Quantity)))
		return e.persist(ctx)
	}

	e.items = append(e.items, LineItem{
		ProductID: productID,
		Name:      product.Name,
		Image:     product.Image,
		Unit:      product.Unit,
		Price:     product.PricePerUnit,
		Quantity:  quantity,
		Total:     product.PricePerUnit.Mul(decimal.NewFromInt(int64(quantity))),
		SellerID:  strings.TrimSpace(product.SellerID),
	})
	return e.persist(ctx)
}

// RemoveFromCart deletes the matching line item. Removing an absent product
// is a no-op, not an error, and writes nothing.
func (e *Engine) RemoveFromCart(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	kept := e.items[:0]
	for _, item := range e.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(e.items) {
		return nil
	}
	e.items = kept
	return e.persist(ctx)
}

// UpdateQuantity replaces the quantity and recomputes the total for the
// matching line item. Unknown product ids are a no-op and write nothing.
func (e *Engine) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return apperrors.E(apperrors.KindInvalidInput, "quantity must be positive")
	}
	productID = strings.TrimSpace(productID)
	for idx := range e.items {
		if e.items[idx].ProductID != productID {
			continue
		}
		e.items[idx].Quantity = quantity
		e.items[idx].Total = e.items[idx].Price.Mul(decimal.NewFromInt(int64(quantity)))
		return e.persist(ctx)
	}
	return nil
}

// ClearCart empties the collection.
func (e *Engine) ClearCart(ctx context.Context) error {
	e.items = []LineItem{}
	return e.persist(ctx)
}

// Items returns the line items in insertion order.
func (e *Engine) Items() []LineItem {
	items := make([]LineItem, len(e.items))
	copy(items, e.items)
	return items
}

// CartTotal returns the sum of all line item totals; zero for an empty cart.
func (e *Engine) CartTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range e.items {
		total = total.Add(item.Total)
	}
	return total
}

// ItemCount returns the sum of all line item quantities; zero for an empty cart.
func (e *Engine) ItemCount() int {
	count := 0
	for _, item := range e.items {
		count += item.Quantity
	}
	return count
}

func (e *Engine) persist(ctx context.Context) error {
	items := e.items
	if items == nil {
		items = []LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return apperrors.E(apperrors.KindUnknown, "serialize cart")
	}
	return e.store.PutCartSnapshot(ctx, e.key, payload)
}
