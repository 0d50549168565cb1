// Package cart serves the browser-scoped shopping cart over HTTP. The
// cart engine owns the mutation semantics; this module resolves products,
// loads the engine per request, and reshapes line items for the wire.
package cart

import (
	"context"

	cartengine "github.com/haatbazar/storefront/internal/storefront/cart"
	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
	"github.com/haatbazar/storefront/internal/storefront/storage"
)

// ProductGateway resolves the product attributes captured into a line
// item at add time.
type ProductGateway interface {
	Product(ctx context.Context, productID string) (cartengine.Product, bool, error)
}

type service struct {
	store   storage.CartStore
	gateway ProductGateway
}

func newService(store storage.CartStore, gateway ProductGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{store: store, gateway: gateway}
}

func (s service) view(ctx context.Context, cartKey string) (CartView, error) {
	engine, err := cartengine.Load(ctx, s.store, cartKey)
	if err != nil {
		return CartView{}, err
	}
	return cartViewFromEngine(engine), nil
}

func (s service) addItem(ctx context.Context, cartKey, productID string, quantity int) (CartView, error) {
	engine, err := cartengine.Load(ctx, s.store, cartKey)
	if err != nil {
		return CartView{}, err
	}
	product, found, err := s.gateway.Product(ctx, productID)
	if err != nil {
		return CartView{}, err
	}
	if !found {
		return CartView{}, apperrors.E(apperrors.KindNotFound, "product not found")
	}
	if err := engine.AddToCart(ctx, product, quantity); err != nil {
		return CartView{}, err
	}
	return cartViewFromEngine(engine), nil
}

func (s service) updateItem(ctx context.Context, cartKey, productID string, quantity int) (CartView, error) {
	engine, err := cartengine.Load(ctx, s.store, cartKey)
	if err != nil {
		return CartView{}, err
	}
	if err := engine.UpdateQuantity(ctx, productID, quantity); err != nil {
		return CartView{}, err
	}
	return cartViewFromEngine(engine), nil
}

func (s service) removeItem(ctx context.Context, cartKey, productID string) (CartView, error) {
	engine, err := cartengine.Load(ctx, s.store, cartKey)
	if err != nil {
		return CartView{}, err
	}
	if err := engine.RemoveFromCart(ctx, productID); err != nil {
		return CartView{}, err
	}
	return cartViewFromEngine(engine), nil
}

func (s service) clear(ctx context.Context, cartKey string) (CartView, error) {
	engine, err := cartengine.Load(ctx, s.store, cartKey)
	if err != nil {
		return CartView{}, err
	}
	if err := engine.ClearCart(ctx); err != nil {
		return CartView{}, err
	}
	return cartViewFromEngine(engine), nil
}
