package cart

import (
	"context"
	"net/http"
	"strings"

	"github.com/haatbazar/storefront/internal/storefront/module"
	"github.com/haatbazar/storefront/internal/storefront/platform/httpx"
)

// cartService defines the service operations used by cart handlers.
type cartService interface {
	view(ctx context.Context, cartKey string) (CartView, error)
	addItem(ctx context.Context, cartKey, productID string, quantity int) (CartView, error)
	updateItem(ctx context.Context, cartKey, productID string, quantity int) (CartView, error)
	removeItem(ctx context.Context, cartKey, productID string) (CartView, error)
	clear(ctx context.Context, cartKey string) (CartView, error)
}

type handlers struct {
	service cartService
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

// Reads never mint the cart cookie; a browser without one simply has an
// empty cart.
func (h handlers) handleView(w http.ResponseWriter, r *http.Request) {
	cartKey, ok := h.deps.CartKey(r)
	if !ok {
		_ = httpx.WriteJSON(w, http.StatusOK, emptyCartView())
		return
	}
	view, err := h.service.view(httpx.RequestContext(r), cartKey)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, view)
}

func (h handlers) handleSummary(w http.ResponseWriter, r *http.Request) {
	cartKey, ok := h.deps.CartKey(r)
	if !ok {
		_ = httpx.WriteJSON(w, http.StatusOK, emptyCartView().summary())
		return
	}
	view, err := h.service.view(httpx.RequestContext(r), cartKey)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, view.summary())
}

func (h handlers) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	cartKey := h.deps.MintCartKey(w, r)
	view, err := h.service.addItem(httpx.RequestContext(r), cartKey, req.ProductID, req.Quantity)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, view)
}

func (h handlers) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(r.PathValue("productID"))
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	cartKey := h.deps.MintCartKey(w, r)
	view, err := h.service.updateItem(httpx.RequestContext(r), cartKey, productID, req.Quantity)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, view)
}

func (h handlers) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(r.PathValue("productID"))
	cartKey, ok := h.deps.CartKey(r)
	if !ok {
		_ = httpx.WriteJSON(w, http.StatusOK, emptyCartView())
		return
	}
	view, err := h.service.removeItem(httpx.RequestContext(r), cartKey, productID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, view)
}

func (h handlers) handleClear(w http.ResponseWriter, r *http.Request) {
	cartKey, ok := h.deps.CartKey(r)
	if !ok {
		_ = httpx.WriteJSON(w, http.StatusOK, emptyCartView())
		return
	}
	view, err := h.service.clear(httpx.RequestContext(r), cartKey)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, view)
}
