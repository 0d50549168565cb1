package checkout

import (
	"context"
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/module"
	"github.com/haatbazar/storefront/internal/storefront/payment"
	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
	"github.com/haatbazar/storefront/internal/storefront/platform/httpx"
)

// checkoutService defines the service operations used by checkout
// handlers.
type checkoutService interface {
	draft(ctx context.Context, cartKey, buyerID, shippingAddress string) (DraftView, error)
	confirm(ctx context.Context, input confirmInput) (PaymentResultView, error)
}

type handlers struct {
	service checkoutService
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) requestCartKey(r *http.Request) (string, error) {
	cartKey, ok := h.deps.CartKey(r)
	if !ok {
		return "", apperrors.E(apperrors.KindInvalidInput, "cart is empty")
	}
	return cartKey, nil
}

func (h handlers) handleDraft(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ShippingAddress string `json:"shipping_address"`
	}
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	cartKey, err := h.requestCartKey(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	view, err := h.service.draft(httpx.RequestContext(r), cartKey, h.deps.UserID(r), req.ShippingAddress)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, view)
}

func (h handlers) handlePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ShippingAddress string       `json:"shipping_address"`
		BillingAddress  string       `json:"billing_address"`
		Card            payment.Card `json:"card"`
	}
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	cartKey, err := h.requestCartKey(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	result, err := h.service.confirm(httpx.RequestContext(r), confirmInput{
		cartKey:         cartKey,
		buyerID:         h.deps.UserID(r),
		token:           h.deps.AuthToken(r),
		shippingAddress: req.ShippingAddress,
		billingAddress:  req.BillingAddress,
		card:            req.Card,
	})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, result)
}
