package account

import (
	"context"
	"net/http"
	"strings"

	"github.com/haatbazar/storefront/internal/storefront/module"
	"github.com/haatbazar/storefront/internal/storefront/platform/httpx"
)

// accountService defines the service operations used by account handlers.
type accountService interface {
	profile(ctx context.Context, buyerID, token string) (ProfileView, error)
	orders(ctx context.Context, buyerID, token string) ([]OrderView, error)
	cancelOrder(ctx context.Context, buyerID, token, orderID string) (OrderView, error)
	complaints(ctx context.Context, buyerID, token string) ([]ComplaintView, error)
	fileComplaint(ctx context.Context, buyerID, token string, input ComplaintInput) (ComplaintView, error)
	reviews(ctx context.Context, buyerID, token string) ([]ReviewView, error)
	postReview(ctx context.Context, buyerID, token string, input ReviewInput) (ReviewView, error)
	sellers(ctx context.Context, buyerID string) ([]SellerView, error)
}

type handlers struct {
	service accountService
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) principal(r *http.Request) (context.Context, string, string) {
	return httpx.RequestContext(r), h.deps.UserID(r), h.deps.AuthToken(r)
}

func (h handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, buyerID, token := h.principal(r)
	profile, err := h.service.profile(ctx, buyerID, token)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, profile)
}

func (h handlers) handleOrders(w http.ResponseWriter, r *http.Request) {
	ctx, buyerID, token := h.principal(r)
	orders, err := h.service.orders(ctx, buyerID, token)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h handlers) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx, buyerID, token := h.principal(r)
	orderID := strings.TrimSpace(r.PathValue("orderID"))
	order, err := h.service.cancelOrder(ctx, buyerID, token, orderID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, order)
}

func (h handlers) handleComplaints(w http.ResponseWriter, r *http.Request) {
	ctx, buyerID, token := h.principal(r)
	complaints, err := h.service.complaints(ctx, buyerID, token)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"complaints": complaints})
}

func (h handlers) handleFileComplaint(w http.ResponseWriter, r *http.Request) {
	var input ComplaintInput
	if err := httpx.ReadJSON(r, &input); err != nil {
		httpx.WriteError(w, err)
		return
	}
	ctx, buyerID, token := h.principal(r)
	complaint, err := h.service.fileComplaint(ctx, buyerID, token, input)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusCreated, complaint)
}

func (h handlers) handleSellers(w http.ResponseWriter, r *http.Request) {
	ctx, buyerID, _ := h.principal(r)
	sellers, err := h.service.sellers(ctx, buyerID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"sellers": sellers})
}

func (h handlers) handleReviews(w http.ResponseWriter, r *http.Request) {
	ctx, buyerID, token := h.principal(r)
	reviews, err := h.service.reviews(ctx, buyerID, token)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}

func (h handlers) handlePostReview(w http.ResponseWriter, r *http.Request) {
	var input ReviewInput
	if err := httpx.ReadJSON(r, &input); err != nil {
		httpx.WriteError(w, err)
		return
	}
	ctx, buyerID, token := h.principal(r)
	review, err := h.service.postReview(ctx, buyerID, token, input)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusCreated, review)
}
