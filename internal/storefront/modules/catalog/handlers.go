package catalog

import (
	"context"
	"net/http"
	"strings"

	"github.com/haatbazar/storefront/internal/storefront/platform/httpx"
)

// catalogService defines the service operations used by catalog handlers.
type catalogService interface {
	listProducts(ctx context.Context) ([]ProductSummary, error)
	getProduct(ctx context.Context, productID string) (ProductSummary, error)
}

type handlers struct {
	service catalogService
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.listProducts(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(r.PathValue("productID"))
	product, err := h.service.getProduct(httpx.RequestContext(r), productID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, product)
}
