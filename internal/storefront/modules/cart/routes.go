package cart

import (
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Cart, h.handleView)
	mux.HandleFunc(http.MethodDelete+" "+routepath.Cart, h.handleClear)
	mux.HandleFunc(http.MethodGet+" "+routepath.CartSummary, h.handleSummary)
	mux.HandleFunc(http.MethodPost+" "+routepath.CartItems, h.handleAddItem)
	mux.HandleFunc(http.MethodPut+" "+routepath.CartItemPattern, h.handleUpdateItem)
	mux.HandleFunc(http.MethodDelete+" "+routepath.CartItemPattern, h.handleRemoveItem)
}
