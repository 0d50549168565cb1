package checkout

import (
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.Checkout, h.handleDraft)
	mux.HandleFunc(http.MethodPost+" "+routepath.CheckoutPayment, h.handlePayment)
}
