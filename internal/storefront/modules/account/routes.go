package account

import (
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountProfile, h.handleProfile)
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountOrders, h.handleOrders)
	mux.HandleFunc(http.MethodPost+" "+routepath.AccountOrderCancelPattern, h.handleCancelOrder)
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountComplaints, h.handleComplaints)
	mux.HandleFunc(http.MethodPost+" "+routepath.AccountComplaints, h.handleFileComplaint)
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountReviews, h.handleReviews)
	mux.HandleFunc(http.MethodPost+" "+routepath.AccountReviews, h.handlePostReview)
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountSellers, h.handleSellers)
}
