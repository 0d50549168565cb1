package catalog

import (
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Products, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductPattern, h.handleDetail)
}
