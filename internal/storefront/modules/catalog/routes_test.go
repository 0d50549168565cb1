package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haatbazar/storefront/internal/storefront/routepath"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(fakeGateway{})))
}

func TestRegisterRoutesCatalogPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(fakeGateway{})))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "product list", method: http.MethodGet, path: routepath.Products, wantStatus: http.StatusOK},
		{name: "product detail", method: http.MethodGet, path: routepath.Product("p1"), wantStatus: http.StatusOK},
		{name: "unknown product", method: http.MethodGet, path: routepath.Product("missing"), wantStatus: http.StatusNotFound},
		{name: "list post rejected", method: http.MethodPost, path: routepath.Products, wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}
