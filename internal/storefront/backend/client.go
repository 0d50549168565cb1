// Package backend is the REST client for the marketplace backend. The
// storefront owns no catalog, order, or account data; every read and
// write in those domains goes through this client.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/haatbazar/storefront/internal/platform/timeouts"
)

var tracer = otel.Tracer("storefront/backend")

// Error is a non-2xx response from the backend. It carries the upstream
// status so the storefront can map it onto its own responses.
type Error struct {
	StatusCode int
	Message    string
}

// Error renders the upstream failure.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus returns the upstream status code.
func (e *Error) HTTPStatus() int {
	return e.StatusCode
}

// Client calls the marketplace backend over REST. Safe for concurrent
// use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a backend client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("backend base url is required")
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeouts.BackendRequest},
	}, nil
}

// ListProducts returns all marketplace listings.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct returns one listing; found is false when the backend does
// not know the product.
func (c *Client) GetProduct(ctx context.Context, productID string) (Product, bool, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Product{}, false, fmt.Errorf("product id is required")
	}
	var product Product
	err := c.do(ctx, http.MethodGet, "/products/"+productID, "", nil, &product)
	if err != nil {
		var backendErr *Error
		if errors.As(err, &backendErr) && backendErr.StatusCode == http.StatusNotFound {
			return Product{}, false, nil
		}
		return Product{}, false, fmt.Errorf("get product: %w", err)
	}
	return product, true, nil
}

// CreateOrder places a single-seller order.
func (c *Client) CreateOrder(ctx context.Context, token string, req OrderRequest) (Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, req, &order); err != nil {
		return Order{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// CancelOrder marks an order cancelled.
func (c *Client) CancelOrder(ctx context.Context, token, orderID string) (Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return Order{}, fmt.Errorf("order id is required")
	}
	body := struct {
		Status string `json:"status"`
	}{Status: OrderStatusCancelled}
	var order Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+orderID, token, body, &order); err != nil {
		return Order{}, fmt.Errorf("cancel order: %w", err)
	}
	return order, nil
}

// CreateTransaction records a payment against an order.
func (c *Client) CreateTransaction(ctx context.Context, token string, req TransactionRequest) (Transaction, error) {
	var tx Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", token, req, &tx); err != nil {
		return Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return tx, nil
}

// Login authenticates a buyer and returns the backend token + profile.
func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var auth AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &auth); err != nil {
		return AuthResponse{}, fmt.Errorf("login: %w", err)
	}
	return auth, nil
}

// Register creates a buyer account and returns the backend token +
// profile.
func (c *Client) Register(ctx context.Context, reg Registration) (AuthResponse, error) {
	var auth AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", reg, &auth); err != nil {
		return AuthResponse{}, fmt.Errorf("register: %w", err)
	}
	return auth, nil
}

// Profile returns the signed-in buyer's profile.
func (c *Client) Profile(ctx context.Context, token string) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &user); err != nil {
		return User{}, fmt.Errorf("profile: %w", err)
	}
	return user, nil
}

// BuyerOrders returns a buyer's order history.
func (c *Client) BuyerOrders(ctx context.Context, token, buyerID string) ([]Order, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return nil, fmt.Errorf("buyer id is required")
	}
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/buyers/"+buyerID+"/orders", token, nil, &orders); err != nil {
		return nil, fmt.Errorf("buyer orders: %w", err)
	}
	return orders, nil
}

// BuyerReviews returns the reviews a buyer has posted.
func (c *Client) BuyerReviews(ctx context.Context, token, buyerID string) ([]Review, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return nil, fmt.Errorf("buyer id is required")
	}
	var reviews []Review
	if err := c.do(ctx, http.MethodGet, "/buyers/"+buyerID+"/reviews", token, nil, &reviews); err != nil {
		return nil, fmt.Errorf("buyer reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview posts a product review.
func (c *Client) CreateReview(ctx context.Context, token string, req ReviewRequest) (Review, error) {
	var review Review
	if err := c.do(ctx, http.MethodPost, "/reviews", token, req, &review); err != nil {
		return Review{}, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// BuyerComplaints returns the complaints a buyer has filed.
func (c *Client) BuyerComplaints(ctx context.Context, token, buyerID string) ([]Complaint, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return nil, fmt.Errorf("buyer id is required")
	}
	var complaints []Complaint
	if err := c.do(ctx, http.MethodGet, "/complaints/buyer/"+buyerID, token, nil, &complaints); err != nil {
		return nil, fmt.Errorf("buyer complaints: %w", err)
	}
	return complaints, nil
}

// CreateComplaint files a complaint against a seller.
func (c *Client) CreateComplaint(ctx context.Context, token string, req ComplaintRequest) (Complaint, error) {
	var complaint Complaint
	if err := c.do(ctx, http.MethodPost, "/complaints", token, req, &complaint); err != nil {
		return Complaint{}, fmt.Errorf("create complaint: %w", err)
	}
	return complaint, nil
}

// ListSellers returns the marketplace sellers.
func (c *Client) ListSellers(ctx context.Context) ([]Seller, error) {
	var sellers []Seller
	if err := c.do(ctx, http.MethodGet, "/sellers", "", nil, &sellers); err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	return sellers, nil
}

// do performs one request against the backend. A non-nil body is sent
// as JSON; a non-nil out receives the decoded 2xx response body.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) (err error) {
	if c == nil || c.httpClient == nil {
		return fmt.Errorf("backend client is not configured")
	}

	ctx, span := tracer.Start(ctx, "backend."+method, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		))
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call backend: %w", err)
	}
	defer res.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &Error{StatusCode: res.StatusCode, Message: decodeErrorMessage(res.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// decodeErrorMessage extracts the backend's {"error": message} body when
// present; otherwise it returns whatever short text the body held.
func decodeErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(raw))
}
