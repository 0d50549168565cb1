// Package account serves the signed-in buyer's profile, order history,
// complaints, and reviews. All data lives in the backend; this module
// validates input and scopes every call to the authenticated buyer.
package account

import (
	"context"
	"strings"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
)

// ProfileView is the buyer profile response body.
type ProfileView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// OrderLineView is one line of a placed order.
type OrderLineView struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderView is one placed order in the buyer's history.
type OrderView struct {
	ID              string          `json:"id"`
	SellerID        string          `json:"seller_id"`
	Items           []OrderLineView `json:"items"`
	TotalPrice      float64         `json:"total_price"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"created_at,omitempty"`
}

// ComplaintView is one filed complaint.
type ComplaintView struct {
	ID        string `json:"id"`
	SellerID  string `json:"seller_id"`
	Message   string `json:"message"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ComplaintInput carries a new complaint.
type ComplaintInput struct {
	SellerID string `json:"seller_id"`
	Message  string `json:"message"`
}

// ReviewView is one posted review.
type ReviewView struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ReviewInput carries a new review.
type ReviewInput struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
}

// SellerView is one marketplace seller, listed so a complaint can name
// the accused seller.
type SellerView struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating,omitempty"`
}

// AccountGateway loads and mutates buyer-scoped backend state.
type AccountGateway interface {
	Profile(ctx context.Context, token string) (ProfileView, error)
	Orders(ctx context.Context, token, buyerID string) ([]OrderView, error)
	CancelOrder(ctx context.Context, token, orderID string) (OrderView, error)
	Complaints(ctx context.Context, token, buyerID string) ([]ComplaintView, error)
	FileComplaint(ctx context.Context, token, buyerID string, input ComplaintInput) (ComplaintView, error)
	Reviews(ctx context.Context, token, buyerID string) ([]ReviewView, error)
	PostReview(ctx context.Context, token, buyerID string, input ReviewInput) (ReviewView, error)
	Sellers(ctx context.Context) ([]SellerView, error)
}

type service struct {
	gateway AccountGateway
}

func newService(gateway AccountGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func requireBuyerID(buyerID string) (string, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return "", apperrors.E(apperrors.KindUnauthorized, "sign in to view your account")
	}
	return buyerID, nil
}

func (s service) profile(ctx context.Context, buyerID, token string) (ProfileView, error) {
	if _, err := requireBuyerID(buyerID); err != nil {
		return ProfileView{}, err
	}
	return s.gateway.Profile(ctx, token)
}

func (s service) orders(ctx context.Context, buyerID, token string) ([]OrderView, error) {
	buyerID, err := requireBuyerID(buyerID)
	if err != nil {
		return nil, err
	}
	orders, err := s.gateway.Orders(ctx, token, buyerID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		return []OrderView{}, nil
	}
	return orders, nil
}

func (s service) cancelOrder(ctx context.Context, buyerID, token, orderID string) (OrderView, error) {
	if _, err := requireBuyerID(buyerID); err != nil {
		return OrderView{}, err
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return OrderView{}, apperrors.E(apperrors.KindNotFound, "order not found")
	}
	return s.gateway.CancelOrder(ctx, token, orderID)
}

func (s service) complaints(ctx context.Context, buyerID, token string) ([]ComplaintView, error) {
	buyerID, err := requireBuyerID(buyerID)
	if err != nil {
		return nil, err
	}
	complaints, err := s.gateway.Complaints(ctx, token, buyerID)
	if err != nil {
		return nil, err
	}
	if complaints == nil {
		return []ComplaintView{}, nil
	}
	return complaints, nil
}

func (s service) fileComplaint(ctx context.Context, buyerID, token string, input ComplaintInput) (ComplaintView, error) {
	buyerID, err := requireBuyerID(buyerID)
	if err != nil {
		return ComplaintView{}, err
	}
	input.SellerID = strings.TrimSpace(input.SellerID)
	input.Message = strings.TrimSpace(input.Message)
	if input.SellerID == "" {
		return ComplaintView{}, apperrors.E(apperrors.KindInvalidInput, "seller id is required")
	}
	if input.Message == "" {
		return ComplaintView{}, apperrors.E(apperrors.KindInvalidInput, "complaint message is required")
	}
	return s.gateway.FileComplaint(ctx, token, buyerID, input)
}

func (s service) reviews(ctx context.Context, buyerID, token string) ([]ReviewView, error) {
	buyerID, err := requireBuyerID(buyerID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.gateway.Reviews(ctx, token, buyerID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		return []ReviewView{}, nil
	}
	return reviews, nil
}

func (s service) sellers(ctx context.Context, buyerID string) ([]SellerView, error) {
	if _, err := requireBuyerID(buyerID); err != nil {
		return nil, err
	}
	sellers, err := s.gateway.Sellers(ctx)
	if err != nil {
		return nil, err
	}
	if sellers == nil {
		return []SellerView{}, nil
	}
	return sellers, nil
}

func (s service) postReview(ctx context.Context, buyerID, token string, input ReviewInput) (ReviewView, error) {
	buyerID, err := requireBuyerID(buyerID)
	if err != nil {
		return ReviewView{}, err
	}
	input.ProductID = strings.TrimSpace(input.ProductID)
	input.Text = strings.TrimSpace(input.Text)
	if input.ProductID == "" {
		return ReviewView{}, apperrors.E(apperrors.KindInvalidInput, "product id is required")
	}
	if input.Text == "" {
		return ReviewView{}, apperrors.E(apperrors.KindInvalidInput, "review text is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return ReviewView{}, apperrors.E(apperrors.KindInvalidInput, "rating must be between 1 and 5")
	}
	return s.gateway.PostReview(ctx, token, buyerID, input)
}
