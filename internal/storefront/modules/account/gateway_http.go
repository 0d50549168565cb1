package account

import (
	"context"

	"github.com/haatbazar/storefront/internal/storefront/backend"
	"github.com/haatbazar/storefront/internal/storefront/module"
)

// NewHTTPGateway builds the production account gateway from shared
// dependencies.
func NewHTTPGateway(deps module.Dependencies) AccountGateway {
	if deps.Backend == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: deps.Backend}
}

type httpGateway struct {
	client *backend.Client
}

func (g httpGateway) Profile(ctx context.Context, token string) (ProfileView, error) {
	user, err := g.client.Profile(ctx, token)
	if err != nil {
		return ProfileView{}, err
	}
	return ProfileView{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Phone:   user.Phone,
	}, nil
}

func (g httpGateway) Orders(ctx context.Context, token, buyerID string) ([]OrderView, error) {
	orders, err := g.client.BuyerOrders(ctx, token, buyerID)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, orderView(order))
	}
	return views, nil
}

func (g httpGateway) CancelOrder(ctx context.Context, token, orderID string) (OrderView, error) {
	order, err := g.client.CancelOrder(ctx, token, orderID)
	if err != nil {
		return OrderView{}, err
	}
	return orderView(order), nil
}

func (g httpGateway) Complaints(ctx context.Context, token, buyerID string) ([]ComplaintView, error) {
	complaints, err := g.client.BuyerComplaints(ctx, token, buyerID)
	if err != nil {
		return nil, err
	}
	views := make([]ComplaintView, 0, len(complaints))
	for _, complaint := range complaints {
		views = append(views, ComplaintView{
			ID:        complaint.ID,
			SellerID:  complaint.SellerID,
			Message:   complaint.Message,
			Status:    complaint.Status,
			CreatedAt: complaint.CreatedAt,
		})
	}
	return views, nil
}

func (g httpGateway) FileComplaint(ctx context.Context, token, buyerID string, input ComplaintInput) (ComplaintView, error) {
	complaint, err := g.client.CreateComplaint(ctx, token, backend.ComplaintRequest{
		BuyerID:  buyerID,
		SellerID: input.SellerID,
		Message:  input.Message,
	})
	if err != nil {
		return ComplaintView{}, err
	}
	return ComplaintView{
		ID:        complaint.ID,
		SellerID:  complaint.SellerID,
		Message:   complaint.Message,
		Status:    complaint.Status,
		CreatedAt: complaint.CreatedAt,
	}, nil
}

func (g httpGateway) Reviews(ctx context.Context, token, buyerID string) ([]ReviewView, error) {
	reviews, err := g.client.BuyerReviews(ctx, token, buyerID)
	if err != nil {
		return nil, err
	}
	views := make([]ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, reviewView(review))
	}
	return views, nil
}

func (g httpGateway) PostReview(ctx context.Context, token, buyerID string, input ReviewInput) (ReviewView, error) {
	review, err := g.client.CreateReview(ctx, token, backend.ReviewRequest{
		BuyerID:   buyerID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Text:      input.Text,
	})
	if err != nil {
		return ReviewView{}, err
	}
	return reviewView(review), nil
}

func (g httpGateway) Sellers(ctx context.Context) ([]SellerView, error) {
	sellers, err := g.client.ListSellers(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]SellerView, 0, len(sellers))
	for _, seller := range sellers {
		views = append(views, SellerView{
			ID:     seller.ID,
			Name:   seller.Name,
			Rating: seller.Rating,
		})
	}
	return views, nil
}

func orderView(order backend.Order) OrderView {
	items := make([]OrderLineView, 0, len(order.OrderedProducts))
	for _, product := range order.OrderedProducts {
		items = append(items, OrderLineView{
			ProductID: product.ProductID,
			Quantity:  product.Quantity,
			Subtotal:  product.Subtotal,
		})
	}
	return OrderView{
		ID:              order.ID,
		SellerID:        order.SellerID,
		Items:           items,
		TotalPrice:      order.TotalPrice,
		ShippingAddress: order.ShippingAddress,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
	}
}

func reviewView(review backend.Review) ReviewView {
	return ReviewView{
		ID:        review.ID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
}
