package account

import (
	"context"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
)

type unavailableGateway struct{}

func unavailableErr() error {
	return apperrors.E(apperrors.KindUnavailable, "account backend is not configured")
}

func (unavailableGateway) Profile(context.Context, string) (ProfileView, error) {
	return ProfileView{}, unavailableErr()
}

func (unavailableGateway) Orders(context.Context, string, string) ([]OrderView, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) CancelOrder(context.Context, string, string) (OrderView, error) {
	return OrderView{}, unavailableErr()
}

func (unavailableGateway) Complaints(context.Context, string, string) ([]ComplaintView, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) FileComplaint(context.Context, string, string, ComplaintInput) (ComplaintView, error) {
	return ComplaintView{}, unavailableErr()
}

func (unavailableGateway) Reviews(context.Context, string, string) ([]ReviewView, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) PostReview(context.Context, string, string, ReviewInput) (ReviewView, error) {
	return ReviewView{}, unavailableErr()
}

func (unavailableGateway) Sellers(context.Context) ([]SellerView, error) {
	return nil, unavailableErr()
}
