package account

import (
	"context"
	"reflect"
)

// fakeGateway implements AccountGateway for tests with configurable
// return values and error injection.
type fakeGateway struct {
	profile      ProfileView
	orders       []OrderView
	complaints   []ComplaintView
	reviews      []ReviewView
	sellers      []SellerView
	cancelled    OrderView
	err          error
	lastBuyerID  string
	lastToken    string
	lastComplain ComplaintInput
	lastReview   ReviewInput
}

var _ AccountGateway = (*fakeGateway)(nil)

func (f *fakeGateway) Profile(_ context.Context, token string) (ProfileView, error) {
	f.lastToken = token
	if f.err != nil {
		return ProfileView{}, f.err
	}
	if f.profile == (ProfileView{}) {
		return ProfileView{ID: "b1", Name: "Test Buyer", Email: "buyer@example.com"}, nil
	}
	return f.profile, nil
}

func (f *fakeGateway) Orders(_ context.Context, token, buyerID string) ([]OrderView, error) {
	f.lastToken, f.lastBuyerID = token, buyerID
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

func (f *fakeGateway) CancelOrder(_ context.Context, token, orderID string) (OrderView, error) {
	f.lastToken = token
	if f.err != nil {
		return OrderView{}, f.err
	}
	if reflect.DeepEqual(f.cancelled, OrderView{}) {
		return OrderView{ID: orderID, Status: "CANCELLED"}, nil
	}
	return f.cancelled, nil
}

func (f *fakeGateway) Complaints(_ context.Context, token, buyerID string) ([]ComplaintView, error) {
	f.lastToken, f.lastBuyerID = token, buyerID
	if f.err != nil {
		return nil, f.err
	}
	return f.complaints, nil
}

func (f *fakeGateway) FileComplaint(_ context.Context, token, buyerID string, input ComplaintInput) (ComplaintView, error) {
	f.lastToken, f.lastBuyerID, f.lastComplain = token, buyerID, input
	if f.err != nil {
		return ComplaintView{}, f.err
	}
	return ComplaintView{ID: "c1", SellerID: input.SellerID, Message: input.Message}, nil
}

func (f *fakeGateway) Reviews(_ context.Context, token, buyerID string) ([]ReviewView, error) {
	f.lastToken, f.lastBuyerID = token, buyerID
	if f.err != nil {
		return nil, f.err
	}
	return f.reviews, nil
}

func (f *fakeGateway) PostReview(_ context.Context, token, buyerID string, input ReviewInput) (ReviewView, error) {
	f.lastToken, f.lastBuyerID, f.lastReview = token, buyerID, input
	if f.err != nil {
		return ReviewView{}, f.err
	}
	return ReviewView{ID: "r1", ProductID: input.ProductID, Rating: input.Rating, Text: input.Text}, nil
}

func (f *fakeGateway) Sellers(context.Context) ([]SellerView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sellers, nil
}
