package account

import (
	"context"
	"testing"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
)

func TestEveryOperationRequiresSignedInBuyer(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	ctx := context.Background()

	checks := []struct {
		name string
		call func() error
	}{
		{"profile", func() error { _, err := svc.profile(ctx, " ", "t"); return err }},
		{"orders", func() error { _, err := svc.orders(ctx, "", "t"); return err }},
		{"cancel", func() error { _, err := svc.cancelOrder(ctx, "", "t", "o1"); return err }},
		{"complaints", func() error { _, err := svc.complaints(ctx, "", "t"); return err }},
		{"file complaint", func() error {
			_, err := svc.fileComplaint(ctx, "", "t", ComplaintInput{SellerID: "s1", Message: "late"})
			return err
		}},
		{"reviews", func() error { _, err := svc.reviews(ctx, "", "t"); return err }},
		{"post review", func() error {
			_, err := svc.postReview(ctx, "", "t", ReviewInput{ProductID: "p1", Rating: 5, Text: "good"})
			return err
		}},
		{"sellers", func() error { _, err := svc.sellers(ctx, ""); return err }},
	}
	for _, check := range checks {
		if err := check.call(); !apperrors.IsKind(err, apperrors.KindUnauthorized) {
			t.Fatalf("%s: err = %v, want unauthorized", check.name, err)
		}
	}
}

func TestOrdersReturnEmptySliceForNil(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	orders, err := svc.orders(context.Background(), "b1", "token-1")
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("orders = %v", orders)
	}
}

func TestSellersListForComplaintForm(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{sellers: []SellerView{
		{ID: "s1", Name: "Green Farm", Rating: 4.5},
		{ID: "s2", Name: "Hill Dairy"},
	}}
	svc := newService(gateway)
	sellers, err := svc.sellers(context.Background(), "b1")
	if err != nil {
		t.Fatalf("sellers: %v", err)
	}
	if len(sellers) != 2 || sellers[0].ID != "s1" || sellers[1].Name != "Hill Dairy" {
		t.Fatalf("sellers = %+v", sellers)
	}
}

func TestSellersReturnEmptySliceForNil(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	sellers, err := svc.sellers(context.Background(), "b1")
	if err != nil {
		t.Fatalf("sellers: %v", err)
	}
	if sellers == nil || len(sellers) != 0 {
		t.Fatalf("sellers = %v", sellers)
	}
}

func TestCancelOrderBlankIDIsNotFound(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	_, err := svc.cancelOrder(context.Background(), "b1", "token-1", "  ")
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCancelOrderMarksCancelled(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	order, err := svc.cancelOrder(context.Background(), "b1", "token-1", "o1")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if order.ID != "o1" || order.Status != "CANCELLED" {
		t.Fatalf("order = %+v", order)
	}
}

func TestFileComplaintValidation(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	ctx := context.Background()

	if _, err := svc.fileComplaint(ctx, "b1", "t", ComplaintInput{Message: "late"}); !apperrors.IsKind(err, apperrors.KindInvalidInput) {
		t.Fatalf("missing seller: err = %v", err)
	}
	if _, err := svc.fileComplaint(ctx, "b1", "t", ComplaintInput{SellerID: "s1", Message: "  "}); !apperrors.IsKind(err, apperrors.KindInvalidInput) {
		t.Fatalf("blank message: err = %v", err)
	}
}

func TestFileComplaintScopesToBuyer(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := newService(gateway)
	complaint, err := svc.fileComplaint(context.Background(), "b1", "token-1", ComplaintInput{SellerID: "s1", Message: "order never arrived"})
	if err != nil {
		t.Fatalf("file complaint: %v", err)
	}
	if complaint.SellerID != "s1" {
		t.Fatalf("complaint = %+v", complaint)
	}
	if gateway.lastBuyerID != "b1" || gateway.lastToken != "token-1" {
		t.Fatalf("gateway scope = %q %q", gateway.lastBuyerID, gateway.lastToken)
	}
}

func TestPostReviewValidation(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	ctx := context.Background()

	tests := []struct {
		name  string
		input ReviewInput
	}{
		{"missing product", ReviewInput{Rating: 5, Text: "good"}},
		{"blank text", ReviewInput{ProductID: "p1", Rating: 5, Text: " "}},
		{"rating too low", ReviewInput{ProductID: "p1", Rating: 0, Text: "good"}},
		{"rating too high", ReviewInput{ProductID: "p1", Rating: 6, Text: "good"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := svc.postReview(ctx, "b1", "t", tc.input); !apperrors.IsKind(err, apperrors.KindInvalidInput) {
				t.Fatalf("err = %v, want invalid input", err)
			}
		})
	}
}

func TestNilGatewayDegradesToUnavailable(t *testing.T) {
	t.Parallel()

	svc := newService(nil)
	_, err := svc.profile(context.Background(), "b1", "token-1")
	if !apperrors.IsKind(err, apperrors.KindUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}
