// Package checkout turns the cart into per-seller orders. A single card
// charge covers the whole cart; order and transaction creation then run
// per seller against the backend, and failures there are enumerated in
// the result rather than rolled back.
package checkout

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	cartengine "github.com/haatbazar/storefront/internal/storefront/cart"
	"github.com/haatbazar/storefront/internal/storefront/checkout"
	"github.com/haatbazar/storefront/internal/storefront/payment"
	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
	"github.com/haatbazar/storefront/internal/storefront/storage"
)

// Per-seller outcome statuses after payment confirmation.
const (
	OutcomeCompleted         = "completed"
	OutcomeOrderFailed       = "order_failed"
	OutcomeTransactionFailed = "transaction_failed"
)

// OrderPlacement carries one seller's order to the backend gateway.
type OrderPlacement struct {
	BuyerID         string
	SellerID        string
	Items           []checkout.OrderItem
	TotalPrice      decimal.Decimal
	ShippingAddress string
	BillingAddress  string
}

// OrderGateway places orders and records transactions against the
// backend.
type OrderGateway interface {
	PlaceOrder(ctx context.Context, token string, placement OrderPlacement) (string, error)
	RecordTransaction(ctx context.Context, token, orderID string, amount decimal.Decimal) (string, error)
}

type confirmInput struct {
	cartKey         string
	buyerID         string
	token           string
	shippingAddress string
	billingAddress  string
	card            payment.Card
}

type service struct {
	store     storage.CartStore
	gateway   OrderGateway
	processor payment.Processor
}

func newService(store storage.CartStore, gateway OrderGateway, processor payment.Processor) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{store: store, gateway: gateway, processor: processor}
}

func requireBuyerID(buyerID string) (string, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return "", apperrors.E(apperrors.KindUnauthorized, "sign in to check out")
	}
	return buyerID, nil
}

func requireShippingAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", apperrors.E(apperrors.KindInvalidInput, "shipping address is required")
	}
	return address, nil
}

// loadGroups hydrates the cart and partitions it by seller, rejecting an
// empty cart.
func (s service) loadGroups(ctx context.Context, cartKey string) (*cartengine.Engine, []checkout.SellerOrder, error) {
	engine, err := cartengine.Load(ctx, s.store, cartKey)
	if err != nil {
		return nil, nil, err
	}
	items := engine.Items()
	if len(items) == 0 {
		return nil, nil, apperrors.E(apperrors.KindInvalidInput, "cart is empty")
	}
	return engine, checkout.GroupBySeller(items), nil
}

func (s service) draft(ctx context.Context, cartKey, buyerID, shippingAddress string) (DraftView, error) {
	if _, err := requireBuyerID(buyerID); err != nil {
		return DraftView{}, err
	}
	shippingAddress, err := requireShippingAddress(shippingAddress)
	if err != nil {
		return DraftView{}, err
	}
	_, groups, err := s.loadGroups(ctx, cartKey)
	if err != nil {
		return DraftView{}, err
	}
	return draftView(groups, shippingAddress), nil
}

func (s service) confirm(ctx context.Context, input confirmInput) (PaymentResultView, error) {
	buyerID, err := requireBuyerID(input.buyerID)
	if err != nil {
		return PaymentResultView{}, err
	}
	shippingAddress, err := requireShippingAddress(input.shippingAddress)
	if err != nil {
		return PaymentResultView{}, err
	}
	if s.processor == nil {
		return PaymentResultView{}, apperrors.E(apperrors.KindUnavailable, "payment processor is not configured")
	}

	engine, groups, err := s.loadGroups(ctx, input.cartKey)
	if err != nil {
		return PaymentResultView{}, err
	}
	grandTotal := checkout.GrandTotal(groups)

	receipt, err := s.processor.Charge(ctx, input.card, grandTotal)
	if err != nil {
		return PaymentResultView{}, err
	}

	result := PaymentResultView{
		PaymentReference: receipt.Reference,
		AmountCharged:    receipt.Amount.InexactFloat64(),
		Orders:           make([]SellerOutcomeView, 0, len(groups)),
	}

	for _, group := range groups {
		outcome := SellerOutcomeView{
			SellerID: group.SellerID,
			Amount:   group.TotalPrice.InexactFloat64(),
		}
		orderID, err := s.gateway.PlaceOrder(ctx, input.token, OrderPlacement{
			BuyerID:         buyerID,
			SellerID:        group.SellerID,
			Items:           group.Items,
			TotalPrice:      group.TotalPrice,
			ShippingAddress: shippingAddress,
			BillingAddress:  strings.TrimSpace(input.billingAddress),
		})
		if err != nil {
			outcome.Status = OutcomeOrderFailed
			outcome.Error = err.Error()
			result.Orders = append(result.Orders, outcome)
			continue
		}
		outcome.OrderID = orderID

		transactionID, err := s.gateway.RecordTransaction(ctx, input.token, orderID, group.TotalPrice)
		if err != nil {
			outcome.Status = OutcomeTransactionFailed
			outcome.Error = err.Error()
			result.Orders = append(result.Orders, outcome)
			continue
		}
		outcome.TransactionID = transactionID
		outcome.Status = OutcomeCompleted
		result.Orders = append(result.Orders, outcome)
	}

	// The card has already been charged; the cart is done regardless of
	// per-seller order outcomes.
	result.CartCleared = engine.ClearCart(ctx) == nil

	return result, nil
}
