package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// fakeGateway implements OrderGateway for tests with per-seller error
// injection and a record of what was placed.
type fakeGateway struct {
	mu            sync.Mutex
	placeErrs     map[string]error
	txErrs        map[string]error
	placements    []OrderPlacement
	transactions  map[string]decimal.Decimal
	nextOrderSeq  int
	nextTxSeq     int
	placedTokens  []string
	recordedOrder []string
}

var _ OrderGateway = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		placeErrs:    map[string]error{},
		txErrs:       map[string]error{},
		transactions: map[string]decimal.Decimal{},
	}
}

func (f *fakeGateway) PlaceOrder(_ context.Context, token string, placement OrderPlacement) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.placeErrs[placement.SellerID]; err != nil {
		return "", err
	}
	f.placements = append(f.placements, placement)
	f.placedTokens = append(f.placedTokens, token)
	f.nextOrderSeq++
	return fmt.Sprintf("order-%d", f.nextOrderSeq), nil
}

func (f *fakeGateway) RecordTransaction(_ context.Context, _ string, orderID string, amount decimal.Decimal) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.txErrs[orderID]; err != nil {
		return "", err
	}
	f.transactions[orderID] = amount
	f.recordedOrder = append(f.recordedOrder, orderID)
	f.nextTxSeq++
	return fmt.Sprintf("tx-%d", f.nextTxSeq), nil
}
