package helpers

import (
	"context"
	"sync"

	"github.com/dstapl/osrs-gph/internal/domain/market"
)

// MockPriceSource is a test double for market.PriceSource
type MockPriceSource struct {
	mu sync.Mutex

	items []*market.Item
	err   error

	// Call tracking
	requested []market.Timespan
}

// NewMockPriceSource creates a source that serves the given items
func NewMockPriceSource(items ...*market.Item) *MockPriceSource {
	return &MockPriceSource{items: items}
}

// SetItems replaces the items served by later fetches
func (m *MockPriceSource) SetItems(items ...*market.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
}

// SetError makes every fetch fail with err (nil clears it)
func (m *MockPriceSource) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// FetchSnapshot implements market.PriceSource
func (m *MockPriceSource) FetchSnapshot(ctx context.Context, timespan market.Timespan) (*market.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requested = append(m.requested, timespan)
	if m.err != nil {
		return nil, m.err
	}
	return market.NewSnapshot(m.items, timespan, FixedTime), nil
}

// Requested returns the timespans fetched so far
func (m *MockPriceSource) Requested() []market.Timespan {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]market.Timespan(nil), m.requested...)
}

var _ market.PriceSource = (*MockPriceSource)(nil)
