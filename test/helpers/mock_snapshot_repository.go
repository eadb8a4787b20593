package helpers

import (
	"context"
	"sync"

	"github.com/dstapl/osrs-gph/internal/domain/market"
)

// MockSnapshotRepository is an in-memory market.SnapshotRepository
type MockSnapshotRepository struct {
	mu       sync.Mutex
	snapshot *market.Snapshot

	saveErr error
	saves   int
}

// NewMockSnapshotRepository creates a repository, optionally pre-loaded
func NewMockSnapshotRepository(snapshot *market.Snapshot) *MockSnapshotRepository {
	return &MockSnapshotRepository{snapshot: snapshot}
}

// SetSaveError makes ReplaceSnapshot fail with err (nil clears it)
func (m *MockSnapshotRepository) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *MockSnapshotRepository) ReplaceSnapshot(ctx context.Context, snapshot *market.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	if snapshot == nil || len(snapshot.Items()) == 0 {
		return market.ErrEmptyCatalogue
	}
	m.snapshot = snapshot
	m.saves++
	return nil
}

func (m *MockSnapshotRepository) LoadSnapshot(ctx context.Context) (*market.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snapshot == nil {
		return nil, market.ErrEmptyCatalogue
	}
	return m.snapshot, nil
}

// Saves returns how many snapshots were stored
func (m *MockSnapshotRepository) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

var _ market.SnapshotRepository = (*MockSnapshotRepository)(nil)
