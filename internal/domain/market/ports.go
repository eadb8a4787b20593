package market

import "context"

// ItemLookup resolves item names against a price snapshot
type ItemLookup interface {
	LookupItem(name string) (*Item, bool)
}

// SnapshotRepository persists the latest price snapshot
type SnapshotRepository interface {
	// ReplaceSnapshot atomically swaps the stored snapshot for the given one
	ReplaceSnapshot(ctx context.Context, snapshot *Snapshot) error

	// LoadSnapshot returns the stored snapshot, or ErrEmptyCatalogue when none exists
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
}

// PriceSource fetches a fresh snapshot from an upstream price provider
type PriceSource interface {
	FetchSnapshot(ctx context.Context, timespan Timespan) (*Snapshot, error)
}
