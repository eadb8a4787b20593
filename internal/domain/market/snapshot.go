package market

import (
	"fmt"
	"strings"
	"time"
)

// Timespan selects which price aggregation a snapshot was built from
type Timespan string

const (
	TimespanLatest     Timespan = "latest"
	TimespanFiveMinute Timespan = "5m"
	TimespanOneHour    Timespan = "1h"
)

// ParseTimespan converts a configuration value into a Timespan
func ParseTimespan(s string) (Timespan, error) {
	switch Timespan(strings.ToLower(strings.TrimSpace(s))) {
	case TimespanLatest, "":
		return TimespanLatest, nil
	case TimespanFiveMinute:
		return TimespanFiveMinute, nil
	case TimespanOneHour:
		return TimespanOneHour, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTimespan, s)
	}
}

// Snapshot is the latest known set of item prices.
// Only one snapshot is kept; refreshing replaces it wholesale.
type Snapshot struct {
	items     []*Item
	timespan  Timespan
	fetchedAt time.Time
}

// NewSnapshot creates a snapshot from already-validated items
func NewSnapshot(items []*Item, timespan Timespan, fetchedAt time.Time) *Snapshot {
	copied := make([]*Item, len(items))
	copy(copied, items)
	return &Snapshot{
		items:     copied,
		timespan:  timespan,
		fetchedAt: fetchedAt,
	}
}

func (s *Snapshot) Items() []*Item {
	out := make([]*Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Snapshot) Timespan() Timespan { return s.timespan }

func (s *Snapshot) FetchedAt() time.Time { return s.fetchedAt }

// Catalogue indexes the snapshot for lookups
func (s *Snapshot) Catalogue(ignore []string) (*Catalogue, error) {
	return NewCatalogue(s.items, ignore)
}
