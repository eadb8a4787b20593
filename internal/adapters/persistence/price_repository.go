package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dstapl/osrs-gph/internal/domain/market"
)

const (
	snapshotMetaID = 1
	insertBatch    = 500
)

// PriceRepositoryGORM stores the single current price snapshot using GORM
type PriceRepositoryGORM struct {
	db *gorm.DB
}

// NewPriceRepository creates a new GORM-based price repository
func NewPriceRepository(db *gorm.DB) *PriceRepositoryGORM {
	return &PriceRepositoryGORM{db: db}
}

// ReplaceSnapshot swaps the stored snapshot for the given one in one transaction.
// Readers see either the old snapshot or the new one, never a mix.
func (r *PriceRepositoryGORM) ReplaceSnapshot(ctx context.Context, snapshot *market.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot cannot be nil")
	}
	items := snapshot.Items()
	if len(items) == 0 {
		return market.ErrEmptyCatalogue
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&ItemPriceModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete old prices: %w", err)
		}

		records := make([]ItemPriceModel, len(items))
		for i, item := range items {
			records[i] = toModel(item)
		}
		if err := tx.CreateInBatches(&records, insertBatch).Error; err != nil {
			return fmt.Errorf("failed to insert prices: %w", err)
		}

		meta := SnapshotMetaModel{
			ID:        snapshotMetaID,
			Timespan:  string(snapshot.Timespan()),
			FetchedAt: snapshot.FetchedAt(),
			ItemCount: len(records),
		}
		if err := tx.Save(&meta).Error; err != nil {
			return fmt.Errorf("failed to save snapshot metadata: %w", err)
		}

		return nil
	})
}

// LoadSnapshot returns the stored snapshot, or ErrEmptyCatalogue when none was saved
func (r *PriceRepositoryGORM) LoadSnapshot(ctx context.Context) (*market.Snapshot, error) {
	db := r.db.WithContext(ctx)

	var meta SnapshotMetaModel
	if err := db.First(&meta, snapshotMetaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, market.ErrEmptyCatalogue
		}
		return nil, fmt.Errorf("failed to get snapshot metadata: %w", err)
	}

	var records []ItemPriceModel
	if err := db.Order("item_id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get prices: %w", err)
	}
	if len(records) == 0 {
		return nil, market.ErrEmptyCatalogue
	}

	items := make([]*market.Item, 0, len(records))
	for _, record := range records {
		item, err := market.NewItem(record.ItemID, record.Name, record.Members,
			record.BuyPrice, record.SellPrice, record.PurchaseLimit)
		if err != nil {
			return nil, fmt.Errorf("invalid item %d in database: %w", record.ItemID, err)
		}
		items = append(items, item)
	}

	return market.NewSnapshot(items, market.Timespan(meta.Timespan), meta.FetchedAt), nil
}

func toModel(item *market.Item) ItemPriceModel {
	model := ItemPriceModel{
		ItemID:  item.ID(),
		Name:    item.Name(),
		Members: item.Members(),
	}
	if p, ok := item.BuyPrice(); ok {
		model.BuyPrice = &p
	}
	if p, ok := item.SellPrice(); ok {
		model.SellPrice = &p
	}
	if l, ok := item.PurchaseLimit(); ok {
		model.PurchaseLimit = &l
	}
	return model
}
