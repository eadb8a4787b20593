package persistence

import (
	"time"
)

// ItemPriceModel represents the item_prices table.
// One row per item of the current snapshot; nil prices mean the item did not
// trade in the snapshot's window.
type ItemPriceModel struct {
	ItemID        int    `gorm:"column:item_id;primaryKey;autoIncrement:false"`
	Name          string `gorm:"column:name;not null;index"`
	Members       bool   `gorm:"column:members;not null;default:false"`
	BuyPrice      *int32 `gorm:"column:buy_price"`
	SellPrice     *int32 `gorm:"column:sell_price"`
	PurchaseLimit *int32 `gorm:"column:purchase_limit"`
}

func (ItemPriceModel) TableName() string {
	return "item_prices"
}

// SnapshotMetaModel represents the snapshot_meta table. It holds at most one row.
type SnapshotMetaModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement:false"`
	Timespan  string    `gorm:"column:timespan;not null"`
	FetchedAt time.Time `gorm:"column:fetched_at;not null"`
	ItemCount int       `gorm:"column:item_count;not null"`
}

func (SnapshotMetaModel) TableName() string {
	return "snapshot_meta"
}
