package market

import (
	"fmt"
	"strings"
)

const (
	// CoinsName is the currency pseudo-item every catalogue carries
	CoinsName = "Coins"
	// CoinsID is the item id the price API uses for coins
	CoinsID = 995
)

// Item represents one tradeable item in a price snapshot (immutable value object).
// Prices follow the player's perspective:
// - BuyPrice: what the player PAYS to acquire the item (instant-buy, "high")
// - SellPrice: what the player RECEIVES when selling the item (instant-sell, "low")
// Either price is absent when the item is illiquid in the snapshot.
type Item struct {
	id            int
	name          string
	members       bool
	buyPrice      *int32
	sellPrice     *int32
	purchaseLimit *int32 // Max quantity purchasable per reset window (nil = unbounded)
}

// NewItem creates a new Item with validation
func NewItem(id int, name string, members bool, buyPrice, sellPrice, purchaseLimit *int32) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidItemName
	}

	if buyPrice != nil && *buyPrice < 0 {
		return nil, fmt.Errorf("%w: buy price %d for %s", ErrInvalidPrice, *buyPrice, name)
	}
	if sellPrice != nil && *sellPrice < 0 {
		return nil, fmt.Errorf("%w: sell price %d for %s", ErrInvalidPrice, *sellPrice, name)
	}

	if purchaseLimit != nil && *purchaseLimit < 0 {
		return nil, fmt.Errorf("%w: %d for %s", ErrInvalidPurchaseLimit, *purchaseLimit, name)
	}

	return &Item{
		id:            id,
		name:          name,
		members:       members,
		buyPrice:      copyPrice(buyPrice),
		sellPrice:     copyPrice(sellPrice),
		purchaseLimit: copyPrice(purchaseLimit),
	}, nil
}

// NewCoinsItem returns the currency item, always worth exactly 1 on both sides
func NewCoinsItem() *Item {
	one := int32(1)
	return &Item{
		id:        CoinsID,
		name:      CoinsName,
		buyPrice:  &one,
		sellPrice: &one,
	}
}

func (i *Item) ID() int { return i.id }
func (i *Item) Name() string { return i.name }
func (i *Item) Members() bool { return i.members }

// BuyPrice returns the price paid when acquiring the item
func (i *Item) BuyPrice() (int32, bool) {
	if i.buyPrice == nil {
		return 0, false
	}
	return *i.buyPrice, true
}

// SellPrice returns the price received when selling the item
func (i *Item) SellPrice() (int32, bool) {
	if i.sellPrice == nil {
		return 0, false
	}
	return *i.sellPrice, true
}

// PurchaseLimit returns the per-window buy limit, if the item has one
func (i *Item) PurchaseLimit() (int32, bool) {
	if i.purchaseLimit == nil {
		return 0, false
	}
	return *i.purchaseLimit, true
}

// WithPrices returns a copy of the item carrying new prices
func (i *Item) WithPrices(buyPrice, sellPrice *int32) *Item {
	return &Item{
		id:            i.id,
		name:          i.name,
		members:       i.members,
		buyPrice:      copyPrice(buyPrice),
		sellPrice:     copyPrice(sellPrice),
		purchaseLimit: copyPrice(i.purchaseLimit),
	}
}

func copyPrice(p *int32) *int32 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
