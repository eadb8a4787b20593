package api

import (
	"math"
	"sort"
	"strings"

	"github.com/dstapl/osrs-gph/internal/domain/market"
)

// MappingEntry is one item of the /mapping endpoint
type MappingEntry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Members  bool   `json:"members"`
	Limit    *int64 `json:"limit,omitempty"`
	Value    int64  `json:"value"`
	Examine  string `json:"examine,omitempty"`
	HighAlch *int64 `json:"highalch,omitempty"`
	LowAlch  *int64 `json:"lowalch,omitempty"`
}

// PricePoint is the instant-buy (high) and instant-sell (low) price of one item.
// Either side is nil when no trade happened in the window.
type PricePoint struct {
	High *int64
	Low  *int64
}

// rawPrice accepts both the /latest shape (high, low) and the averaged
// /5m and /1h shape (avgHighPrice, avgLowPrice)
type rawPrice struct {
	High         *int64 `json:"high"`
	Low          *int64 `json:"low"`
	HighTime     *int64 `json:"highTime"`
	LowTime      *int64 `json:"lowTime"`
	AvgHighPrice *int64 `json:"avgHighPrice"`
	AvgLowPrice  *int64 `json:"avgLowPrice"`
}

func (r rawPrice) point() PricePoint {
	p := PricePoint{High: r.High, Low: r.Low}
	if p.High == nil {
		p.High = r.AvgHighPrice
	}
	if p.Low == nil {
		p.Low = r.AvgLowPrice
	}
	return p
}

// ToItems joins mapping metadata with prices. The instant-buy price becomes the
// item's buy price and the instant-sell price its sell price. Entries with a
// blank name, a duplicate name or an out-of-range value are dropped; the second
// return value counts them. When names collide the lowest id wins.
func ToItems(mapping []MappingEntry, prices map[int]PricePoint) ([]*market.Item, int) {
	sorted := make([]MappingEntry, len(mapping))
	copy(sorted, mapping)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	items := make([]*market.Item, 0, len(sorted))
	seen := make(map[string]bool, len(sorted))
	dropped := 0

	for _, entry := range sorted {
		key := strings.ToLower(strings.TrimSpace(entry.Name))
		if key == "" || seen[key] {
			dropped++
			continue
		}

		price := prices[entry.ID]
		buy, okBuy := toPrice(price.High)
		sell, okSell := toPrice(price.Low)
		limit, okLimit := toPrice(entry.Limit)
		if !okBuy || !okSell || !okLimit {
			dropped++
			continue
		}

		item, err := market.NewItem(entry.ID, strings.TrimSpace(entry.Name), entry.Members, buy, sell, limit)
		if err != nil {
			dropped++
			continue
		}

		seen[key] = true
		items = append(items, item)
	}

	return items, dropped
}

// toPrice narrows an API integer to the item price width. nil stays nil.
func toPrice(v *int64) (*int32, bool) {
	if v == nil {
		return nil, true
	}
	if *v < 0 || *v > math.MaxInt32 {
		return nil, false
	}
	p := int32(*v)
	return &p, true
}
