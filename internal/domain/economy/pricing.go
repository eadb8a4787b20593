package economy

import "github.com/shopspring/decimal"

// LineItem is one priced quantity on a bill
type LineItem struct {
	Price    int64
	Quantity float64
}

// Total returns price times quantity, floored
func (l LineItem) Total() int64 {
	return Floor(float64(l.Price) * l.Quantity)
}

// TotalLinePrice sums the floored line totals.
// With a levy, each line is taxed on its own before summing, the way every
// sold output is a separate sale. A nil levy leaves the lines untaxed.
func TotalLinePrice(lines []LineItem, levy Levy) int64 {
	var total int64
	for _, line := range lines {
		amount := line.Total()
		if levy != nil {
			amount = levy.Apply(amount)
		}
		total += amount
	}
	return total
}

// MarginBuyPrice raises a purchase price by percent, floored, never below 1
// for a priced item.
// Bidding above market buys instantly.
func MarginBuyPrice(price int64, percent float64) int64 {
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(percent).Div(hundred))
	return adjust(price, factor)
}

// MarginSellPrice lowers a sale price by percent, floored, never below 1
// for a priced item.
// Asking below market sells instantly.
func MarginSellPrice(price int64, percent float64) int64 {
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(percent).Div(hundred))
	return adjust(price, factor)
}

func adjust(price int64, factor decimal.Decimal) int64 {
	if factor.Equal(decimal.NewFromInt(1)) {
		return price
	}
	adjusted := decimal.NewFromInt(price).Mul(factor).Floor().IntPart()
	if adjusted < 1 && price > 0 {
		return 1
	}
	return adjusted
}
