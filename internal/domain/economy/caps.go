package economy

import "math"

// LimitedInput is an ingredient with the quantity one execution consumes and
// the item's buy limit, if it has one
type LimitedInput struct {
	Quantity float64
	Limit    int64
	HasLimit bool
}

// BuyLimitCeiling returns how many executions the inputs' buy limits allow in
// one budgeted hour: the smallest floor(limit / quantity) across limited inputs,
// divided by the reset divisor and kept at least 1.
// ok is false when no input is limited.
func BuyLimitCeiling(inputs []LimitedInput, divisor int64) (ceiling int64, ok bool) {
	ceiling = math.MaxInt64
	for _, in := range inputs {
		if !in.HasLimit || in.Quantity <= 0 {
			continue
		}
		perWindow := Floor(float64(in.Limit) / in.Quantity)
		if perWindow < ceiling {
			ceiling = perWindow
		}
		ok = true
	}
	if !ok {
		return 0, false
	}

	if divisor > 1 {
		ceiling /= divisor
	}
	return atLeastOne(ceiling), true
}

// SessionCap limits number so that number executions of timeSec fit in
// capSeconds. It never reduces number below 1.
func SessionCap(number int64, timeSec, capSeconds float64) int64 {
	if timeSec <= 0 || capSeconds <= 0 {
		return number
	}
	maxNumber := Floor(capSeconds / timeSec)
	if number > maxNumber {
		return atLeastOne(maxNumber)
	}
	return number
}
