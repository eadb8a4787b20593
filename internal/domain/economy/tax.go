package economy

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	DefaultTaxPercent   = 2.0
	DefaultFeeCap       = 5_000_000
	DefaultTaxThreshold = 50
)

var hundred = decimal.NewFromInt(100)

// Levy reduces a sale's proceeds by a tax
type Levy interface {
	Apply(amount int64) int64
}

// TaxPolicy is the grand exchange sales tax.
// Sales below Threshold are untaxed; above it the tax is Percent of the sale,
// floored, and never more than FeeCap.
type TaxPolicy struct {
	Percent   float64
	FeeCap    int64
	Threshold int64
}

// DefaultTaxPolicy returns the current sales tax
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{
		Percent:   DefaultTaxPercent,
		FeeCap:    DefaultFeeCap,
		Threshold: DefaultTaxThreshold,
	}
}

// Validate checks the policy is usable
func (p TaxPolicy) Validate() error {
	if p.Percent < 0 || p.Percent > 100 {
		return fmt.Errorf("%w: tax percent %v", ErrInvalidRules, p.Percent)
	}
	if p.FeeCap < 0 {
		return fmt.Errorf("%w: fee cap %d", ErrInvalidRules, p.FeeCap)
	}
	return nil
}

// Tax returns the levy owed on a sale of the given amount
func (p TaxPolicy) Tax(amount int64) int64 {
	if amount < p.Threshold {
		return 0
	}

	tax := decimal.NewFromInt(amount).
		Mul(decimal.NewFromFloat(p.Percent)).
		Div(hundred).
		Floor().
		IntPart()

	if tax > p.FeeCap {
		return p.FeeCap
	}
	return tax
}

// Apply returns the amount left after tax
func (p TaxPolicy) Apply(amount int64) int64 {
	return amount - p.Tax(amount)
}
