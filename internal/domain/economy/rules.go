package economy

import "fmt"

const (
	SecondsPerHour = 3600

	DefaultSecondsPerTick  = 0.6
	DefaultSessionCapHours = 6.0
	DefaultBuyLimitDivisor = 4
)

// Rules groups the modeled game's economy constants.
// They change with the game's economy updates, so they are configuration rather than literals.
type Rules struct {
	Tax             TaxPolicy
	SecondsPerTick  float64
	SessionCapHours float64 // Longest practical play session
	BuyLimitDivisor int64   // Buy limits reset every N hours; engine budgets for one of them
}

// DefaultRules returns the current economy constants
func DefaultRules() Rules {
	return Rules{
		Tax:             DefaultTaxPolicy(),
		SecondsPerTick:  DefaultSecondsPerTick,
		SessionCapHours: DefaultSessionCapHours,
		BuyLimitDivisor: DefaultBuyLimitDivisor,
	}
}

// Validate checks the rules are usable
func (r Rules) Validate() error {
	if err := r.Tax.Validate(); err != nil {
		return err
	}
	if r.SecondsPerTick <= 0 {
		return fmt.Errorf("%w: seconds per tick %v", ErrInvalidRules, r.SecondsPerTick)
	}
	if r.SessionCapHours <= 0 {
		return fmt.Errorf("%w: session cap %v hours", ErrInvalidRules, r.SessionCapHours)
	}
	if r.BuyLimitDivisor < 1 {
		return fmt.Errorf("%w: buy limit divisor %d", ErrInvalidRules, r.BuyLimitDivisor)
	}
	return nil
}

// SessionCapSeconds returns the session ceiling in seconds
func (r Rules) SessionCapSeconds() float64 {
	return r.SessionCapHours * SecondsPerHour
}
