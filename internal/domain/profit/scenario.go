package profit

import (
	"fmt"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
)

// Scenario adjusts quoted prices before a recipe is costed
type Scenario interface {
	Label() string
	BuyPrice(quoted int64) int64
	SellPrice(quoted int64) int64
}

type baseScenario struct{}

// BaseScenario trades at the quoted prices
func BaseScenario() Scenario { return baseScenario{} }

func (baseScenario) Label() string                { return "base" }
func (baseScenario) BuyPrice(quoted int64) int64  { return quoted }
func (baseScenario) SellPrice(quoted int64) int64 { return quoted }

type marginScenario struct {
	percent float64
}

// MarginScenario buys percent above and sells percent below the quoted prices
func MarginScenario(percent float64) Scenario {
	return marginScenario{percent: percent}
}

func (m marginScenario) Label() string { return fmt.Sprintf("%v%% margin", m.percent) }

func (m marginScenario) BuyPrice(quoted int64) int64 {
	return economy.MarginBuyPrice(quoted, m.percent)
}

func (m marginScenario) SellPrice(quoted int64) int64 {
	return economy.MarginSellPrice(quoted, m.percent)
}
