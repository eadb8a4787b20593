package profit

import (
	"github.com/dstapl/osrs-gph/internal/domain/economy"
)

// HiddenMarker is appended to the name of rows kept only because hidden rows are shown
const HiddenMarker = " #"

// RowParams carries the fields of an OverviewRow
type RowParams struct {
	Name         string
	Members      bool
	PayOnceTotal *int64
	Cost         int64
	Revenue      int64
	Profit       int64
	TimeSec      *float64
	Number       int64
	TimeMode     economy.TimeMode
}

// OverviewRow is the per-recipe summary: profit per execution, how long one
// execution takes and how many executions the budget allows.
// It is a value; copies never alias the catalogues.
type OverviewRow struct {
	name         string
	members      bool
	payOnceTotal *int64
	cost         int64
	revenue      int64
	profit       int64
	timeSec      *float64
	number       int64
	timeMode     economy.TimeMode
	annotated    bool
}

// NewOverviewRow builds a row from its fields
func NewOverviewRow(p RowParams) OverviewRow {
	row := OverviewRow{
		name:     p.Name,
		members:  p.Members,
		cost:     p.Cost,
		revenue:  p.Revenue,
		profit:   p.Profit,
		number:   p.Number,
		timeMode: p.TimeMode,
	}
	if p.PayOnceTotal != nil {
		v := *p.PayOnceTotal
		row.payOnceTotal = &v
	}
	if p.TimeSec != nil {
		v := *p.TimeSec
		row.timeSec = &v
	}
	return row
}

func (r OverviewRow) Name() string { return r.name }

// Label is the display name, marked when the row is shown despite failing the visibility bar
func (r OverviewRow) Label() string {
	if r.annotated {
		return r.name + HiddenMarker
	}
	return r.name
}

func (r OverviewRow) RequiresMembership() bool { return r.members }

// PayOnceTotal returns the one-time cost, if the recipe has pay-once inputs
func (r OverviewRow) PayOnceTotal() (int64, bool) {
	if r.payOnceTotal == nil {
		return 0, false
	}
	return *r.payOnceTotal, true
}

// Cost is the untaxed input cost of one execution
func (r OverviewRow) Cost() int64 { return r.cost }

// Revenue is the taxed output value of one execution
func (r OverviewRow) Revenue() int64 { return r.revenue }

// Profit is revenue minus cost for one execution
func (r OverviewRow) Profit() int64 { return r.profit }

// TimeSec returns the effective seconds per execution, if established
func (r OverviewRow) TimeSec() (float64, bool) {
	if r.timeSec == nil {
		return 0, false
	}
	return *r.timeSec, true
}

// Number is the resolved execution count
func (r OverviewRow) Number() int64 { return r.number }

func (r OverviewRow) TimeMode() economy.TimeMode { return r.timeMode }

// Annotated reports whether the row failed the affordability or profit bar
func (r OverviewRow) Annotated() bool { return r.annotated }

// Viable reports whether the recipe can be executed at least once
func (r OverviewRow) Viable() bool { return r.number >= 1 }

// UpfrontCost is what a first execution needs in hand
func (r OverviewRow) UpfrontCost() int64 {
	payOnce, _ := r.PayOnceTotal()
	return r.cost + payOnce
}

// TotalGP is the profit of all executions
func (r OverviewRow) TotalGP() int64 {
	return r.profit * r.number
}

// NetGP is TotalGP less the one-time cost
func (r OverviewRow) NetGP() int64 {
	payOnce, _ := r.PayOnceTotal()
	return r.TotalGP() - payOnce
}

// TotalTimeSec is the time all executions take, 0 when unknown
func (r OverviewRow) TotalTimeSec() float64 {
	t, ok := r.TimeSec()
	if !ok {
		return 0
	}
	return t * float64(r.number)
}

// TotalTimeHours is the time all executions take in hours, rounded to 2dp
func (r OverviewRow) TotalTimeHours() float64 {
	t, ok := r.TimeSec()
	if !ok {
		return 0
	}
	hours, _ := economy.RecipeTimeHours(t, r.number, r.profit, false)
	return hours
}

// GPH is the profit per hour of one execution's pace, 0 when time is unknown
func (r OverviewRow) GPH() int64 {
	t, ok := r.TimeSec()
	if !ok || t <= 0 {
		return 0
	}
	return economy.Floor(economy.SecondsPerHour * float64(r.profit) / t)
}

func (r OverviewRow) withAnnotation() OverviewRow {
	r.annotated = true
	return r
}
