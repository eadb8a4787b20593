package profit

import (
	"fmt"
	"strconv"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
)

// BreakdownHeader names the columns of a merged breakdown table
var BreakdownHeader = []string{"Item", "Amount", "To Buy", "Price", "Total Price", "Total Time (h)", "GP/h"}

// mergeFrom is the first column whose cells combine both scenarios
const mergeFrom = 2

// DetailedTable is one recipe costed at quoted prices and at margin-adjusted prices
type DetailedTable struct {
	Recipe        string
	PercentMargin float64
	Base          *Costing
	Margin        *Costing
}

// Row returns the base scenario's overview row
func (t *DetailedTable) Row() OverviewRow {
	return t.Base.Row
}

// Breakdown costs the recipe twice: as quoted, then buying above and selling
// below market by the configured margin
func (c *OverviewCalculator) Breakdown(r *recipe.Recipe) (*DetailedTable, error) {
	base, err := c.Cost(r, BaseScenario())
	if err != nil {
		return nil, err
	}

	margin, err := c.Cost(r, MarginScenario(c.settings.PercentMargin))
	if err != nil {
		return nil, err
	}

	return &DetailedTable{
		Recipe:        r.Name(),
		PercentMargin: c.settings.PercentMargin,
		Base:          base,
		Margin:        margin,
	}, nil
}

// NumberFormat renders integers in a breakdown table
type NumberFormat func(int64) string

// PlainNumber formats integers without grouping
func PlainNumber(n int64) string { return strconv.FormatInt(n, 10) }

// Merge lays both scenarios out side by side. Columns from "To Buy" onward
// read "base (margin)" when both scenarios have a value, otherwise whichever
// one does. The header is not included.
func (t *DetailedTable) Merge(format NumberFormat) [][]string {
	if format == nil {
		format = PlainNumber
	}

	base := scenarioRows(t.Base, format)
	adjusted := scenarioRows(t.Margin, format)

	merged := make([][]string, len(base))
	for i := range base {
		merged[i] = mergeRow(base[i], adjusted[i])
	}
	return merged
}

func mergeRow(base, adjusted []string) []string {
	width := max(len(base), len(adjusted))
	row := make([]string, width)

	for col := 0; col < width; col++ {
		b := cell(base, col)
		a := cell(adjusted, col)

		switch {
		case col < mergeFrom || a == "":
			row[col] = b
		case b == "":
			row[col] = a
		default:
			row[col] = fmt.Sprintf("%s (%s)", b, a)
		}
	}
	return row
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// scenarioRows itemizes one costing. Both scenarios of a recipe produce the
// same shape, so rows line up for merging.
func scenarioRows(costing *Costing, format NumberFormat) [][]string {
	row := costing.Row
	number := row.Number()

	quantity := func(q float64) string {
		return strconv.FormatFloat(q, 'f', -1, 64)
	}

	var rows [][]string

	rows = append(rows, []string{"Inputs"})
	for _, line := range costing.Inputs {
		rows = append(rows, []string{
			line.Name,
			quantity(line.Quantity),
			format(economy.Floor(line.Quantity * float64(number))),
			format(line.UnitPrice),
			format(line.Total() * number),
		})
	}

	payOnce, hasPayOnce := row.PayOnceTotal()
	if hasPayOnce {
		rows = append(rows, []string{"Pay once"})
		for _, line := range costing.PayOnce {
			rows = append(rows, []string{
				line.Name,
				quantity(line.Quantity),
				quantity(line.Quantity),
				format(line.UnitPrice),
				format(line.Total()),
			})
		}
	}

	rows = append(rows, []string{
		"Total", "", "",
		format(row.Cost()),
		format(row.Cost()*number + payOnce),
	})
	rows = append(rows, []string{})

	rows = append(rows, []string{"Outputs"})
	for _, line := range costing.Outputs {
		rows = append(rows, []string{
			line.Name,
			quantity(line.Quantity),
			format(economy.Floor(line.Quantity * float64(number))),
			format(line.UnitPrice),
			format(line.Total() * number),
		})
	}
	rows = append(rows, []string{
		"Total (w/Tax)", "", "",
		format(row.Revenue()),
		format(row.Revenue() * number),
	})
	rows = append(rows, []string{})

	timeCells := func(total int64) (string, string) {
		t, ok := row.TimeSec()
		if !ok {
			return "", ""
		}
		hours, gph := economy.RecipeTimeHours(t, number, total, true)
		return strconv.FormatFloat(hours, 'f', -1, 64), format(gph)
	}

	hours, gph := timeCells(row.TotalGP())
	rows = append(rows, []string{
		"Profit/Loss",
		"",
		format(number),
		format(row.Profit()),
		format(row.TotalGP()),
		hours,
		gph,
	})

	if hasPayOnce {
		netHours, netGPH := timeCells(row.NetGP())
		rows = append(rows, []string{
			"Profit/Loss (after pay once)",
			"",
			format(number),
			"",
			format(row.NetGP()),
			netHours,
			netGPH,
		})
	}

	return rows
}
