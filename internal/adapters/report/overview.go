package report

import (
	"fmt"
	"io"

	"github.com/dstapl/osrs-gph/internal/domain/profit"
)

// OverviewHeader names the overview report columns
var OverviewHeader = []string{"Method", "Loss/Gain", "(Total) Loss/Gain", "Time (h)", "GP/h"}

// OverviewWriter renders ranked rows as a markdown table
type OverviewWriter struct {
	format *Formatter
}

// NewOverviewWriter creates a writer
func NewOverviewWriter(format *Formatter) *OverviewWriter {
	if format == nil {
		format = NewFormatter()
	}
	return &OverviewWriter{format: format}
}

// Cells renders one row. Annotated rows keep their label but hide their figures.
func (w *OverviewWriter) Cells(row profit.OverviewRow) []string {
	if row.Annotated() {
		return []string{row.Label(), hiddenCell, hiddenCell, hiddenCell, hiddenCell}
	}
	return []string{
		row.Label(),
		w.format.Number(row.Profit()),
		w.format.Number(row.TotalGP()),
		w.format.Hours(row.TotalTimeHours()),
		w.format.Number(row.GPH()),
	}
}

// Write renders at most limit rows (all when limit <= 0), in the given order
func (w *OverviewWriter) Write(out io.Writer, rows []profit.OverviewRow, limit int) error {
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	table := newMarkdownTable(out, OverviewHeader, len(OverviewHeader)-1)
	for _, row := range rows {
		table.Append(w.Cells(row))
	}
	table.Render()

	if len(rows) == 0 {
		if _, err := fmt.Fprintln(out, "\nNo recipe passed the current filters."); err != nil {
			return err
		}
	}
	return nil
}
