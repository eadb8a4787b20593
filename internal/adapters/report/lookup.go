package report

import (
	"fmt"
	"io"

	"github.com/dstapl/osrs-gph/internal/domain/profit"
)

// LookupWriter renders detailed breakdowns, one markdown section per recipe
type LookupWriter struct {
	format *Formatter
}

// NewLookupWriter creates a writer
func NewLookupWriter(format *Formatter) *LookupWriter {
	if format == nil {
		format = NewFormatter()
	}
	return &LookupWriter{format: format}
}

// LookupEntry is one recipe to render. A nil Table renders the reason instead.
type LookupEntry struct {
	Recipe string
	Table  *profit.DetailedTable
	Reason string
}

// Write renders every entry in order
func (w *LookupWriter) Write(out io.Writer, entries []LookupEntry) error {
	for i, entry := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := w.writeEntry(out, entry); err != nil {
			return err
		}
	}
	return nil
}

func (w *LookupWriter) writeEntry(out io.Writer, entry LookupEntry) error {
	if entry.Table == nil {
		_, err := fmt.Fprintf(out, "## %s\n\nNo breakdown: %s\n", entry.Recipe, entry.Reason)
		return err
	}

	row := entry.Table.Row()
	title := row.Label()
	if _, err := fmt.Fprintf(out, "## %s\n\nMargin: %v%%, executions: %s\n\n",
		title, entry.Table.PercentMargin, w.format.Number(row.Number())); err != nil {
		return err
	}

	table := newMarkdownTable(out, profit.BreakdownHeader, len(profit.BreakdownHeader)-1)
	for _, cells := range entry.Table.Merge(w.format.Number) {
		table.Append(pad(cells, len(profit.BreakdownHeader)))
	}
	table.Render()
	return nil
}

func pad(cells []string, width int) []string {
	if len(cells) >= width {
		return cells
	}
	out := make([]string, width)
	copy(out, cells)
	return out
}
