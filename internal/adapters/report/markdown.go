package report

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// newMarkdownTable configures tablewriter to emit a GitHub-flavoured markdown table
func newMarkdownTable(w io.Writer, header []string, rightAligned int) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")

	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_LEFT
		if i >= len(header)-rightAligned {
			alignment[i] = tablewriter.ALIGN_RIGHT
		}
	}
	table.SetColumnAlignment(alignment)

	return table
}
