package report

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// hiddenCell replaces the figures of rows that failed the affordability or profit bar
const hiddenCell = "#"

// Formatter renders report figures
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter with English digit grouping (1,234,567)
func NewFormatter() *Formatter {
	return &Formatter{printer: message.NewPrinter(language.English)}
}

// Number formats an integer with thousands separators
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Hours formats a duration in hours with at most two decimals
func (f *Formatter) Hours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
