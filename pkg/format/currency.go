// Package format provides display formatting for currency amounts and
// simulated settlement durations.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// EUR returns a currency string with a euro sign and thousands separators
// (e.g., "-€1,234.56").
func EUR(amount float64) string {
	formatted := printer.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 {
		return "-€" + formatted
	}
	return "€" + formatted
}
