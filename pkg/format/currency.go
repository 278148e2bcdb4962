// Package format renders monetary amounts and percentages for display.
// Amounts are euro figures with German-style separators, matching the
// business-case reports this tool produces.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.German)

// Currency returns a whole-euro currency string with thousands separators
// (e.g., "33.600 €").
func Currency(amount float64) string {
	return printer.Sprintf("%.0f €", amount)
}

// Percent returns a percentage string with one decimal (e.g., "1.185,7 %").
func Percent(v float64) string {
	return printer.Sprintf("%.1f %%", v)
}

// WholePercent returns a percentage string without decimals (e.g., "1.186 %").
func WholePercent(v float64) string {
	return printer.Sprintf("%.0f %%", v)
}

// Deals returns a deal count with one decimal (e.g., "18,0").
func Deals(v float64) string {
	return printer.Sprintf("%.1f", v)
}
