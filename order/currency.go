package order

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupeePrinter = message.NewPrinter(language.English)

// FormatRupees renders an amount the way the storefront shows money:
// "Rs." prefix, thousands separators, no decimal places.
func FormatRupees(amount float64) string {
	return rupeePrinter.Sprintf("Rs. %.0f", amount)
}
