package services

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatIndianCurrency renders a rupee amount with comma-grouped thousands.
func FormatIndianCurrency(amount float64) string {
	return currencyPrinter.Sprintf("₹%d", int64(math.Round(amount)))
}
