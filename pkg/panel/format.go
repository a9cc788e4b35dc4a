package panel

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ModesOfPayment are the values the mode of payment field accepts.
var ModesOfPayment = []string{"MDS Check", "Commercial Check", "ADA", "Others"}

// ValidMode reports whether the mode of payment is one of the accepted values.
func ValidMode(mode string) bool {
	return slices.Contains(ModesOfPayment, mode)
}

var pesoPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount with the Philippine peso sign,
// grouped thousands and exactly two fractional digits, e.g. "₱1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	return pesoPrinter.Sprintf("₱%.2f", amount.InexactFloat64())
}

// StatusColor returns the badge color for a report status.
func StatusColor(status string) string {
	switch status {
	case "approved":
		return "green"
	case "draft":
		return "orange"
	default:
		return "gray"
	}
}
