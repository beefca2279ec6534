package utils

import (
	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places shown for converted amounts.
const AmountPrecision = 2

// FormatAmount formats an amount with exactly AmountPrecision decimal places
// Example: 7831 returns "7831.00"
// Example: 78.356 returns "78.36"
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, AmountPrecision)
}

// FormatWithPrecision formats an amount with the given precision, padding with zeros
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
