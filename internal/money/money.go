// Package money formats amounts for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is the currency all amounts are displayed in.
var Currency = currency.INR

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format returns the amount with currency symbol and locale grouping, e.g. "₹1,23,456.50".
func Format(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("%v%v", currency.Symbol(Currency), number.Decimal(f, number.Scale(2)))
}

// Percent formats a percentage with one decimal, e.g. "81.5%".
func Percent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}
