package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
	hundred  = decimal.NewFromInt(100)

	currencyPrinter = message.NewPrinter(language.MustParse("en-SG"))
)

// FormatCurrency renders whole dollars with grouping ("$12,345", "-$500"). With compact
// set, amounts of at least a million render as "$1.23M" and of at least a thousand as "$45K".
func FormatCurrency(amount decimal.Decimal, compact bool) string {
	abs := amount.Abs()
	if compact && abs.GreaterThanOrEqual(million) {
		return "$" + amount.Div(million).StringFixed(2) + "M"
	}
	if compact && abs.GreaterThanOrEqual(thousand) {
		return "$" + amount.Div(thousand).StringFixed(0) + "K"
	}

	rounded := amount.Round(0)
	digits := currencyPrinter.Sprintf("%v", number.Decimal(rounded.Abs().IntPart()))
	if rounded.IsNegative() {
		return "-$" + digits
	}
	return "$" + digits
}

// FormatOptionalCurrency renders "-" for a missing amount.
func FormatOptionalCurrency(amount *decimal.Decimal, compact bool) string {
	if amount == nil {
		return "-"
	}
	return FormatCurrency(*amount, compact)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatSignedCompact renders a difference with an explicit sign: "+$45K" or "$-12K".
func FormatSignedCompact(amount decimal.Decimal) string {
	s := FormatCurrency(amount, true)
	if amount.IsPositive() {
		return "+" + s
	}
	return s
}

func intToString(i int) string { return decimal.NewFromInt(int64(i)).String() }

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
