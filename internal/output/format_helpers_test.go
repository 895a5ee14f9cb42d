package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in      decimal.Decimal
		compact bool
		want    string
	}{
		{decimal.NewFromFloat(1234.567), false, "$1,235"},
		{decimal.NewFromInt(12345678), false, "$12,345,678"},
		{decimal.NewFromInt(-500), false, "-$500"},
		{decimal.Zero, false, "$0"},
		{decimal.NewFromInt(1234567), true, "$1.23M"},
		{decimal.NewFromInt(45000), true, "$45K"},
		{decimal.NewFromInt(-12000), true, "$-12K"},
		{decimal.NewFromInt(999), true, "$999"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in, c.compact); got != c.want {
			t.Errorf("FormatCurrency(%v, %v) = %q, want %q", c.in, c.compact, got, c.want)
		}
	}
}

func TestFormatOptionalCurrency(t *testing.T) {
	if got := FormatOptionalCurrency(nil, false); got != "-" {
		t.Errorf("FormatOptionalCurrency(nil) = %q, want %q", got, "-")
	}
	v := decimal.NewFromInt(25000)
	if got := FormatOptionalCurrency(&v, false); got != "$25,000" {
		t.Errorf("FormatOptionalCurrency(25000) = %q", got)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatSignedCompact(t *testing.T) {
	if got := FormatSignedCompact(decimal.NewFromInt(45000)); got != "+$45K" {
		t.Errorf("positive = %q", got)
	}
	if got := FormatSignedCompact(decimal.NewFromInt(-45000)); got != "$-45K" {
		t.Errorf("negative = %q", got)
	}
	if got := FormatSignedCompact(decimal.Zero); got != "$0" {
		t.Errorf("zero = %q", got)
	}
}

func TestSmallHelpers(t *testing.T) {
	if got, want := intToString(42), "42"; got != want {
		t.Errorf("intToString(42) = %q, want %q", got, want)
	}
	if got, want := boolToString(true), "true"; got != want {
		t.Errorf("boolToString(true) = %q, want %q", got, want)
	}
	if got, want := yesNo(false), "No"; got != want {
		t.Errorf("yesNo(false) = %q, want %q", got, want)
	}
}
