package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Precision is the number of fractional digits kept on compounded amounts.
const Precision = 10

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Rate converts a percentage (7 for 7%) into a fraction (0.07).
func Rate(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// GrowthFactor returns 1 + percent/100.
func GrowthFactor(percent decimal.Decimal) decimal.Decimal {
	return one.Add(Rate(percent))
}

// CompoundFactor returns (1 + percent/100)^years. Years below zero are treated as zero.
func CompoundFactor(percent decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return one
	}
	return GrowthFactor(percent).Pow(decimal.NewFromInt(int64(years)))
}

// Compound grows value by factor for the given number of years, rounded to Precision.
func Compound(value, factor decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return value
	}
	return value.Mul(factor.Pow(decimal.NewFromInt(int64(years)))).Round(Precision)
}

// Deflate divides a nominal amount by an inflation factor.
func Deflate(nominal, factor decimal.Decimal) decimal.Decimal {
	return nominal.Div(factor)
}

// ImpliedGrowthRate returns the constant annual rate that takes from to to over years,
// i.e. (to/from)^(1/years) - 1. ok is false when the rate is undefined: a non-positive
// starting value, a negative ending value, or a non-positive span.
func ImpliedGrowthRate(from, to decimal.Decimal, years int) (rate decimal.Decimal, ok bool) {
	if years <= 0 || !from.IsPositive() || to.IsNegative() {
		return decimal.Zero, false
	}
	ratio := to.Div(from).InexactFloat64()
	r := math.Pow(ratio, 1/float64(years)) - 1
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(r), true
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return Min(Max(v, lo), hi)
}
