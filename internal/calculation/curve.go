package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wlbtid/calculator/internal/domain"
	dec "github.com/wlbtid/calculator/pkg/decimal"
)

// Default model constants. They stand in for an insurer illustration when no
// calibration point is supplied.
var (
	earlyBuildFactor    = decimal.NewFromFloat(0.3)
	acceleratedFactor   = decimal.NewFromFloat(0.6)
	matureGrowthPercent = decimal.NewFromInt(4)
)

// surrenderYears are the policy years with no cash value.
var surrenderYears = []int{0, 1, 2}

// BuildCashValueCurve returns cash values for years 0..maxYears. With no calibration
// points it falls back to the default model driven by the annual premium.
func BuildCashValueCurve(points domain.CalibrationPoints, maxYears int, annualPremium decimal.Decimal) []decimal.Decimal {
	if maxYears < 0 {
		maxYears = 0
	}
	if points.IsEmpty() {
		return DefaultCashValueCurve(maxYears, annualPremium)
	}
	curve := NewCalibratedCurve(points)
	values := make([]decimal.Decimal, maxYears+1)
	for year := range values {
		values[year] = curve.ValueAt(year)
	}
	return values
}

// DefaultCashValueCurve models a typical policy: nothing for three years, slow build to
// year 5, faster build to year 10, then 4% annual growth.
func DefaultCashValueCurve(maxYears int, annualPremium decimal.Decimal) []decimal.Decimal {
	if maxYears < 0 {
		maxYears = 0
	}
	three := decimal.NewFromInt(3)
	year5Value := annualPremium.Mul(three).Mul(earlyBuildFactor)
	year10Value := year5Value.Add(annualPremium.Mul(decimal.NewFromInt(5)).Mul(acceleratedFactor))
	matureFactor := dec.GrowthFactor(matureGrowthPercent)

	values := make([]decimal.Decimal, maxYears+1)
	for year := range values {
		switch {
		case year <= 2:
			values[year] = decimal.Zero
		case year <= 5:
			values[year] = annualPremium.Mul(decimal.NewFromInt(int64(year - 2))).Mul(earlyBuildFactor)
		case year <= 10:
			values[year] = year5Value.Add(annualPremium.Mul(decimal.NewFromInt(int64(year - 5))).Mul(acceleratedFactor))
		default:
			values[year] = dec.Compound(year10Value, matureFactor, year-10)
		}
	}
	return values
}

// CurveSegment classifies where a year falls relative to the known points.
type CurveSegment int

const (
	// BeforeRange is at or before the first known point.
	BeforeRange CurveSegment = iota
	// InRange lies strictly between two known points.
	InRange
	// AfterRange is at or after the last known point.
	AfterRange
)

// CalibratedCurve interpolates between known points and extrapolates geometrically past the last one.
type CalibratedCurve struct {
	points []domain.CurvePoint
	growth decimal.Decimal // annual growth used beyond the last point, as a fraction
}

// NewCalibratedCurve builds the sorted point set: implicit zeros for the surrender
// years plus every supplied calibration point.
func NewCalibratedCurve(cp domain.CalibrationPoints) *CalibratedCurve {
	pts := make([]domain.CurvePoint, 0, len(surrenderYears)+3)
	for _, y := range surrenderYears {
		pts = append(pts, domain.CurvePoint{Year: y, Value: decimal.Zero})
	}
	pts = append(pts, cp.Points()...)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Year < pts[j].Year })

	return &CalibratedCurve{
		points: pts,
		growth: tailGrowthRate(pts, len(cp.Points())),
	}
}

// tailGrowthRate is the implied annual rate between the two highest points. A single
// calibration point, or a degenerate pair (zero or negative base), uses the 4% default.
func tailGrowthRate(pts []domain.CurvePoint, supplied int) decimal.Decimal {
	fallback := dec.Rate(matureGrowthPercent)
	if supplied < 2 || len(pts) < 2 {
		return fallback
	}
	last, prev := pts[len(pts)-1], pts[len(pts)-2]
	rate, ok := dec.ImpliedGrowthRate(prev.Value, last.Value, last.Year-prev.Year)
	if !ok {
		return fallback
	}
	return rate
}

// Points returns a copy of the sorted point set.
func (c *CalibratedCurve) Points() []domain.CurvePoint {
	return append([]domain.CurvePoint(nil), c.points...)
}

// GrowthRate returns the annual extrapolation rate as a fraction.
func (c *CalibratedCurve) GrowthRate() decimal.Decimal { return c.growth }

// Segment reports which case applies to year.
func (c *CalibratedCurve) Segment(year int) CurveSegment {
	switch {
	case year <= c.points[0].Year:
		return BeforeRange
	case year >= c.points[len(c.points)-1].Year:
		return AfterRange
	default:
		return InRange
	}
}

// ValueAt returns the cash value for a policy year.
func (c *CalibratedCurve) ValueAt(year int) decimal.Decimal {
	switch c.Segment(year) {
	case BeforeRange:
		return c.points[0].Value
	case AfterRange:
		last := c.points[len(c.points)-1]
		return dec.Compound(last.Value, decimal.NewFromInt(1).Add(c.growth), year-last.Year)
	}

	// First point at or beyond year; the one before it brackets from below.
	i := sort.Search(len(c.points), func(i int) bool { return c.points[i].Year >= year })
	upper := c.points[i]
	if upper.Year == year {
		return upper.Value
	}
	lower := c.points[i-1]
	ratio := decimal.NewFromInt(int64(year - lower.Year)).Div(decimal.NewFromInt(int64(upper.Year - lower.Year)))
	return lower.Value.Add(upper.Value.Sub(lower.Value).Mul(ratio))
}
