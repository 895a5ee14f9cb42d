package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/wlbtid/calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     func(v decimal.Decimal) string { return FormatCurrency(v, false) },
	"compact":  func(v decimal.Decimal) string { return FormatCurrency(v, true) },
	"pct":      FormatPercentage,
	"yesno":    yesNo,
	"negative": func(d Difference) bool { return d.Amount.IsNegative() && !d.Similar() },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

const (
	chartWidth  = 900.0
	chartHeight = 360.0
	chartPad    = 40.0
)

// SVGLine is one polyline of the chart.
type SVGLine struct {
	Name   string
	Color  string
	Dashed bool
	Points string
}

// SVGMarker is a vertical breakeven marker.
type SVGMarker struct {
	Label string
	X     float64
}

// SVGChart is the pre-scaled chart handed to the template.
type SVGChart struct {
	Width, Height float64
	Lines         []SVGLine
	Markers       []SVGMarker
	MaxLabel      string
	FirstAge      int
	LastAge       int
}

func (h HTMLFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*Report
		Analysis    Analysis
		Assumptions []string
		Comparison  []ComparisonRow
		Ledger      []LedgerRow
		Chart       SVGChart
		Series      []ChartPoint
	}{
		Report:      r,
		Analysis:    AnalyzeProjection(r),
		Assumptions: GenerateAssumptions(r.Config),
		Comparison:  BuildComparison(r.Result.Summary, r.View),
		Ledger:      r.LedgerRows(),
		Chart:       buildSVGChart(r),
		Series:      r.ChartSeries(),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildSVGChart(r *Report) SVGChart {
	chart := SVGChart{Width: chartWidth, Height: chartHeight}
	series := r.ChartSeries()
	if len(series) == 0 {
		return chart
	}
	chart.FirstAge = series[0].Age
	chart.LastAge = series[len(series)-1].Age

	maxValue := decimal.Zero
	for _, p := range series {
		for _, v := range []decimal.Decimal{p.WLCashValue, p.WLDeathBenefit, p.BTIDInvestment, p.BTIDEstate} {
			if v.GreaterThan(maxValue) {
				maxValue = v
			}
		}
	}
	if !maxValue.IsPositive() {
		maxValue = decimal.NewFromInt(1)
	}
	chart.MaxLabel = FormatCurrency(maxValue, true)

	top := maxValue.InexactFloat64()
	span := float64(len(series) - 1)
	if span == 0 {
		span = 1
	}
	x := func(i int) float64 { return chartPad + float64(i)/span*(chartWidth-2*chartPad) }
	y := func(v decimal.Decimal) float64 {
		f := v.InexactFloat64() / top
		if f < 0 {
			f = 0
		}
		return chartHeight - chartPad - f*(chartHeight-2*chartPad)
	}
	line := func(name, color string, dashed bool, pick func(ChartPoint) decimal.Decimal) SVGLine {
		pts := make([]string, 0, len(series))
		for i, p := range series {
			pts = append(pts, fmt.Sprintf("%.1f,%.1f", x(i), y(pick(p))))
		}
		return SVGLine{Name: name, Color: color, Dashed: dashed, Points: strings.Join(pts, " ")}
	}

	chart.Lines = []SVGLine{
		line("WL Cash Value", "#15803d", false, func(p ChartPoint) decimal.Decimal { return p.WLCashValue }),
		line("WL Death Benefit", "#86efac", true, func(p ChartPoint) decimal.Decimal { return p.WLDeathBenefit }),
		line("BTID Investments", "#1d4ed8", false, func(p ChartPoint) decimal.Decimal { return p.BTIDInvestment }),
		line("BTID Total Estate", "#93c5fd", true, func(p ChartPoint) decimal.Decimal { return p.BTIDEstate }),
	}

	addMarker := func(label string, b *domain.Breakeven) {
		if b == nil || b.Year >= len(series) {
			return
		}
		chart.Markers = append(chart.Markers, SVGMarker{Label: fmt.Sprintf("%s (age %d)", label, b.Age), X: x(b.Year)})
	}
	addMarker("Investment passes cash value", r.Result.Breakevens.InvestmentVsCashValue)
	addMarker("WL death benefit passes BTID estate", r.Result.Breakevens.WLDeathBenefitVsInvestment)
	if lapse := r.Result.TermLapseYear(); lapse > 0 && lapse < len(series) {
		chart.Markers = append(chart.Markers, SVGMarker{Label: fmt.Sprintf("Term lapses (age %d)", series[lapse].Age), X: x(lapse)})
	}
	return chart
}
