package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wlbtid/calculator/internal/domain"
)

// similarThreshold is the percentage gap below which two values are called similar.
var similarThreshold = decimal.NewFromInt(1)

// Difference compares a BTID value against its whole life counterpart.
type Difference struct {
	Amount  decimal.Decimal `json:"amount"`  // btid - wl
	Percent decimal.Decimal `json:"percent"` // relative to wl; zero when wl is zero
}

// CompareValues returns btid - wl and the gap as a percentage of wl.
func CompareValues(wl, btid decimal.Decimal) Difference {
	diff := btid.Sub(wl)
	pct := decimal.Zero
	if !wl.IsZero() {
		pct = diff.Div(wl).Mul(hundred)
	}
	return Difference{Amount: diff, Percent: pct}
}

// Similar reports a gap under one percent.
func (d Difference) Similar() bool { return d.Percent.Abs().LessThan(similarThreshold) }

// String renders "Similar", "+$45K (12%)" or "$-45K (-12%)".
func (d Difference) String() string {
	if d.Similar() {
		return "Similar"
	}
	return fmt.Sprintf("%s (%s%%)", FormatSignedCompact(d.Amount), d.Percent.StringFixed(0))
}

// ComparisonRow is one summary age reduced to the view with both gaps computed.
type ComparisonRow struct {
	Age       int          `json:"age"`
	WholeLife ViewSnapshot `json:"wl"`
	BTID      ViewSnapshot `json:"btid"`
	Liquidity Difference   `json:"liquidity_difference"`
	Estate    Difference   `json:"estate_difference"`
}

// BuildComparison turns the summary rows into display rows for the view.
func BuildComparison(summary []domain.SummaryRow, view View) []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(summary))
	for _, s := range summary {
		wl := view.Snapshot(s.WholeLife)
		btid := view.Snapshot(s.BTID)
		rows = append(rows, ComparisonRow{
			Age:       s.Age,
			WholeLife: wl,
			BTID:      btid,
			Liquidity: CompareValues(wl.Liquidity, btid.Liquidity),
			Estate:    CompareValues(wl.EstateValue, btid.EstateValue),
		})
	}
	return rows
}

// Analysis is the short verdict printed at the top of reports.
type Analysis struct {
	FinalAge          int
	LiquidityLeader   string
	EstateLeader      string
	InvestmentCross   string
	DeathBenefitCross string
	TermLapseAge      int // zero when the term never lapses
}

// AnalyzeProjection summarizes who leads at the last summary age and when the tracked
// crossovers occur.
func AnalyzeProjection(r *Report) Analysis {
	var a Analysis
	res := r.Result

	a.InvestmentCross = describeBreakeven(res.Breakevens.InvestmentVsCashValue)
	a.DeathBenefitCross = describeBreakeven(res.Breakevens.WLDeathBenefitVsInvestment)

	if lapse := res.TermLapseYear(); lapse >= 0 && lapse < len(res.BTIDLedger) {
		a.TermLapseAge = res.BTIDLedger[lapse].Age
	}

	rows := BuildComparison(res.Summary, r.View)
	if len(rows) == 0 {
		return a
	}
	last := rows[len(rows)-1]
	a.FinalAge = last.Age
	a.LiquidityLeader = leader(last.Liquidity)
	a.EstateLeader = leader(last.Estate)
	return a
}

func leader(d Difference) string {
	switch {
	case d.Similar():
		return "Similar"
	case d.Amount.IsPositive():
		return "BTID"
	default:
		return "Whole Life"
	}
}

func describeBreakeven(b *domain.Breakeven) string {
	if b == nil {
		return "Never"
	}
	return fmt.Sprintf("Year %d (age %d)", b.Year, b.Age)
}
