package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ConsoleVerboseFormatter renders the full report: assumptions, key ages, breakevens and
// the year-by-year ledger.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	fmt.Fprintln(&buf, "WHOLE LIFE VS BUY TERM & INVEST THE DIFFERENCE")
	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	fmt.Fprintf(&buf, "Values: %s\n", r.View.Label())
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(r.Config) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if r.Result.IsEmpty() {
		fmt.Fprintln(&buf, "No projection available.")
		return buf.Bytes(), nil
	}

	writeKeyAges(&buf, r)
	writeBreakevens(&buf, r)
	writeLedger(&buf, r)
	return buf.Bytes(), nil
}

func writeKeyAges(w io.Writer, r *Report) {
	fmt.Fprintln(w, "KEY AGE SNAPSHOTS")
	fmt.Fprintln(w, strings.Repeat("-", 96))
	fmt.Fprintf(w, "%-6s %12s %12s %12s %12s   %-18s %-18s\n",
		"Age", "WL Cash", "WL Estate", "BTID Invest", "BTID Estate", "Liquidity", "Estate")
	for _, row := range BuildComparison(r.Result.Summary, r.View) {
		fmt.Fprintf(w, "%-6d %12s %12s %12s %12s   %-18s %-18s\n",
			row.Age,
			FormatCurrency(row.WholeLife.Liquidity, true),
			FormatCurrency(row.WholeLife.EstateValue, true),
			FormatCurrency(row.BTID.Liquidity, true),
			FormatCurrency(row.BTID.EstateValue, true),
			row.Liquidity, row.Estate)
	}

	summary := r.Result.Summary
	if len(summary) > 0 {
		last := summary[len(summary)-1]
		wl, btid := r.View.Snapshot(last.WholeLife), r.View.Snapshot(last.BTID)
		fmt.Fprintf(w, "\nTotal premiums at age %d: WL %s, term %s\n",
			last.Age, FormatCurrency(wl.TotalPremiums, false), FormatCurrency(btid.TotalPremiums, false))
	}
	fmt.Fprintln(w)
}

func writeBreakevens(w io.Writer, r *Report) {
	a := AnalyzeProjection(r)
	fmt.Fprintln(w, "BREAKEVENS")
	fmt.Fprintln(w, strings.Repeat("-", 96))
	fmt.Fprintf(w, "Investment balance reaches WL cash value:   %s\n", a.InvestmentCross)
	fmt.Fprintf(w, "WL death benefit reaches BTID total estate: %s\n", a.DeathBenefitCross)
	if a.TermLapseAge > 0 {
		fmt.Fprintf(w, "Term coverage lapses at age %d\n", a.TermLapseAge)
	} else {
		fmt.Fprintln(w, "Term coverage lasts the whole projection")
	}
	fmt.Fprintln(w)
}

func writeLedger(w io.Writer, r *Report) {
	fmt.Fprintln(w, "YEAR-BY-YEAR LEDGER")
	fmt.Fprintln(w, strings.Repeat("-", 96))
	fmt.Fprintf(w, "%-4s %-4s %10s %12s %12s | %-4s %10s %12s %12s %12s\n",
		"Yr", "Age", "WL Prem", "Cash Value", "Death Ben", "Term", "Invested", "Balance", "Term DB", "Estate")
	for _, row := range r.LedgerRows() {
		fmt.Fprintf(w, "%-4d %-4d %10s %12s %12s | %-4s %10s %12s %12s %12s\n",
			row.Year, row.Age,
			FormatCurrency(row.WLPremium, false),
			FormatCurrency(row.WLCashValue, false),
			FormatCurrency(row.WLDeathBenefit, false),
			yesNo(row.TermActive),
			FormatCurrency(row.Contribution, false),
			FormatCurrency(row.Investment, false),
			FormatCurrency(row.TermDeathBenefit, false),
			FormatCurrency(row.BTIDEstate, false),
		)
	}
}
