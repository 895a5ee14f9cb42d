package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "WHOLE LIFE VS BUY TERM & INVEST")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Values: %s\n", r.View.Label())
	fmt.Fprintln(&buf)

	if r.Result.IsEmpty() {
		fmt.Fprintln(&buf, "No projection available.")
		return buf.Bytes(), nil
	}

	for _, row := range BuildComparison(r.Result.Summary, r.View) {
		fmt.Fprintf(&buf, "Age %d: WL cash=%s estate=%s | BTID invest=%s estate=%s\n",
			row.Age,
			FormatCurrency(row.WholeLife.Liquidity, true),
			FormatCurrency(row.WholeLife.EstateValue, true),
			FormatCurrency(row.BTID.Liquidity, true),
			FormatCurrency(row.BTID.EstateValue, true),
		)
		fmt.Fprintf(&buf, "  Liquidity: %s  Estate: %s\n", row.Liquidity, row.Estate)
	}

	a := AnalyzeProjection(r)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Investment >= cash value: %s\n", a.InvestmentCross)
	fmt.Fprintf(&buf, "WL death benefit >= BTID estate: %s\n", a.DeathBenefitCross)
	if a.FinalAge > 0 {
		fmt.Fprintf(&buf, "At age %d: liquidity leader %s, estate leader %s\n", a.FinalAge, a.LiquidityLeader, a.EstateLeader)
	}
	return buf.Bytes(), nil
}
