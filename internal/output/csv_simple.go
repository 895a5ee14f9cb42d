package output

import (
	"bytes"
	"encoding/csv"
)

// CSVSummarizer exports the key-age comparison (one row per summary age).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "View",
		"WLTotalPremiums", "WLLiquidity", "WLEstateValue",
		"BTIDTotalPremiums", "BTIDLiquidity", "BTIDEstateValue",
		"LiquidityDifference", "LiquidityDifferencePct", "EstateDifference", "EstateDifferencePct"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range BuildComparison(r.Result.Summary, r.View) {
		record := []string{
			intToString(row.Age),
			r.View.String(),
			row.WholeLife.TotalPremiums.StringFixed(2),
			row.WholeLife.Liquidity.StringFixed(2),
			row.WholeLife.EstateValue.StringFixed(2),
			row.BTID.TotalPremiums.StringFixed(2),
			row.BTID.Liquidity.StringFixed(2),
			row.BTID.EstateValue.StringFixed(2),
			row.Liquidity.Amount.StringFixed(2),
			row.Liquidity.Percent.StringFixed(2),
			row.Estate.Amount.StringFixed(2),
			row.Estate.Percent.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
