package output

import (
	"bytes"
	"encoding/csv"
)

// CSVDetailedExporter exports both ledgers side by side, one row per projection year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Age",
		"WLPremium", "WLTotalPremiums", "WLCashValue", "WLDeathBenefit",
		"TermActive", "TermPremium", "TermTotalPremiums", "TermDeathBenefit",
		"InvestmentContribution", "InvestmentBalance", "BTIDTotalEstate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range r.LedgerRows() {
		record := []string{
			intToString(row.Year),
			intToString(row.Age),
			row.WLPremium.StringFixed(2),
			row.WLTotalPremiums.StringFixed(2),
			row.WLCashValue.StringFixed(2),
			row.WLDeathBenefit.StringFixed(2),
			boolToString(row.TermActive),
			row.TermPremium.StringFixed(2),
			row.TermTotalPremiums.StringFixed(2),
			row.TermDeathBenefit.StringFixed(2),
			row.Contribution.StringFixed(2),
			row.Investment.StringFixed(2),
			row.BTIDEstate.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ChartCSVFormatter exports the chart series, including the derived net value lines.
type ChartCSVFormatter struct{}

func (c ChartCSVFormatter) Name() string { return "chart-csv" }

func (c ChartCSVFormatter) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Age",
		"WLCashValue", "WLDeathBenefit", "WLTotal", "WLNetValue", "WLNetEstate",
		"BTIDInvestment", "BTIDEstate", "BTIDNetValue", "BTIDNetEstate",
		"TermDeathBenefit", "TermActive"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range r.ChartSeries() {
		record := []string{
			intToString(p.Year),
			intToString(p.Age),
			p.WLCashValue.StringFixed(2),
			p.WLDeathBenefit.StringFixed(2),
			p.WLTotal.StringFixed(2),
			p.WLNetValue.StringFixed(2),
			p.WLNetEstate.StringFixed(2),
			p.BTIDInvestment.StringFixed(2),
			p.BTIDEstate.StringFixed(2),
			p.BTIDNetValue.StringFixed(2),
			p.BTIDNetEstate.StringFixed(2),
			p.TermDeathBenefit.StringFixed(2),
			boolToString(p.TermActive),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
