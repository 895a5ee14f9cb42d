package output

import "github.com/shopspring/decimal"

// ChartPoint is one year of the comparison chart series.
type ChartPoint struct {
	Age  int `json:"age"`
	Year int `json:"year"`

	WLCashValue    decimal.Decimal `json:"wl_cash_value"`
	WLDeathBenefit decimal.Decimal `json:"wl_death_benefit"`
	WLTotal        decimal.Decimal `json:"wl_total"`       // cash value + death benefit
	WLNetValue     decimal.Decimal `json:"wl_net_value"`   // cash value - premiums paid
	WLNetEstate    decimal.Decimal `json:"wl_net_estate"`  // net value + death benefit
	BTIDInvestment decimal.Decimal `json:"btid_investment"`
	BTIDEstate     decimal.Decimal `json:"btid_estate"`
	BTIDNetValue   decimal.Decimal `json:"btid_net_value"`  // investment - term premiums paid
	BTIDNetEstate  decimal.Decimal `json:"btid_net_estate"` // net value + term death benefit

	TermDeathBenefit decimal.Decimal `json:"term_death_benefit"`
	TermActive       bool            `json:"term_active"`
}

// ChartSeries derives the chart lines from the ledgers in the report's view.
func (r *Report) ChartSeries() []ChartPoint {
	rows := r.LedgerRows()
	points := make([]ChartPoint, 0, len(rows))
	for _, row := range rows {
		wlNet := row.WLCashValue.Sub(row.WLTotalPremiums)
		btidNet := row.Investment.Sub(row.TermTotalPremiums)
		points = append(points, ChartPoint{
			Age:              row.Age,
			Year:             row.Year,
			WLCashValue:      row.WLCashValue,
			WLDeathBenefit:   row.WLDeathBenefit,
			WLTotal:          row.WLCashValue.Add(row.WLDeathBenefit),
			WLNetValue:       wlNet,
			WLNetEstate:      wlNet.Add(row.WLDeathBenefit),
			BTIDInvestment:   row.Investment,
			BTIDEstate:       row.BTIDEstate,
			BTIDNetValue:     btidNet,
			BTIDNetEstate:    btidNet.Add(row.TermDeathBenefit),
			TermDeathBenefit: row.TermDeathBenefit,
			TermActive:       row.TermActive,
		})
	}
	return points
}
