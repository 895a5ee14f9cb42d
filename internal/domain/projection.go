package domain

import (
	"github.com/shopspring/decimal"
)

// WholeLifeYear is one year of the whole life ledger. Every money field has a Real
// sibling deflated to today's dollars.
type WholeLifeYear struct {
	Year int `json:"year"`
	Age  int `json:"age"`

	PremiumPaid       decimal.Decimal `json:"premium_paid"`
	TotalPremiumsPaid decimal.Decimal `json:"total_premiums_paid"`
	CashValue         decimal.Decimal `json:"cash_value"`
	PaidUpAdditions   decimal.Decimal `json:"paid_up_additions"`
	DeathBenefit      decimal.Decimal `json:"death_benefit"` // base (possibly multiplied) plus paid-up additions

	PremiumPaidReal       decimal.Decimal `json:"premium_paid_real"`
	TotalPremiumsPaidReal decimal.Decimal `json:"total_premiums_paid_real"`
	CashValueReal         decimal.Decimal `json:"cash_value_real"`
	PaidUpAdditionsReal   decimal.Decimal `json:"paid_up_additions_real"`
	DeathBenefitReal      decimal.Decimal `json:"death_benefit_real"`
}

// BTIDYear is one year of the buy-term-and-invest ledger.
type BTIDYear struct {
	Year       int  `json:"year"`
	Age        int  `json:"age"`
	TermActive bool `json:"term_active"`

	TermPremium            decimal.Decimal `json:"term_premium"`
	TotalPremiumsPaid      decimal.Decimal `json:"total_premiums_paid"`
	TermDeathBenefit       decimal.Decimal `json:"term_death_benefit"`
	InvestmentContribution decimal.Decimal `json:"investment_contribution"`
	InvestmentBalance      decimal.Decimal `json:"investment_balance"`
	TotalEstateValue       decimal.Decimal `json:"total_estate_value"` // balance plus term death benefit

	TermPremiumReal            decimal.Decimal `json:"term_premium_real"`
	TotalPremiumsPaidReal      decimal.Decimal `json:"total_premiums_paid_real"`
	TermDeathBenefitReal       decimal.Decimal `json:"term_death_benefit_real"`
	InvestmentContributionReal decimal.Decimal `json:"investment_contribution_real"`
	InvestmentBalanceReal      decimal.Decimal `json:"investment_balance_real"`
	TotalEstateValueReal       decimal.Decimal `json:"total_estate_value_real"`
}

// Breakeven marks the projection year (and age) at which a crossover occurs.
type Breakeven struct {
	Year int `json:"year"`
	Age  int `json:"age"`
}

// BreakevenSet holds the tracked crossovers; nil means the crossover never happens.
type BreakevenSet struct {
	InvestmentVsCashValue      *Breakeven `json:"investment_vs_cash_value,omitempty"`
	WLDeathBenefitVsInvestment *Breakeven `json:"wl_death_benefit_vs_investment,omitempty"`
}

// StrategySnapshot is one strategy's position at a summary age.
type StrategySnapshot struct {
	TotalPremiums     decimal.Decimal `json:"total_premiums"`
	TotalPremiumsReal decimal.Decimal `json:"total_premiums_real"`
	Liquidity         decimal.Decimal `json:"liquidity"`
	LiquidityReal     decimal.Decimal `json:"liquidity_real"`
	EstateValue       decimal.Decimal `json:"estate_value"`
	EstateValueReal   decimal.Decimal `json:"estate_value_real"`
}

// SummaryRow compares both strategies at a single age.
type SummaryRow struct {
	Age       int              `json:"age"`
	WholeLife StrategySnapshot `json:"wl"`
	BTID      StrategySnapshot `json:"btid"`
}

// ProjectionResult is the full output of one projection pass.
type ProjectionResult struct {
	WholeLifeLedger []WholeLifeYear `json:"whole_life_ledger"`
	BTIDLedger      []BTIDYear      `json:"btid_ledger"`
	Breakevens      BreakevenSet    `json:"breakevens"`
	Summary         []SummaryRow    `json:"summary"`
}

// EmptyProjectionResult is substituted when a projection pass fails.
func EmptyProjectionResult() *ProjectionResult {
	return &ProjectionResult{
		WholeLifeLedger: []WholeLifeYear{},
		BTIDLedger:      []BTIDYear{},
		Summary:         []SummaryRow{},
	}
}

// IsEmpty reports whether the result carries no ledger data.
func (r *ProjectionResult) IsEmpty() bool {
	return r == nil || len(r.WholeLifeLedger) == 0
}

// TermLapseYear returns the first year the term policy is inactive, or -1 if it never lapses.
func (r *ProjectionResult) TermLapseYear() int {
	for _, y := range r.BTIDLedger {
		if !y.TermActive {
			return y.Year
		}
	}
	return -1
}

// Snapshot returns the whole life position for the summary table.
func (y WholeLifeYear) Snapshot() StrategySnapshot {
	return StrategySnapshot{
		TotalPremiums:     y.TotalPremiumsPaid,
		TotalPremiumsReal: y.TotalPremiumsPaidReal,
		Liquidity:         y.CashValue,
		LiquidityReal:     y.CashValueReal,
		EstateValue:       y.DeathBenefit,
		EstateValueReal:   y.DeathBenefitReal,
	}
}

// Snapshot returns the BTID position for the summary table.
func (y BTIDYear) Snapshot() StrategySnapshot {
	return StrategySnapshot{
		TotalPremiums:     y.TotalPremiumsPaid,
		TotalPremiumsReal: y.TotalPremiumsPaidReal,
		Liquidity:         y.InvestmentBalance,
		LiquidityReal:     y.InvestmentBalanceReal,
		EstateValue:       y.TotalEstateValue,
		EstateValueReal:   y.TotalEstateValueReal,
	}
}
