package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wlbtid/calculator/internal/domain"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func dp(v float64) *decimal.Decimal {
	x := decimal.NewFromFloat(v)
	return &x
}

// baseConfig mirrors the application defaults.
func baseConfig() *domain.Configuration {
	return &domain.Configuration{
		Profile: domain.Profile{
			CurrentAge:     30,
			RetirementAge:  65,
			LifeExpectancy: 90,
			InflationRate:  d(2.5),
		},
		WholeLife: domain.WholeLifeParams{
			AnnualPremium:          d(12000),
			PaymentDuration:        domain.PayTwentyYears,
			DividendRate:           d(4.25),
			DeathBenefit:           d(500000),
			DeathBenefitMultiplier: d(1),
		},
		BTID: domain.BTIDParams{
			TermCost:             d(500),
			TermDuration:         domain.FixedTerm(30),
			DeathBenefit:         d(500000),
			InvestmentReturnRate: d(7),
			PostPremiumStrategy:  domain.BudgetAllocation,
		},
	}
}

func newTestEngine() *CalculationEngine {
	return NewCalculationEngine()
}
