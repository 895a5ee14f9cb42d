package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wlbtid/calculator/internal/domain"
	dec "github.com/wlbtid/calculator/pkg/decimal"
)

// Paid-up additions credit dividends for at most this many policy years.
const dividendYearsCap = 20

var paidUpAccrualFactor = decimal.NewFromFloat(0.1)

// ledgerPlan holds everything resolved once before the yearly loop.
type ledgerPlan struct {
	maxYears          int
	paymentYears      int
	termYears         int
	yearsToRetirement int
	policy            ContributionPolicy
	returnFactor      decimal.Decimal
	multiplier        decimal.Decimal
}

func newLedgerPlan(cfg *domain.Configuration) ledgerPlan {
	p := cfg.Profile
	retirementAge := p.RetirementAge
	if retirementAge < p.CurrentAge+1 {
		retirementAge = p.CurrentAge + 1
	}
	multiplier := cfg.WholeLife.DeathBenefitMultiplier
	if multiplier.IsZero() {
		multiplier = decimal.NewFromInt(1)
	}
	return ledgerPlan{
		maxYears:          p.HorizonYears(),
		paymentYears:      cfg.WholeLife.PaymentDuration.PaymentYears(p.CurrentAge, p.RetirementAge),
		termYears:         cfg.BTID.TermDuration.Resolve(p.CurrentAge, p.RetirementAge),
		yearsToRetirement: retirementAge - p.CurrentAge,
		policy:            ContributionPolicyFor(cfg.BTID.PostPremiumStrategy),
		returnFactor:      dec.GrowthFactor(cfg.BTID.InvestmentReturnRate),
		multiplier:        multiplier,
	}
}

// PaidUpAdditions is the simplified dividend accrual added to the WL death benefit:
// cashValue × dividendRate% × min(year, 20) × 0.1.
func PaidUpAdditions(cashValue, dividendRatePercent decimal.Decimal, year int) decimal.Decimal {
	creditedYears := year
	if creditedYears > dividendYearsCap {
		creditedYears = dividendYearsCap
	}
	if creditedYears < 0 {
		creditedYears = 0
	}
	return cashValue.
		Mul(dec.Rate(dividendRatePercent)).
		Mul(decimal.NewFromInt(int64(creditedYears))).
		Mul(paidUpAccrualFactor)
}

// GenerateLedgers runs the yearly recurrence for both strategies over years 0..maxYears
// using the supplied cash value curve.
func (ce *CalculationEngine) GenerateLedgers(cfg *domain.Configuration, cashValues []decimal.Decimal) ([]domain.WholeLifeYear, []domain.BTIDYear) {
	plan := newLedgerPlan(cfg)
	profile := cfg.Profile
	wl := cfg.WholeLife
	btid := cfg.BTID

	ce.Logger.Debugf("ledger plan: years=%d payment_years=%d term_years=%d years_to_retirement=%d strategy=%s",
		plan.maxYears, plan.paymentYears, plan.termYears, plan.yearsToRetirement, plan.policy.Strategy())

	wlLedger := make([]domain.WholeLifeYear, 0, plan.maxYears+1)
	btidLedger := make([]domain.BTIDYear, 0, plan.maxYears+1)

	wlTotalPremiums := decimal.Zero
	termTotalPremiums := decimal.Zero
	balance := decimal.Zero

	for year := 0; year <= plan.maxYears; year++ {
		age := profile.CurrentAge + year
		deflator := dec.CompoundFactor(profile.InflationRate, year)
		toReal := func(v decimal.Decimal) decimal.Decimal { return dec.Deflate(v, deflator) }

		// Whole life
		premium := decimal.Zero
		if year < plan.paymentYears {
			premium = wl.AnnualPremium
		}
		wlTotalPremiums = wlTotalPremiums.Add(premium)

		cashValue := decimal.Zero
		if year < len(cashValues) {
			cashValue = cashValues[year]
		}

		baseBenefit := wl.DeathBenefit
		if age < profile.RetirementAge {
			baseBenefit = baseBenefit.Mul(plan.multiplier)
		}
		pua := PaidUpAdditions(cashValue, wl.DividendRate, year)
		deathBenefit := baseBenefit.Add(pua)

		// Term and investments
		termActive := year < plan.termYears
		termPremium := decimal.Zero
		termBenefit := decimal.Zero
		if termActive {
			termPremium = btid.TermCost
			termBenefit = btid.DeathBenefit
		}
		termTotalPremiums = termTotalPremiums.Add(termPremium)

		contribution := plan.policy.Contribution(year, ContributionState{
			WLPremium:         wl.AnnualPremium,
			TermCost:          btid.TermCost,
			TermPremium:       termPremium,
			TermActive:        termActive,
			PaymentYears:      plan.paymentYears,
			YearsToRetirement: plan.yearsToRetirement,
		})
		if year == 0 {
			balance = contribution
		} else {
			balance = balance.Mul(plan.returnFactor).Round(dec.Precision).Add(contribution)
		}
		estate := balance.Add(termBenefit)

		wlLedger = append(wlLedger, domain.WholeLifeYear{
			Year:                  year,
			Age:                   age,
			PremiumPaid:           premium,
			TotalPremiumsPaid:     wlTotalPremiums,
			CashValue:             cashValue,
			PaidUpAdditions:       pua,
			DeathBenefit:          deathBenefit,
			PremiumPaidReal:       toReal(premium),
			TotalPremiumsPaidReal: toReal(wlTotalPremiums),
			CashValueReal:         toReal(cashValue),
			PaidUpAdditionsReal:   toReal(pua),
			DeathBenefitReal:      toReal(deathBenefit),
		})

		btidLedger = append(btidLedger, domain.BTIDYear{
			Year:                       year,
			Age:                        age,
			TermActive:                 termActive,
			TermPremium:                termPremium,
			TotalPremiumsPaid:          termTotalPremiums,
			TermDeathBenefit:           termBenefit,
			InvestmentContribution:     contribution,
			InvestmentBalance:          balance,
			TotalEstateValue:           estate,
			TermPremiumReal:            toReal(termPremium),
			TotalPremiumsPaidReal:      toReal(termTotalPremiums),
			TermDeathBenefitReal:       toReal(termBenefit),
			InvestmentContributionReal: toReal(contribution),
			InvestmentBalanceReal:      toReal(balance),
			TotalEstateValueReal:       toReal(estate),
		})

		if ce.Debug {
			ce.Logger.Debugf("year %d age %d: wl_cv=%s wl_db=%s btid_bal=%s btid_estate=%s term_active=%t",
				year, age, cashValue.StringFixed(2), deathBenefit.StringFixed(2),
				balance.StringFixed(2), estate.StringFixed(2), termActive)
		}
	}

	return wlLedger, btidLedger
}
