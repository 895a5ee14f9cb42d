package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wlbtid/calculator/internal/domain"
)

// comparison yields the two values whose ordering is tracked for year i.
type comparison func(i int) (subject, reference decimal.Decimal)

// firstCrossover returns the first year i >= 1 where subject moves from below reference
// at i-1 to at-or-above it at i.
func firstCrossover(n int, cmp comparison) (int, bool) {
	for i := 1; i < n; i++ {
		prevSubject, prevReference := cmp(i - 1)
		subject, reference := cmp(i)
		if prevSubject.LessThan(prevReference) && subject.GreaterThanOrEqual(reference) {
			return i, true
		}
	}
	return 0, false
}

// FindBreakevens scans both nominal ledgers for the tracked crossovers. Only the first
// crossing of each pair is reported; later reversals are ignored.
func FindBreakevens(wl []domain.WholeLifeYear, btid []domain.BTIDYear) domain.BreakevenSet {
	n := len(wl)
	if len(btid) < n {
		n = len(btid)
	}

	var set domain.BreakevenSet
	if year, ok := firstCrossover(n, func(i int) (decimal.Decimal, decimal.Decimal) {
		return btid[i].InvestmentBalance, wl[i].CashValue
	}); ok {
		set.InvestmentVsCashValue = &domain.Breakeven{Year: year, Age: wl[year].Age}
	}
	if year, ok := firstCrossover(n, func(i int) (decimal.Decimal, decimal.Decimal) {
		return wl[i].DeathBenefit, btid[i].TotalEstateValue
	}); ok {
		set.WLDeathBenefitVsInvestment = &domain.Breakeven{Year: year, Age: wl[year].Age}
	}
	return set
}

// BreakevenGap is the per-year spread behind both tracked crossovers.
type BreakevenGap struct {
	Year                    int
	Age                     int
	InvestmentMinusCash     decimal.Decimal
	DeathBenefitMinusEstate decimal.Decimal
}

// BreakevenGaps lists the signed differences year by year, useful for inspecting where
// and why a crossover does or does not happen.
func BreakevenGaps(wl []domain.WholeLifeYear, btid []domain.BTIDYear) []BreakevenGap {
	n := len(wl)
	if len(btid) < n {
		n = len(btid)
	}
	gaps := make([]BreakevenGap, 0, n)
	for i := 0; i < n; i++ {
		gaps = append(gaps, BreakevenGap{
			Year:                    wl[i].Year,
			Age:                     wl[i].Age,
			InvestmentMinusCash:     btid[i].InvestmentBalance.Sub(wl[i].CashValue),
			DeathBenefitMinusEstate: wl[i].DeathBenefit.Sub(btid[i].TotalEstateValue),
		})
	}
	return gaps
}
