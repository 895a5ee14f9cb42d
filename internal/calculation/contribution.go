package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wlbtid/calculator/internal/domain"
	dec "github.com/wlbtid/calculator/pkg/decimal"
)

// ContributionState is what a contribution policy may look at for one year.
type ContributionState struct {
	WLPremium         decimal.Decimal // full annual WL premium, even after premiums stop
	TermCost          decimal.Decimal // annual term premium while coverage is active
	TermPremium       decimal.Decimal // term premium actually paid this year
	TermActive        bool
	PaymentYears      int // WL premium-paying years
	YearsToRetirement int
}

// ContributionPolicy decides how much the BTID side invests in a given year.
type ContributionPolicy interface {
	Contribution(year int, s ContributionState) decimal.Decimal
	Strategy() domain.ContributionStrategy
}

// CashFlowMatchPolicy invests the premium difference only while WL premiums are due.
type CashFlowMatchPolicy struct{}

// Contribution returns max(0, WL premium - term premium) inside the WL payment window.
func (CashFlowMatchPolicy) Contribution(year int, s ContributionState) decimal.Decimal {
	if year >= s.PaymentYears {
		return decimal.Zero
	}
	return dec.Max(decimal.Zero, s.WLPremium.Sub(s.TermPremium))
}

// Strategy returns the configuration tag for this policy.
func (CashFlowMatchPolicy) Strategy() domain.ContributionStrategy { return domain.CashFlowMatch }

// BudgetAllocationPolicy keeps the whole WL budget working until retirement. Once the
// term lapses the freed term cost is invested as well.
type BudgetAllocationPolicy struct{}

// Contribution returns the WL premium net of term cost before retirement, zero after.
func (BudgetAllocationPolicy) Contribution(year int, s ContributionState) decimal.Decimal {
	if year >= s.YearsToRetirement {
		return decimal.Zero
	}
	if !s.TermActive {
		return s.WLPremium
	}
	return dec.Max(decimal.Zero, s.WLPremium.Sub(s.TermCost))
}

// Strategy returns the configuration tag for this policy.
func (BudgetAllocationPolicy) Strategy() domain.ContributionStrategy {
	return domain.BudgetAllocation
}

// ContributionPolicyFor selects the policy for a strategy. Anything other than
// cashFlowMatch allocates the budget.
func ContributionPolicyFor(s domain.ContributionStrategy) ContributionPolicy {
	if s == domain.CashFlowMatch {
		return CashFlowMatchPolicy{}
	}
	return BudgetAllocationPolicy{}
}
