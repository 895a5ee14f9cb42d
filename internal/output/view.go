package output

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wlbtid/calculator/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches the requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ErrUnknownView is returned by ParseView for anything but nominal or real.
var ErrUnknownView = errors.New("unknown value view")

// View selects nominal or inflation-adjusted values for display.
type View int

const (
	Nominal View = iota
	Real
)

// ParseView accepts "nominal", "real" or an empty string (nominal).
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nominal":
		return Nominal, nil
	case "real":
		return Real, nil
	}
	return Nominal, fmt.Errorf("%w: %q", ErrUnknownView, s)
}

func (v View) String() string {
	if v == Real {
		return "real"
	}
	return "nominal"
}

// Label describes the view for report headings.
func (v View) Label() string {
	if v == Real {
		return "Real (today's dollars)"
	}
	return "Nominal"
}

func (v View) pick(nominal, real decimal.Decimal) decimal.Decimal {
	if v == Real {
		return real
	}
	return nominal
}

// Report is everything a formatter renders: the inputs, the projection and the view.
type Report struct {
	Config      *domain.Configuration
	Result      *domain.ProjectionResult
	View        View
	GeneratedAt time.Time
}

// NewReport bundles a projection for formatting. A nil result renders as empty.
func NewReport(cfg *domain.Configuration, result *domain.ProjectionResult, view View) *Report {
	if result == nil {
		result = domain.EmptyProjectionResult()
	}
	return &Report{Config: cfg, Result: result, View: view, GeneratedAt: time.Now()}
}

// ViewSnapshot is a strategy snapshot reduced to the selected view.
type ViewSnapshot struct {
	TotalPremiums decimal.Decimal `json:"total_premiums"`
	Liquidity     decimal.Decimal `json:"liquidity"`
	EstateValue   decimal.Decimal `json:"estate_value"`
}

// Snapshot reduces s to the view.
func (v View) Snapshot(s domain.StrategySnapshot) ViewSnapshot {
	return ViewSnapshot{
		TotalPremiums: v.pick(s.TotalPremiums, s.TotalPremiumsReal),
		Liquidity:     v.pick(s.Liquidity, s.LiquidityReal),
		EstateValue:   v.pick(s.EstateValue, s.EstateValueReal),
	}
}

// LedgerRow joins both ledgers for one year in the selected view.
type LedgerRow struct {
	Year int
	Age  int

	WLPremium       decimal.Decimal
	WLTotalPremiums decimal.Decimal
	WLCashValue     decimal.Decimal
	WLDeathBenefit  decimal.Decimal

	TermActive        bool
	TermPremium       decimal.Decimal
	TermTotalPremiums decimal.Decimal
	TermDeathBenefit  decimal.Decimal
	Contribution      decimal.Decimal
	Investment        decimal.Decimal
	BTIDEstate        decimal.Decimal
}

// LedgerRows pairs the ledgers year by year.
func (r *Report) LedgerRows() []LedgerRow {
	wl, btid := r.Result.WholeLifeLedger, r.Result.BTIDLedger
	n := len(wl)
	if len(btid) < n {
		n = len(btid)
	}
	v := r.View
	rows := make([]LedgerRow, 0, n)
	for i := 0; i < n; i++ {
		w, b := wl[i], btid[i]
		rows = append(rows, LedgerRow{
			Year:              w.Year,
			Age:               w.Age,
			WLPremium:         v.pick(w.PremiumPaid, w.PremiumPaidReal),
			WLTotalPremiums:   v.pick(w.TotalPremiumsPaid, w.TotalPremiumsPaidReal),
			WLCashValue:       v.pick(w.CashValue, w.CashValueReal),
			WLDeathBenefit:    v.pick(w.DeathBenefit, w.DeathBenefitReal),
			TermActive:        b.TermActive,
			TermPremium:       v.pick(b.TermPremium, b.TermPremiumReal),
			TermTotalPremiums: v.pick(b.TotalPremiumsPaid, b.TotalPremiumsPaidReal),
			TermDeathBenefit:  v.pick(b.TermDeathBenefit, b.TermDeathBenefitReal),
			Contribution:      v.pick(b.InvestmentContribution, b.InvestmentContributionReal),
			Investment:        v.pick(b.InvestmentBalance, b.InvestmentBalanceReal),
			BTIDEstate:        v.pick(b.TotalEstateValue, b.TotalEstateValueReal),
		})
	}
	return rows
}
