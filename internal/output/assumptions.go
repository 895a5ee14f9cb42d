package output

import (
	"fmt"

	"github.com/wlbtid/calculator/internal/domain"
)

// DefaultAssumptions lists the modeling simplifications every report carries.
var DefaultAssumptions = []string{
	"Investment returns are net of fees; no taxes are modeled",
	"Cash value without calibration: zero for 3 years, then a simplified build and 4% growth after year 10",
	"Paid-up additions: cash value x dividend rate x min(year, 20) x 0.1",
	"Term premium and death benefit drop to zero the year the term lapses",
}

// GenerateAssumptions describes the inputs behind a projection.
func GenerateAssumptions(cfg *domain.Configuration) []string {
	if cfg == nil {
		return DefaultAssumptions
	}
	p, wl, btid := cfg.Profile, cfg.WholeLife, cfg.BTID

	calibration := "default model"
	if !wl.CalibrationPoints.IsEmpty() {
		cp := wl.CalibrationPoints
		calibration = fmt.Sprintf("year 5 %s, year 10 %s, year 20 %s",
			FormatOptionalCurrency(cp.Year5, false),
			FormatOptionalCurrency(cp.Year10, false),
			FormatOptionalCurrency(cp.Year20, false))
	}

	out := []string{
		fmt.Sprintf("Age %d, retiring at %d, projected to %d", p.CurrentAge, p.RetirementAge, p.LifeExpectancy),
		fmt.Sprintf("Inflation: %s annually", FormatPercentage(p.InflationRate)),
		fmt.Sprintf("Whole life: %s premium, %s, %s dividend, %s death benefit (%sx before retirement)",
			FormatCurrency(wl.AnnualPremium, false), wl.PaymentDuration.Label(), FormatPercentage(wl.DividendRate),
			FormatCurrency(wl.DeathBenefit, false), wl.DeathBenefitMultiplier.String()),
		fmt.Sprintf("Cash value curve: %s", calibration),
		fmt.Sprintf("Term: %s per year, %s, %s death benefit",
			FormatCurrency(btid.TermCost, false), btid.TermDuration.Label(), FormatCurrency(btid.DeathBenefit, false)),
		fmt.Sprintf("Investments: %s return, %s", FormatPercentage(btid.InvestmentReturnRate), btid.PostPremiumStrategy.Description()),
	}
	return append(out, DefaultAssumptions...)
}
