package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/wlbtid/calculator/internal/domain"
	dec "github.com/wlbtid/calculator/pkg/decimal"
	"gopkg.in/yaml.v3"
)

// Input floors and ceilings applied by Sanitize.
const (
	MinCurrentAge = 18
	MinTermYears  = 1
)

var (
	minAnnualPremium = decimal.NewFromInt(100)
	minDeathBenefit  = decimal.NewFromInt(1000)
	minMultiplier    = decimal.NewFromInt(1)
	maxMultiplier    = decimal.NewFromInt(5)
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file. Fields missing from the
// file keep their default values; the result is validated and sanitized.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes configuration bytes on top of DefaultConfiguration.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return Sanitize(config), nil
}

// ValidateConfiguration rejects values that cannot be clamped into range: unknown
// enumerations and negative calibration points.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("configuration is nil")
	}
	if err := ip.ValidateWholeLife(&config.WholeLife); err != nil {
		return fmt.Errorf("whole life: %w", err)
	}
	if err := ip.ValidateBTID(&config.BTID); err != nil {
		return fmt.Errorf("btid: %w", err)
	}
	return nil
}

// ValidateWholeLife checks the whole life group on its own.
func (ip *InputParser) ValidateWholeLife(wl *domain.WholeLifeParams) error {
	switch wl.PaymentDuration {
	case domain.PayForLife, domain.PayTenYears, domain.PayTwentyYears, domain.PayToRetirement:
	default:
		return fmt.Errorf("unknown payment duration %q", wl.PaymentDuration)
	}

	for _, p := range wl.CalibrationPoints.Points() {
		if p.Value.IsNegative() {
			return fmt.Errorf("calibration point for year %d must not be negative, got %s", p.Year, p.Value)
		}
	}
	return nil
}

// ValidateBTID checks the term-and-invest group on its own.
func (ip *InputParser) ValidateBTID(btid *domain.BTIDParams) error {
	switch btid.PostPremiumStrategy {
	case domain.CashFlowMatch, domain.BudgetAllocation:
	default:
		return fmt.Errorf("unknown post premium strategy %q", btid.PostPremiumStrategy)
	}
	if btid.TermDuration.Kind == domain.TermRetirementOffset {
		switch btid.TermDuration.Years {
		case 0, 10, 20:
		default:
			return fmt.Errorf("%w: retirement offset %d", domain.ErrInvalidTermDuration, btid.TermDuration.Years)
		}
	}
	return nil
}

// Sanitize clamps every numeric input to its documented range, in place, and returns
// the same configuration. Ages are clamped in order so that
// currentAge < retirementAge < lifeExpectancy always holds afterwards.
func Sanitize(config *domain.Configuration) *domain.Configuration {
	SanitizeProfile(&config.Profile)
	SanitizeWholeLife(&config.WholeLife)
	SanitizeBTID(&config.BTID)
	return config
}

// SanitizeProfile clamps ages and the inflation rate.
func SanitizeProfile(p *domain.Profile) {
	if p.CurrentAge < MinCurrentAge {
		p.CurrentAge = MinCurrentAge
	}
	if p.RetirementAge < p.CurrentAge+1 {
		p.RetirementAge = p.CurrentAge + 1
	}
	if p.LifeExpectancy < p.RetirementAge+1 {
		p.LifeExpectancy = p.RetirementAge + 1
	}
	p.InflationRate = dec.Max(decimal.Zero, p.InflationRate)
}

// SanitizeWholeLife clamps premium, dividend, death benefit and multiplier.
func SanitizeWholeLife(wl *domain.WholeLifeParams) {
	wl.AnnualPremium = dec.Max(minAnnualPremium, wl.AnnualPremium)
	wl.DividendRate = dec.Max(decimal.Zero, wl.DividendRate)
	wl.DeathBenefit = dec.Max(minDeathBenefit, wl.DeathBenefit)
	wl.DeathBenefitMultiplier = dec.Clamp(wl.DeathBenefitMultiplier, minMultiplier, maxMultiplier)
	if wl.PaymentDuration == "" {
		wl.PaymentDuration = domain.PayTwentyYears
	}
}

// SanitizeBTID clamps term cost, duration, return rate and death benefit.
func SanitizeBTID(btid *domain.BTIDParams) {
	btid.TermCost = dec.Max(decimal.Zero, btid.TermCost)
	if btid.TermDuration.Kind == domain.TermFixedYears && btid.TermDuration.Years < MinTermYears {
		btid.TermDuration.Years = MinTermYears
	}
	btid.InvestmentReturnRate = dec.Max(decimal.Zero, btid.InvestmentReturnRate)
	btid.DeathBenefit = dec.Max(minDeathBenefit, btid.DeathBenefit)
	if btid.PostPremiumStrategy == "" {
		btid.PostPremiumStrategy = domain.BudgetAllocation
	}
}

// DefaultProfile is a 30 year old planning to retire at 65 with a 90 year horizon.
func DefaultProfile() domain.Profile {
	return domain.Profile{
		CurrentAge:     30,
		RetirementAge:  65,
		LifeExpectancy: 90,
		InflationRate:  decimal.NewFromFloat(2.5),
	}
}

// DefaultWholeLife is a 20-pay policy with a $500,000 face amount.
func DefaultWholeLife() domain.WholeLifeParams {
	return domain.WholeLifeParams{
		AnnualPremium:          decimal.NewFromInt(12000),
		PaymentDuration:        domain.PayTwentyYears,
		DividendRate:           decimal.NewFromFloat(4.25),
		DeathBenefit:           decimal.NewFromInt(500000),
		DeathBenefitMultiplier: decimal.NewFromInt(1),
	}
}

// DefaultBTID is a 30 year term with the difference invested at 7%.
func DefaultBTID() domain.BTIDParams {
	return domain.BTIDParams{
		TermCost:             decimal.NewFromInt(500),
		TermDuration:         domain.FixedTerm(30),
		DeathBenefit:         decimal.NewFromInt(500000),
		InvestmentReturnRate: decimal.NewFromInt(7),
		PostPremiumStrategy:  domain.BudgetAllocation,
	}
}

// DefaultConfiguration returns the built-in inputs used when nothing is saved.
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Profile:   DefaultProfile(),
		WholeLife: DefaultWholeLife(),
		BTID:      DefaultBTID(),
	}
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := DefaultConfiguration()
	year5 := decimal.NewFromInt(25000)
	year10 := decimal.NewFromInt(85000)
	year20 := decimal.NewFromInt(210000)
	config.WholeLife.CalibrationPoints = domain.CalibrationPoints{
		Year5:  &year5,
		Year10: &year10,
		Year20: &year20,
	}
	config.BTID.TermDuration = domain.TermUntilRetirement(0)
	return config
}
