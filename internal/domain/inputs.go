package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTermDuration is returned when a term duration token cannot be parsed.
var ErrInvalidTermDuration = errors.New("invalid term duration")

// Configuration is the merged parameter set for one projection pass.
type Configuration struct {
	Profile   Profile         `yaml:"profile" json:"profile"`
	WholeLife WholeLifeParams `yaml:"whole_life" json:"whole_life"`
	BTID      BTIDParams      `yaml:"btid" json:"btid"`
}

// Profile describes the insured person. Ages are whole years; InflationRate is a percentage.
type Profile struct {
	CurrentAge     int             `yaml:"current_age" json:"current_age"`
	RetirementAge  int             `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy int             `yaml:"life_expectancy" json:"life_expectancy"`
	InflationRate  decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
}

// HorizonYears returns the number of projected years after the current age (minimum 1).
func (p Profile) HorizonYears() int {
	n := p.LifeExpectancy - p.CurrentAge
	if n < 1 {
		return 1
	}
	return n
}

// PaymentDuration selects how long whole life premiums are paid.
type PaymentDuration string

const (
	PayForLife      PaymentDuration = "life"
	PayTenYears     PaymentDuration = "10"
	PayTwentyYears  PaymentDuration = "20"
	PayToRetirement PaymentDuration = "65"
)

// PaymentYears returns the number of premium-paying years. Unknown values pay for life.
func (d PaymentDuration) PaymentYears(currentAge, retirementAge int) int {
	switch d {
	case PayTenYears:
		return 10
	case PayTwentyYears:
		return 20
	case PayToRetirement:
		if retirementAge-currentAge < 0 {
			return 0
		}
		return retirementAge - currentAge
	default:
		return 100 - currentAge
	}
}

// Label returns a human readable description.
func (d PaymentDuration) Label() string {
	switch d {
	case PayTenYears:
		return "10 Years"
	case PayTwentyYears:
		return "20 Years"
	case PayToRetirement:
		return "Pay to Retirement"
	default:
		return "Life Pay"
	}
}

// CalibrationPoints are cash values read off an insurer illustration. Nil means not supplied.
type CalibrationPoints struct {
	Year5  *decimal.Decimal `yaml:"year5" json:"year5"`
	Year10 *decimal.Decimal `yaml:"year10" json:"year10"`
	Year20 *decimal.Decimal `yaml:"year20" json:"year20"`
}

// IsEmpty reports whether no calibration point was supplied.
func (cp CalibrationPoints) IsEmpty() bool {
	return cp.Year5 == nil && cp.Year10 == nil && cp.Year20 == nil
}

// Points returns the supplied calibration points in year order.
func (cp CalibrationPoints) Points() []CurvePoint {
	var pts []CurvePoint
	if cp.Year5 != nil {
		pts = append(pts, CurvePoint{Year: 5, Value: *cp.Year5})
	}
	if cp.Year10 != nil {
		pts = append(pts, CurvePoint{Year: 10, Value: *cp.Year10})
	}
	if cp.Year20 != nil {
		pts = append(pts, CurvePoint{Year: 20, Value: *cp.Year20})
	}
	return pts
}

// UnmarshalYAML accepts numbers, numeric strings, or null for each point.
func (cp *CalibrationPoints) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Year5  *string `yaml:"year5"`
		Year10 *string `yaml:"year10"`
		Year20 *string `yaml:"year20"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	parse := func(field string, s *string) (*decimal.Decimal, error) {
		if s == nil || strings.TrimSpace(*s) == "" || *s == "null" || *s == "~" {
			return nil, nil
		}
		v, err := decimal.NewFromString(strings.TrimSpace(*s))
		if err != nil {
			return nil, fmt.Errorf("calibration point %s: %w", field, err)
		}
		return &v, nil
	}

	var err error
	if cp.Year5, err = parse("year5", aux.Year5); err != nil {
		return err
	}
	if cp.Year10, err = parse("year10", aux.Year10); err != nil {
		return err
	}
	if cp.Year20, err = parse("year20", aux.Year20); err != nil {
		return err
	}
	return nil
}

// CurvePoint is a known (year, cash value) pair on the whole life curve.
type CurvePoint struct {
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
}

// WholeLifeParams are the whole life policy inputs. Rates are percentages.
type WholeLifeParams struct {
	AnnualPremium          decimal.Decimal   `yaml:"annual_premium" json:"annual_premium"`
	PaymentDuration        PaymentDuration   `yaml:"payment_duration" json:"payment_duration"`
	DividendRate           decimal.Decimal   `yaml:"dividend_rate" json:"dividend_rate"`
	DeathBenefit           decimal.Decimal   `yaml:"death_benefit" json:"death_benefit"`
	DeathBenefitMultiplier decimal.Decimal   `yaml:"death_benefit_multiplier" json:"death_benefit_multiplier"`
	CalibrationPoints      CalibrationPoints `yaml:"calibration_points" json:"calibration_points"`
}

// ContributionStrategy names how the BTID side invests once premiums diverge.
type ContributionStrategy string

const (
	// CashFlowMatch invests the premium difference only while WL premiums are still due.
	CashFlowMatch ContributionStrategy = "cashFlowMatch"
	// BudgetAllocation keeps investing the full WL budget until retirement.
	BudgetAllocation ContributionStrategy = "budgetAllocation"
)

// Description returns the explanatory text shown next to the strategy.
func (s ContributionStrategy) Description() string {
	if s == CashFlowMatch {
		return "Stop investing when WL premiums would have stopped"
	}
	return "Continue investing until retirement"
}

// BTIDParams are the term policy and investment inputs. Rates are percentages, net of fees.
type BTIDParams struct {
	TermCost             decimal.Decimal      `yaml:"term_cost" json:"term_cost"`
	TermDuration         TermDuration         `yaml:"term_duration" json:"term_duration"`
	DeathBenefit         decimal.Decimal      `yaml:"death_benefit" json:"death_benefit"`
	InvestmentReturnRate decimal.Decimal      `yaml:"investment_return_rate" json:"investment_return_rate"`
	PostPremiumStrategy  ContributionStrategy `yaml:"post_premium_strategy" json:"post_premium_strategy"`
}

// TermDurationKind tags how a TermDuration is expressed.
type TermDurationKind int

const (
	// TermFixedYears is a literal number of years.
	TermFixedYears TermDurationKind = iota
	// TermRetirementOffset runs until retirement plus an offset in years.
	TermRetirementOffset
)

// TermDuration is either a literal year count or an offset from retirement (0, 10 or 20).
type TermDuration struct {
	Kind  TermDurationKind
	Years int
}

// FixedTerm returns a literal term of n years.
func FixedTerm(n int) TermDuration { return TermDuration{Kind: TermFixedYears, Years: n} }

// TermUntilRetirement returns a term ending offset years after retirement.
func TermUntilRetirement(offset int) TermDuration {
	return TermDuration{Kind: TermRetirementOffset, Years: offset}
}

// ParseTermDuration parses "30", "retirement", "retirement+10" or "retirement+20".
func ParseTermDuration(s string) (TermDuration, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "retirement":
		return TermUntilRetirement(0), nil
	case "retirement+10":
		return TermUntilRetirement(10), nil
	case "retirement+20":
		return TermUntilRetirement(20), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return TermDuration{}, fmt.Errorf("%w: %q", ErrInvalidTermDuration, s)
	}
	return FixedTerm(n), nil
}

// Resolve converts the duration into a concrete number of covered years.
func (t TermDuration) Resolve(currentAge, retirementAge int) int {
	if t.Kind == TermRetirementOffset {
		end := retirementAge + t.Years
		if end < currentAge+1 {
			end = currentAge + 1
		}
		return end - currentAge
	}
	if t.Years < 1 {
		return 1
	}
	return t.Years
}

// String renders the token form accepted by ParseTermDuration.
func (t TermDuration) String() string {
	if t.Kind == TermRetirementOffset {
		if t.Years == 0 {
			return "retirement"
		}
		return fmt.Sprintf("retirement+%d", t.Years)
	}
	return strconv.Itoa(t.Years)
}

// Label returns a human readable description.
func (t TermDuration) Label() string {
	if t.Kind == TermRetirementOffset {
		if t.Years == 0 {
			return "Until Retirement"
		}
		return fmt.Sprintf("Retirement + %d Years", t.Years)
	}
	return fmt.Sprintf("%d Years", t.Years)
}

// MarshalJSON writes literal terms as numbers and retirement offsets as tokens.
func (t TermDuration) MarshalJSON() ([]byte, error) {
	if t.Kind == TermFixedYears {
		return []byte(strconv.Itoa(t.Years)), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts a number or a string token.
func (t *TermDuration) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = FixedTerm(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTermDuration, string(data))
	}
	parsed, err := ParseTermDuration(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (t TermDuration) MarshalYAML() (interface{}, error) {
	if t.Kind == TermFixedYears {
		return t.Years, nil
	}
	return t.String(), nil
}

// UnmarshalYAML accepts a number or a string token.
func (t *TermDuration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseTermDuration(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
