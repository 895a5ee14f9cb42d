package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wlbtid/calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "profile:\n" +
		"  current_age: 35\n" +
		"  retirement_age: 60\n" +
		"  life_expectancy: 95\n" +
		"  inflation_rate: 3\n" +
		"whole_life:\n" +
		"  annual_premium: 15000\n" +
		"  payment_duration: \"10\"\n" +
		"  dividend_rate: 5\n" +
		"  death_benefit: 750000\n" +
		"  death_benefit_multiplier: 2\n" +
		"  calibration_points:\n" +
		"    year5: 30000\n" +
		"    year10: null\n" +
		"    year20: \"250000\"\n" +
		"btid:\n" +
		"  term_cost: 650\n" +
		"  term_duration: retirement+10\n" +
		"  death_benefit: 750000\n" +
		"  investment_return_rate: 6.5\n" +
		"  post_premium_strategy: cashFlowMatch\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 35, config.Profile.CurrentAge)
	assert.Equal(t, 60, config.Profile.RetirementAge)
	assert.Equal(t, 95, config.Profile.LifeExpectancy)
	assert.True(t, config.Profile.InflationRate.Equal(decimal.NewFromInt(3)))

	assert.True(t, config.WholeLife.AnnualPremium.Equal(decimal.NewFromInt(15000)))
	assert.Equal(t, domain.PayTenYears, config.WholeLife.PaymentDuration)
	assert.True(t, config.WholeLife.DeathBenefitMultiplier.Equal(decimal.NewFromInt(2)))
	require.NotNil(t, config.WholeLife.CalibrationPoints.Year5)
	assert.Nil(t, config.WholeLife.CalibrationPoints.Year10)
	require.NotNil(t, config.WholeLife.CalibrationPoints.Year20)
	assert.True(t, config.WholeLife.CalibrationPoints.Year20.Equal(decimal.NewFromInt(250000)))

	assert.Equal(t, domain.TermUntilRetirement(10), config.BTID.TermDuration)
	assert.True(t, config.BTID.InvestmentReturnRate.Equal(decimal.NewFromFloat(6.5)))
	assert.Equal(t, domain.CashFlowMatch, config.BTID.PostPremiumStrategy)
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, "profile:\n  current_age: 40\n"))
	require.NoError(t, err)

	expected := DefaultConfiguration()
	expected.Profile.CurrentAge = 40
	assert.Equal(t, expected.Profile, config.Profile)
	assert.Equal(t, expected.WholeLife, config.WholeLife)
	assert.Equal(t, expected.BTID, config.BTID)
}

func TestLoadFromFile_JSON(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, `{"btid": {"term_duration": 20, "term_cost": 300}}`))
	require.NoError(t, err)

	assert.Equal(t, domain.FixedTerm(20), config.BTID.TermDuration)
	assert.True(t, config.BTID.TermCost.Equal(decimal.NewFromInt(300)))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
profile:
	current_age: "not-a-number"
`
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, testConfig))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidTermDuration(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTempConfig(t, "btid:\n  term_duration: forever\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTermDuration)
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr string
	}{
		{"defaults are valid", func(c *domain.Configuration) {}, ""},
		{"unknown payment duration", func(c *domain.Configuration) { c.WholeLife.PaymentDuration = "15" }, "unknown payment duration"},
		{"unknown strategy", func(c *domain.Configuration) { c.BTID.PostPremiumStrategy = "yolo" }, "unknown post premium strategy"},
		{"negative calibration point", func(c *domain.Configuration) {
			v := decimal.NewFromInt(-1)
			c.WholeLife.CalibrationPoints.Year10 = &v
		}, "must not be negative"},
		{"unsupported retirement offset", func(c *domain.Configuration) {
			c.BTID.TermDuration = domain.TermUntilRetirement(5)
		}, "retirement offset 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfiguration()
			tt.mutate(config)
			err := parser.ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Error(t, parser.ValidateConfiguration(nil))
}

func TestSanitize_Clamps(t *testing.T) {
	config := &domain.Configuration{
		Profile: domain.Profile{
			CurrentAge:     10,
			RetirementAge:  5,
			LifeExpectancy: 2,
			InflationRate:  decimal.NewFromInt(-3),
		},
		WholeLife: domain.WholeLifeParams{
			AnnualPremium:          decimal.NewFromInt(5),
			DividendRate:           decimal.NewFromInt(-1),
			DeathBenefit:           decimal.NewFromInt(10),
			DeathBenefitMultiplier: decimal.NewFromInt(9),
		},
		BTID: domain.BTIDParams{
			TermCost:             decimal.NewFromInt(-50),
			TermDuration:         domain.FixedTerm(0),
			DeathBenefit:         decimal.Zero,
			InvestmentReturnRate: decimal.NewFromInt(-2),
		},
	}

	Sanitize(config)

	assert.Equal(t, 18, config.Profile.CurrentAge)
	assert.Equal(t, 19, config.Profile.RetirementAge)
	assert.Equal(t, 20, config.Profile.LifeExpectancy)
	assert.True(t, config.Profile.InflationRate.IsZero())

	assert.True(t, config.WholeLife.AnnualPremium.Equal(decimal.NewFromInt(100)))
	assert.True(t, config.WholeLife.DividendRate.IsZero())
	assert.True(t, config.WholeLife.DeathBenefit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, config.WholeLife.DeathBenefitMultiplier.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, domain.PayTwentyYears, config.WholeLife.PaymentDuration)

	assert.True(t, config.BTID.TermCost.IsZero())
	assert.Equal(t, domain.FixedTerm(1), config.BTID.TermDuration)
	assert.True(t, config.BTID.DeathBenefit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, config.BTID.InvestmentReturnRate.IsZero())
	assert.Equal(t, domain.BudgetAllocation, config.BTID.PostPremiumStrategy)
}

func TestSanitize_MultiplierFloor(t *testing.T) {
	config := DefaultConfiguration()
	config.WholeLife.DeathBenefitMultiplier = decimal.NewFromFloat(0.5)
	Sanitize(config)
	assert.True(t, config.WholeLife.DeathBenefitMultiplier.Equal(decimal.NewFromInt(1)))
}

func TestSanitize_LeavesValidInputsAlone(t *testing.T) {
	config := DefaultConfiguration()
	assert.Equal(t, DefaultConfiguration(), Sanitize(config))
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NoError(t, parser.ValidateConfiguration(config))
	assert.False(t, config.WholeLife.CalibrationPoints.IsEmpty())
	assert.Len(t, config.WholeLife.CalibrationPoints.Points(), 3)
	assert.Equal(t, domain.TermUntilRetirement(0), config.BTID.TermDuration)

	// The example must survive a YAML round trip through the parser.
	data, err := yaml.Marshal(config)
	require.NoError(t, err)
	loaded, err := parser.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, config.BTID.TermDuration, loaded.BTID.TermDuration)
	require.NotNil(t, loaded.WholeLife.CalibrationPoints.Year10)
	assert.True(t, loaded.WholeLife.CalibrationPoints.Year10.Equal(decimal.NewFromInt(85000)))
	assert.True(t, loaded.Profile.InflationRate.Equal(config.Profile.InflationRate))
}
