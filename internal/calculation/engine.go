package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/wlbtid/calculator/internal/domain"
)

// ErrProjectionFailed wraps any failure inside a projection pass. The accompanying
// result is always the empty projection.
var ErrProjectionFailed = errors.New("projection failed")

// CalculationEngine runs whole life vs buy-term-and-invest projections.
type CalculationEngine struct {
	Debug  bool // Log every ledger year
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunProjection performs one full pass: cash value curve, both ledgers, breakevens and
// the summary. Inputs are expected to be sanitized already. On any failure, including a
// panic in the arithmetic, it returns the empty projection together with an error
// wrapping ErrProjectionFailed.
func (ce *CalculationEngine) RunProjection(ctx context.Context, cfg *domain.Configuration) (result *domain.ProjectionResult, err error) {
	if ce.Logger == nil {
		ce.Logger = NopLogger{}
	}
	defer func() {
		if r := recover(); r != nil {
			ce.Logger.Errorf("projection panicked: %v", r)
			result = domain.EmptyProjectionResult()
			err = fmt.Errorf("%w: %v", ErrProjectionFailed, r)
		}
	}()

	if cfg == nil {
		return domain.EmptyProjectionResult(), fmt.Errorf("%w: nil configuration", ErrProjectionFailed)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.EmptyProjectionResult(), fmt.Errorf("%w: %w", ErrProjectionFailed, ctxErr)
	}

	maxYears := cfg.Profile.HorizonYears()
	cashValues := BuildCashValueCurve(cfg.WholeLife.CalibrationPoints, maxYears, cfg.WholeLife.AnnualPremium)
	if cfg.WholeLife.CalibrationPoints.IsEmpty() {
		ce.Logger.Debugf("cash value curve: default model over %d years", maxYears)
	} else {
		ce.Logger.Debugf("cash value curve: %d calibration points over %d years",
			len(cfg.WholeLife.CalibrationPoints.Points()), maxYears)
	}

	wl, btid := ce.GenerateLedgers(cfg, cashValues)
	result = &domain.ProjectionResult{
		WholeLifeLedger: wl,
		BTIDLedger:      btid,
		Breakevens:      FindBreakevens(wl, btid),
		Summary:         BuildSummary(wl, btid, cfg.Profile.CurrentAge),
	}

	ce.Logger.Infof("projection complete: %d years, %d summary rows", len(wl), len(result.Summary))
	return result, nil
}
