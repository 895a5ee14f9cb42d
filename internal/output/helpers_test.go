package output_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wlbtid/calculator/internal/calculation"
	"github.com/wlbtid/calculator/internal/config"
	"github.com/wlbtid/calculator/internal/domain"
	"github.com/wlbtid/calculator/internal/output"
)

// newTestReport projects the default inputs (30 to 90, 30 year term) in the given view.
func newTestReport(t *testing.T, view output.View) *output.Report {
	t.Helper()
	cfg := config.DefaultConfiguration()
	res, err := calculation.NewCalculationEngine().RunProjection(context.Background(), cfg)
	require.NoError(t, err)
	return output.NewReport(cfg, res, view)
}

func newEmptyReport() *output.Report {
	return output.NewReport(config.DefaultConfiguration(), domain.EmptyProjectionResult(), output.Nominal)
}
