package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wlbtid/calculator/internal/calculation"
	"github.com/wlbtid/calculator/internal/store"
)

func TestStoredInputsReproduceProjection(t *testing.T) {
	cfg := loadExample(t)
	st, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	require.NoError(t, st.SaveAll(cfg))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.BTID.TermDuration, loaded.BTID.TermDuration)
	assert.Equal(t, cfg.WholeLife.PaymentDuration, loaded.WholeLife.PaymentDuration)

	engine := calculation.NewCalculationEngine()
	want, err := engine.RunProjection(context.Background(), cfg)
	require.NoError(t, err)
	got, err := engine.RunProjection(context.Background(), loaded)
	require.NoError(t, err)

	require.Len(t, got.Summary, len(want.Summary))
	for i := range want.Summary {
		assert.True(t, got.Summary[i].BTID.EstateValue.Equal(want.Summary[i].BTID.EstateValue))
		assert.True(t, got.Summary[i].WholeLife.Liquidity.Equal(want.Summary[i].WholeLife.Liquidity))
	}

	require.NoError(t, st.Reset())
	defaults, err := st.Load()
	require.NoError(t, err)
	assert.True(t, defaults.WholeLife.CalibrationPoints.IsEmpty())
}
