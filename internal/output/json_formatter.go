package output

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/wlbtid/calculator/internal/domain"
)

// JSONFormatter serializes the projection, its inputs and the derived comparison as
// pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonReport struct {
	GeneratedAt time.Time                `json:"generated_at"`
	View        string                   `json:"view"`
	Inputs      *domain.Configuration    `json:"inputs,omitempty"`
	Projection  *domain.ProjectionResult `json:"projection"`
	Comparison  []ComparisonRow          `json:"comparison"`
	Chart       []ChartPoint             `json:"chart"`
}

func (j JSONFormatter) Format(r *Report) ([]byte, error) {
	return json.MarshalIndent(jsonReport{
		GeneratedAt: r.GeneratedAt,
		View:        r.View.String(),
		Inputs:      r.Config,
		Projection:  r.Result,
		Comparison:  BuildComparison(r.Result.Summary, r.View),
		Chart:       r.ChartSeries(),
	}, "", "  ")
}
