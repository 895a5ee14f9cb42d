package api

import (
	"github.com/wlbtid/calculator/internal/domain"
	"github.com/wlbtid/calculator/internal/output"
)

// ProjectionResponse is returned by POST /api/v1/projection.
type ProjectionResponse struct {
	Status     string                   `json:"status"` // "ok" or "failed"
	Message    string                   `json:"message,omitempty"`
	View       string                   `json:"view"`
	Inputs     *domain.Configuration    `json:"inputs"`
	Projection *domain.ProjectionResult `json:"projection"`
	Comparison []output.ComparisonRow   `json:"comparison"`
	Chart      []output.ChartPoint      `json:"chart"`
}

// InputsResponse carries one stored input group.
type InputsResponse struct {
	Group  string `json:"group"`
	Key    string `json:"key"`
	Stored bool   `json:"stored"`
	Values any    `json:"values"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
