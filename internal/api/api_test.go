package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wlbtid/calculator/internal/calculation"
	"github.com/wlbtid/calculator/internal/domain"
	"github.com/wlbtid/calculator/internal/store"
)

type projectionBody struct {
	Status     string                  `json:"status"`
	View       string                  `json:"view"`
	Inputs     domain.Configuration    `json:"inputs"`
	Projection domain.ProjectionResult `json:"projection"`
	Comparison []map[string]any        `json:"comparison"`
	Chart      []map[string]any        `json:"chart"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	h := NewHandler(calculation.NewCalculationEngine(), st, logger)
	return NewRouter(h, Options{}), st
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRunProjection_Defaults(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodPost, "/api/v1/projection", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body projectionBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "nominal", body.View)
	assert.Len(t, body.Projection.WholeLifeLedger, 61)
	assert.Len(t, body.Projection.BTIDLedger, 61)
	assert.Len(t, body.Projection.Summary, 4)
	assert.Len(t, body.Comparison, 4)
	assert.Len(t, body.Chart, 61)
	assert.Nil(t, body.Projection.Breakevens.InvestmentVsCashValue)
}

func TestRunProjection_OverlayAndRealView(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodPost, "/api/v1/projection?view=real",
		`{"profile":{"current_age":40,"life_expectancy":80},"btid":{"term_duration":"retirement+10"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body projectionBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "real", body.View)
	assert.Equal(t, 40, body.Inputs.Profile.CurrentAge)
	assert.Equal(t, 65, body.Inputs.Profile.RetirementAge)
	assert.Equal(t, domain.TermUntilRetirement(10), body.Inputs.BTID.TermDuration)
	require.Len(t, body.Projection.WholeLifeLedger, 41)
	assert.Equal(t, 40, body.Projection.WholeLifeLedger[0].Age)
}

func TestRunProjection_BadRequests(t *testing.T) {
	router, _ := newTestRouter(t)
	cases := []struct {
		name, path, body, code string
	}{
		{"bad view", "/api/v1/projection?view=future", "", "INVALID_VIEW"},
		{"bad json", "/api/v1/projection", `{"profile":`, "INVALID_REQUEST"},
		{"bad payment duration", "/api/v1/projection", `{"whole_life":{"payment_duration":"15"}}`, "INVALID_CONFIG"},
		{"bad strategy", "/api/v1/projection", `{"btid":{"post_premium_strategy":"spend"}}`, "INVALID_CONFIG"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.code, decodeError(t, w).Code)
		})
	}
}

func TestInputsLifecycle(t *testing.T) {
	router, st := newTestRouter(t)

	w := doRequest(router, http.MethodPut, "/api/v1/inputs/profile", `{"current_age":45}`)
	require.Equal(t, http.StatusOK, w.Code)
	var put struct {
		Group  string         `json:"group"`
		Key    string         `json:"key"`
		Stored bool           `json:"stored"`
		Values domain.Profile `json:"values"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &put))
	assert.Equal(t, "profile", put.Group)
	assert.Equal(t, "wl-btid-profile", put.Key)
	assert.True(t, put.Stored)
	assert.Equal(t, 45, put.Values.CurrentAge)
	assert.Equal(t, 65, put.Values.RetirementAge)
	assert.True(t, st.Has(store.GroupProfile))

	w = doRequest(router, http.MethodGet, "/api/v1/inputs", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cfg domain.Configuration
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, 45, cfg.Profile.CurrentAge)
	assert.Equal(t, domain.PayTwentyYears, cfg.WholeLife.PaymentDuration)

	w = doRequest(router, http.MethodPost, "/api/v1/projection", "")
	var body projectionBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Projection.WholeLifeLedger, 46)

	w = doRequest(router, http.MethodGet, "/api/v1/inputs/wl-btid-profile", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/inputs/profile", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, st.Has(store.GroupProfile))

	w = doRequest(router, http.MethodPut, "/api/v1/inputs/btid", `{"term_cost":"800"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, http.MethodDelete, "/api/v1/inputs", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, st.Has(store.GroupBTID))
}

func TestInputs_UnknownGroup(t *testing.T) {
	router, _ := newTestRouter(t)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := doRequest(router, method, "/api/v1/inputs/mortgage", "")
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Equal(t, "UNKNOWN_GROUP", decodeError(t, w).Code, method)
	}
}

func TestPutGroup_Invalid(t *testing.T) {
	router, st := newTestRouter(t)
	w := doRequest(router, http.MethodPut, "/api/v1/inputs/wholelife", `{"payment_duration":"15"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CONFIG", decodeError(t, w).Code)
	assert.False(t, st.Has(store.GroupWholeLife))

	w = doRequest(router, http.MethodPut, "/api/v1/inputs/wholelife", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReport(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/report?format=csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Age,View,"))

	w = doRequest(router, http.MethodGet, "/api/v1/report", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<svg")

	w = doRequest(router, http.MethodGet, "/api/v1/report?format=xml", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNSUPPORTED_FORMAT", decodeError(t, w).Code)
}

func TestCORS(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/projection", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	router, _ := newTestRouter(t)
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := doRequest(router, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, "INTERNAL_ERROR", detail.Code)
	assert.Equal(t, "boom", detail.Message)
}

func TestNotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, w).Code)
}
