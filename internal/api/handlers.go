package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/wlbtid/calculator/internal/calculation"
	"github.com/wlbtid/calculator/internal/config"
	"github.com/wlbtid/calculator/internal/domain"
	"github.com/wlbtid/calculator/internal/output"
	"github.com/wlbtid/calculator/internal/store"
)

// Handler serves projections over the stored inputs.
type Handler struct {
	engine *calculation.CalculationEngine
	store  *store.Store
	parser *config.InputParser
	logger *slog.Logger
}

// NewHandler creates a handler around an engine and a snapshot store.
func NewHandler(engine *calculation.CalculationEngine, st *store.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{engine: engine, store: st, parser: config.NewInputParser(), logger: logger}
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunProjection handles POST /api/v1/projection. The body, if any, is a partial
// configuration overlaid on the stored inputs.
func (h *Handler) RunProjection(c *gin.Context) {
	view, err := output.ParseView(c.Query("view"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_VIEW", err.Error()))
		return
	}

	cfg, ok := h.loadInputs(c)
	if !ok {
		return
	}
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err.Error()))
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, cfg); err != nil {
			c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err.Error()))
			return
		}
	}
	if err := h.parser.ValidateConfiguration(cfg); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_CONFIG", err.Error()))
		return
	}
	config.Sanitize(cfg)

	resp := ProjectionResponse{Status: "ok", View: view.String(), Inputs: cfg}
	result, err := h.engine.RunProjection(c.Request.Context(), cfg)
	if err != nil {
		h.logger.Warn("projection failed", "error", err)
		resp.Status = "failed"
		resp.Message = err.Error()
	}
	report := output.NewReport(cfg, result, view)
	resp.Projection = report.Result
	resp.Comparison = output.BuildComparison(report.Result.Summary, view)
	resp.Chart = report.ChartSeries()
	c.JSON(http.StatusOK, resp)
}

// Report handles GET /api/v1/report?format=html&view=real over the stored inputs.
func (h *Handler) Report(c *gin.Context) {
	format := c.DefaultQuery("format", "html")
	f := output.GetFormatterByName(format)
	if f == nil {
		c.JSON(http.StatusBadRequest, errorBody("UNSUPPORTED_FORMAT", output.ErrUnsupportedFormat.Error()+": "+format))
		return
	}
	view, err := output.ParseView(c.Query("view"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_VIEW", err.Error()))
		return
	}
	cfg, ok := h.loadInputs(c)
	if !ok {
		return
	}

	result, err := h.engine.RunProjection(c.Request.Context(), cfg)
	if err != nil {
		h.logger.Warn("projection failed", "error", err)
	}
	data, err := f.Format(output.NewReport(cfg, result, view))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("FORMAT_ERROR", err.Error()))
		return
	}
	c.Data(http.StatusOK, contentType(output.ExtensionFor(f.Name())), data)
}

// GetInputs handles GET /api/v1/inputs
func (h *Handler) GetInputs(c *gin.Context) {
	cfg, ok := h.loadInputs(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GetGroup handles GET /api/v1/inputs/:group
func (h *Handler) GetGroup(c *gin.Context) {
	g, ok := h.group(c)
	if !ok {
		return
	}
	cfg, ok := h.loadInputs(c)
	if !ok {
		return
	}
	h.respondGroup(c, g, cfg)
}

// PutGroup handles PUT /api/v1/inputs/:group. Fields absent from the body keep their
// stored values.
func (h *Handler) PutGroup(c *gin.Context) {
	g, ok := h.group(c)
	if !ok {
		return
	}
	cfg, ok := h.loadInputs(c)
	if !ok {
		return
	}
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err.Error()))
		return
	}
	if err := store.DecodeSection(g, body, cfg); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err.Error()))
		return
	}
	if err := h.parser.ValidateConfiguration(cfg); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_CONFIG", err.Error()))
		return
	}
	config.Sanitize(cfg)
	if err := h.store.Save(g, cfg); err != nil {
		h.logger.Error("failed to save inputs", "group", g, "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("STORE_ERROR", err.Error()))
		return
	}
	h.respondGroup(c, g, cfg)
}

// DeleteGroup handles DELETE /api/v1/inputs/:group
func (h *Handler) DeleteGroup(c *gin.Context) {
	g, ok := h.group(c)
	if !ok {
		return
	}
	if err := h.store.Remove(g); err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("STORE_ERROR", err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ResetInputs handles DELETE /api/v1/inputs
func (h *Handler) ResetInputs(c *gin.Context) {
	if err := h.store.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("STORE_ERROR", err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) loadInputs(c *gin.Context) (*domain.Configuration, bool) {
	cfg, err := h.store.Load()
	if err != nil {
		h.logger.Error("failed to load inputs", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("STORE_ERROR", err.Error()))
		return nil, false
	}
	return cfg, true
}

func (h *Handler) group(c *gin.Context) (store.Group, bool) {
	g, err := store.ParseGroup(c.Param("group"))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, store.ErrUnknownGroup) {
			status = http.StatusNotFound
		}
		c.JSON(status, errorBody("UNKNOWN_GROUP", err.Error()))
		return "", false
	}
	return g, true
}

func (h *Handler) respondGroup(c *gin.Context, g store.Group, cfg *domain.Configuration) {
	section, err := store.Section(g, cfg)
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody("UNKNOWN_GROUP", err.Error()))
		return
	}
	c.JSON(http.StatusOK, InputsResponse{Group: string(g), Key: g.Key(), Stored: h.store.Has(g), Values: section})
}

func contentType(ext string) string {
	switch ext {
	case "html":
		return "text/html; charset=utf-8"
	case "json":
		return "application/json"
	case "csv":
		return "text/csv; charset=utf-8"
	case "pdf":
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}
