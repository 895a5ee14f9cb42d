package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Options configures the HTTP server.
type Options struct {
	Addr           string
	AllowedOrigins []string
	Release        bool // gin release mode
}

// NewRouter wires middleware and routes.
func NewRouter(h *Handler, opts Options) *gin.Engine {
	if opts.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(CORS(opts.AllowedOrigins))
	router.Use(RequestLogger(h.logger))
	router.Use(ErrorHandler(h.logger))

	router.GET("/health", h.Health)

	api := router.Group("/api/v1")
	{
		api.POST("/projection", h.RunProjection)
		api.GET("/report", h.Report)

		api.GET("/inputs", h.GetInputs)
		api.DELETE("/inputs", h.ResetInputs)
		api.GET("/inputs/:group", h.GetGroup)
		api.PUT("/inputs/:group", h.PutGroup)
		api.DELETE("/inputs/:group", h.DeleteGroup)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorBody("NOT_FOUND", "Not found"))
	})
	return router
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, h *Handler, opts Options) error {
	srv := &http.Server{
		Addr:         opts.Addr,
		Handler:      NewRouter(h, opts),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	serverError := make(chan error, 1)
	go func() {
		h.logger.Info("api server listening", "addr", opts.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		h.logger.Info("api server stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	case err := <-serverError:
		return fmt.Errorf("server startup: %w", err)
	}
}
