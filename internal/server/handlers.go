package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gridpath/internal/core"
	"gridpath/internal/grid"
	"gridpath/internal/scenario"
	"gridpath/internal/search"
	"gridpath/internal/session"
)

// Handlers serves the search API.
type Handlers struct {
	store    *Store
	maxSteps int
	maxCells int
	logger   *slog.Logger
}

// statusClientClosedRequest reports a request abandoned by the client.
const statusClientClosedRequest = 499

// NewHandlers wires handlers to a store.
func NewHandlers(store *Store, cfg Config, logger *slog.Logger) *Handlers {
	return &Handlers{store: store, maxSteps: cfg.MaxSteps, maxCells: cfg.MaxCells, logger: logger}
}

// RegisterRoutes mounts the versioned endpoints on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/layouts", h.HandleLayouts)
	searches := rg.Group("/searches")
	searches.POST("", h.HandleCreate)
	searches.GET("/:id", h.HandleGet)
	searches.POST("/:id/step", h.HandleStep)
	searches.POST("/:id/run", h.HandleRun)
	searches.DELETE("/:id", h.HandleDelete)
}

// HandleHealth reports liveness and the stored search count.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Searches: h.store.Len()})
}

// HandleLayouts lists registered layouts.
func (h *Handlers) HandleLayouts(c *gin.Context) {
	c.JSON(http.StatusOK, LayoutsResponse{Layouts: core.LayoutNames()})
}

// HandleCreate builds a grid from a scenario body and attaches an Idle
// search to it.
func (h *Handlers) HandleCreate(c *gin.Context) {
	var sc scenario.Scenario
	if err := c.ShouldBindJSON(&sc); err != nil {
		h.writeError(c, fmt.Errorf("%w: %v", scenario.ErrInvalid, err))
		return
	}
	size, err := sc.Size()
	if err != nil {
		h.writeError(c, err)
		return
	}
	if h.maxCells > 0 && size.W > 0 && size.H > 0 && !grid.WithinCells(size.W, size.H, h.maxCells) {
		h.writeError(c, fmt.Errorf("%w: %dx%d exceeds %d cells", grid.ErrInvalidDimensions, size.W, size.H, h.maxCells))
		return
	}
	g, err := sc.Build()
	if err != nil {
		h.writeError(c, err)
		return
	}
	s := session.FromGrid(g, h.logger)
	if err := s.Begin(); err != nil {
		h.writeError(c, err)
		return
	}
	e, err := h.store.Add(s)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.logger.Info("search created", slog.String("id", e.id), slog.Int("width", g.Width()), slog.Int("height", g.Height()))

	e.mu.Lock()
	resp := toResponse(e)
	e.mu.Unlock()
	c.JSON(http.StatusCreated, resp)
}

// HandleGet returns the current snapshot.
func (h *Handlers) HandleGet(c *gin.Context) {
	h.respond(c, func(*entry) error { return nil })
}

// HandleStep advances the search by the n query parameter (default 1).
func (h *Handlers) HandleStep(c *gin.Context) {
	n := 1
	if raw := c.Query("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > h.maxSteps {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("n must be an integer in [1, %d]", h.maxSteps)})
			return
		}
		n = v
	}
	h.respond(c, func(e *entry) error {
		_, err := e.session.Advance(n)
		return err
	})
}

// HandleRun steps until the search is terminal or the request is cancelled.
func (h *Handlers) HandleRun(c *gin.Context) {
	h.respond(c, func(e *entry) error {
		_, err := e.session.Engine().Run(c.Request.Context())
		return err
	})
}

// HandleDelete drops a search.
func (h *Handlers) HandleDelete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(id); err != nil {
		h.writeError(c, err)
		return
	}
	h.logger.Info("search deleted", slog.String("id", id))
	c.Status(http.StatusNoContent)
}

func (h *Handlers) respond(c *gin.Context, fn func(*entry) error) {
	var resp SearchResponse
	err := h.store.With(c.Param("id"), func(e *entry) error {
		if err := fn(e); err != nil {
			return err
		}
		resp = toResponse(e)
		return nil
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	switch {
	case status == statusClientClosedRequest:
		h.logger.Debug("request abandoned", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	case status == http.StatusServiceUnavailable:
		h.logger.Warn("request timed out", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	case status >= http.StatusInternalServerError:
		h.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrFull):
		return http.StatusTooManyRequests
	case errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, grid.ErrInvalidDimensions),
		errors.Is(err, scenario.ErrInvalid),
		errors.Is(err, search.ErrMissingEndpoints),
		errors.Is(err, core.ErrUnknownLayout):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
