package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/harshbadhann2/society-home-connect/internal/fallback"
	"github.com/harshbadhann2/society-home-connect/internal/middleware"
	"github.com/harshbadhann2/society-home-connect/internal/repository"
)

const dbTimeout = 5 * time.Second

// Rows is the backend collaborator for one collection.
type Rows[T any] interface {
	List(ctx context.Context, f repository.Filter) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Insert(ctx context.Context, row *T) error
	Update(ctx context.Context, id int64, row *T) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	HasColumn(name string) bool
}

// Invalidator drops cached responses of a route after a mutation.
type Invalidator interface {
	Invalidate(ctx context.Context, route string)
}

// Collection serves one dashboard view: the list (with sample-data
// fallback) and single-record reads and mutations.
type Collection[T any] struct {
	View     string
	Route    string
	Rows     Rows[T]
	Sample   func() []T
	Validate func(*T) error
	Reporter fallback.Reporter
	Cache    Invalidator
	Log      *slog.Logger
}

type listResponse[T any] struct {
	View   string          `json:"view"`
	Items  []T             `json:"items"`
	Source fallback.Source `json:"source"`
	Notice string          `json:"notice,omitempty"`
}

// maxLimit caps ?limit= on list views.
const maxLimit = 500

// listFilter reads ?field=&value=&limit= and rejects unknown fields before
// any backend call.
func (h *Collection[T]) listFilter(c echo.Context) (repository.Filter, error) {
	var f repository.Filter
	if field := c.QueryParam("field"); field != "" {
		if !h.Rows.HasColumn(field) {
			return f, fmt.Errorf("unknown field %q", field)
		}
		f.Column, f.Value = field, c.QueryParam("value")
	}
	if l := c.QueryParam("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			return f, errors.New("limit must be a positive integer")
		}
		f.Limit = min(n, maxLimit)
	}
	return f, nil
}

// List handles GET <route>.
func (h *Collection[T]) List(c echo.Context) error {
	f, err := h.listFilter(c)
	if err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	res := fallback.FetchOrFallback(ctx, h.Reporter, h.View,
		func(ctx context.Context) ([]T, error) { return h.Rows.List(ctx, f) },
		h.Sample)
	c.Response().Header().Set(middleware.DataSourceHeader, string(res.Source))
	return c.JSON(http.StatusOK, listResponse[T]{View: h.View, Items: res.Items, Source: res.Source, Notice: res.Notice()})
}

// Get handles GET <route>/:id.
func (h *Collection[T]) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	row, err := h.Rows.Get(ctx, id)
	if err != nil {
		return h.failed(c, "get", err)
	}
	return c.JSON(http.StatusOK, row)
}

// Create handles POST <route>.
func (h *Collection[T]) Create(c echo.Context) error {
	var row T
	if err := c.Bind(&row); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Validate(&row); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Rows.Insert(ctx, &row); err != nil {
		return h.failed(c, "insert", err)
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusCreated, row)
}

// Update handles PUT <route>/:id. Every writable field is replaced.
func (h *Collection[T]) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err)
	}
	var row T
	if err := c.Bind(&row); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Validate(&row); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Rows.Update(ctx, id, &row); err != nil {
		return h.failed(c, "update", err)
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusOK, row)
}

// Delete handles DELETE <route>/:id.
func (h *Collection[T]) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Rows.Delete(ctx, id); err != nil {
		return h.failed(c, "delete", err)
	}
	h.invalidate(ctx)
	return c.NoContent(http.StatusNoContent)
}

func (h *Collection[T]) invalidate(ctx context.Context) {
	if h.Cache != nil {
		h.Cache.Invalidate(ctx, h.Route)
	}
}

func (h *Collection[T]) failed(c echo.Context, op string, err error) error {
	if h.Log != nil {
		h.Log.Warn("backend call failed", "view", h.View, "op", op, "err", err)
	}
	return backendFailure(c, err)
}
