// Package fallback wraps view queries so a failing backend degrades to
// sample data instead of an error page.
package fallback

import (
	"context"
	"log/slog"
	"slices"

	"github.com/harshbadhann2/society-home-connect/internal/backend"
	"github.com/harshbadhann2/society-home-connect/internal/metrics"
)

// Source tells where a result's items came from.
type Source string

const (
	Live     Source = "live"
	Fallback Source = "fallback"
)

// Result is what a view renders. Kind is meaningful only for Source
// Fallback.
type Result[T any] struct {
	Items  []T
	Source Source
	Kind   backend.Kind
}

// Notice is the informational message shown above a fallback view, or ""
// for live data.
func (r Result[T]) Notice() string {
	if r.Source != Fallback {
		return ""
	}
	switch r.Kind {
	case backend.KindTableMissing:
		return "This data is not set up yet. Showing sample records."
	case backend.KindPermissionDenied:
		return "Access to this data is restricted. Showing sample records."
	case backend.KindTransient:
		return "The database is unreachable. Showing sample records."
	default:
		return "Could not load live data. Showing sample records."
	}
}

// Reporter receives fallback events. The zero value logs to slog.Default and
// records no metrics.
type Reporter struct {
	Log     *slog.Logger
	Metrics *metrics.Metrics
}

func (r Reporter) report(ctx context.Context, view string, err error) backend.Kind {
	kind := backend.KindOf(err)
	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	log.WarnContext(ctx, "serving sample data", "view", view, "kind", kind.String(), "err", err)
	r.Metrics.Fallback(view, kind.String())
	return kind
}

// FetchOrFallback runs query once. On error it returns fallback's items
// tagged with the error's kind; nothing is retried. A successful empty
// result is returned as is: "no records" is a valid answer and never
// replaced by sample data. The returned slice is never shared with query or
// fallback.
func FetchOrFallback[T any](ctx context.Context, rep Reporter, view string, query func(context.Context) ([]T, error), fallback func() []T) Result[T] {
	items, err := query(ctx)
	if err != nil {
		kind := rep.report(ctx, view, err)
		return Result[T]{Items: cloneNonNil(fallback()), Source: Fallback, Kind: kind}
	}
	return Result[T]{Items: cloneNonNil(items), Source: Live}
}

// Count is a single number with its source, used by the dashboard summary.
type Count struct {
	Value  int
	Source Source
	Kind   backend.Kind
}

// CountOrFallback is FetchOrFallback for a row count. The fallback count is
// the size of the sample dataset.
func CountOrFallback(ctx context.Context, rep Reporter, view string, query func(context.Context) (int, error), fallbackLen int) Count {
	n, err := query(ctx)
	if err != nil {
		return Count{Value: fallbackLen, Source: Fallback, Kind: rep.report(ctx, view, err)}
	}
	return Count{Value: n, Source: Live}
}

func cloneNonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
