package lookup

import (
	"context"
	"log/slog"
)

// Resolver turns a raw identifier into a Record.
type Resolver struct {
	primary  PrimarySource
	fallback FallbackSource
	logger   *slog.Logger
}

// NewResolver wires the two providers. fallback may be nil to disable the second
// stage.
func NewResolver(primary PrimarySource, fallback FallbackSource, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{primary: primary, fallback: fallback, logger: logger}
}

// Resolve normalizes raw, queries openBD and, while the cover is still missing,
// Google Books. Provider failures never surface: they only show up as fields that
// stay empty. It returns ErrEmptyISBN before any network call when raw has no
// digits, and ErrNotFound when every field is still empty at the end.
func (r *Resolver) Resolve(ctx context.Context, raw string) (Record, error) {
	isbn := NormalizeISBN(raw)
	if isbn == "" {
		return Record{}, ErrEmptyISBN
	}

	var acc Fields

	res := primaryStage(ctx, r.primary, isbn)
	r.logStage(ctx, "openbd", isbn, res)
	if res.Status == StageOK {
		primaryRules.apply(&acc, res.Fields)
	}

	if acc.CoverURL == "" && r.fallback != nil {
		res = fallbackStage(ctx, r.fallback, isbn)
		r.logStage(ctx, "googlebooks", isbn, res)
		if res.Status == StageOK {
			fallbackRules.apply(&acc, res.Fields)
		}
	}

	if acc.empty() {
		return Record{}, ErrNotFound
	}
	return Record{ISBN: isbn, Fields: acc}, nil
}

func (r *Resolver) logStage(ctx context.Context, provider, isbn string, res StageResult) {
	attrs := []any{
		slog.String("provider", provider),
		slog.String("isbn", isbn),
		slog.String("status", res.Status.String()),
	}
	if res.Err != nil {
		r.logger.WarnContext(ctx, "metadata provider unavailable", append(attrs, slog.String("error", res.Err.Error()))...)
		return
	}
	r.logger.DebugContext(ctx, "metadata provider answered", attrs...)
}
