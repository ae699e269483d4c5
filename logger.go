package roi

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// SetLogger configures the registry's logger. By default a registry produces
// no log output. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: recovered geometry conditions (degenerate pivots,
//     bounds rejections, failed decompositions)
//   - [slog.LevelWarn]: debug-mode structural warnings
//
// Example:
//
//	reg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func (g *Registry) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	g.logger = l
}

// Logger returns the registry's logger.
func (g *Registry) Logger() *slog.Logger {
	return g.logger
}
