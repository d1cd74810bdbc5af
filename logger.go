// Package liquify ties the warp-path, smoothing, interpolation, stamp
// and resample packages together into the two pixel-producing
// operations a host pipeline calls: BuildGlobalDistortionMap and
// ApplyGlobalDistortionMap (spec §6).
package liquify

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by this module and its
// sub-packages. By default no log output is produced. Pass nil to
// restore the silent default.
//
// Log levels used by this module:
//   - [slog.LevelDebug]: per-stamp and per-row diagnostics.
//   - [slog.LevelInfo]: map build/apply lifecycle events.
//   - [slog.LevelWarn]: recoverable anomalies (skipped degenerate warps).
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the currently configured logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
