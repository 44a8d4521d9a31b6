package errors

import (
	"context"
	"log/slog"
)

// LogHandler is an ErrorHandler that writes structured records to a
// slog.Logger. A nil Logger uses slog.Default().
type LogHandler struct {
	Logger *slog.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a SketchError at the level its kind maps to.
func (h *LogHandler) HandleError(err *SketchError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "error", err.Err}
	if err.Property != "" {
		attrs = append(attrs, "property", err.Property)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Log(context.Background(), err.Kind.Level(), "sketch error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("sketch panic", attrs...)
}
