// Package errors provides structured error reporting for sketch controls.
//
// Visual-property failures never abort the interactive session: the core
// handles them locally and hands a structured record to the active
// ErrorHandler instead of returning it up the stack.
package errors

import (
	"fmt"
	"log/slog"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an out-of-range configuration value that was clamped.
	KindConfig
	// KindBinding indicates a gesture binding request that could not be honored.
	KindBinding
	// KindTemplate indicates a template entry that was skipped during apply.
	KindTemplate
	// KindMask indicates a rejected mask assignment.
	KindMask
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindHierarchy indicates a rejected containment edit, such as adding
	// a control to its own descendant.
	KindHierarchy
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindBinding:
		return "binding"
	case KindTemplate:
		return "template"
	case KindMask:
		return "mask"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindHierarchy:
		return "hierarchy"
	default:
		return "unknown"
	}
}

// Level is the log level a handler should use for errors of this kind.
// Clamps and skipped template entries are cosmetic and log at debug.
func (k ErrorKind) Level() slog.Level {
	switch k {
	case KindConfig, KindTemplate:
		return slog.LevelDebug
	case KindBinding, KindMask, KindHierarchy:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// SketchError represents a structured error raised by a control.
type SketchError struct {
	// Op is the operation that failed (e.g., "control.SetMask").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Property is the control property involved, if any.
	Property string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SketchError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("%s [%s] property=%s: %v", e.Op, e.Kind, e.Property, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SketchError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "gestures.Table.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// New builds a SketchError for op with a formatted underlying error.
func New(op string, kind ErrorKind, format string, args ...any) *SketchError {
	return &SketchError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// ErrorHandler receives errors reported by controls.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SketchError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
