package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerSlot holds the process-wide ErrorHandler. Reports may come from
// any goroutine that drives controls, so swaps are atomic.
var handlerSlot atomic.Pointer[ErrorHandler]

func init() {
	SetHandler(nil)
}

// Handler returns the handler reports are currently sent to.
func Handler() ErrorHandler {
	return *handlerSlot.Load()
}

// SetHandler installs h as the process-wide handler and returns the
// previous one. Nil installs a LogHandler writing to slog.Default().
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	prev := handlerSlot.Swap(&h)
	if prev == nil {
		return nil
	}
	return *prev
}

// Report stamps err and sends it to the handler. Render errors also
// carry the reporting stack.
func Report(err *SketchError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.Kind == KindRender && err.StackTrace == "" {
		err.StackTrace = CaptureStack()
	}
	Handler().HandleError(err)
}

// Reportf builds and reports a SketchError, returning it so callers that
// also surface the failure can do so without building it twice.
func Reportf(op string, kind ErrorKind, property string, format string, args ...any) *SketchError {
	err := New(op, kind, format, args...)
	err.Property = property
	Report(err)
	return err
}

// ReportPanic stamps err and sends it to the handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress and stops it. It must be called
// directly by a deferred statement:
//
//	defer errors.Recover("gestures.Table.Dispatch")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
	}
}

// CaptureStack formats the stack of its caller's caller, one
// "function\n\tfile:line" entry per frame, at most 32 frames.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(3, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return sb.String()
}
