package testing

import (
	"sync"

	"github.com/go-drift/sketch/pkg/errors"
)

// ErrorRecorder is an errors.ErrorHandler that keeps everything reported.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.SketchError
	panics []*errors.PanicError
}

// CaptureErrors installs a new ErrorRecorder as the global handler for the
// duration of the test.
func CaptureErrors(t TestingT) *ErrorRecorder {
	t.Helper()
	rec := &ErrorRecorder{}
	prev := errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return rec
}

// HandleError implements errors.ErrorHandler.
func (r *ErrorRecorder) HandleError(err *errors.SketchError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// HandlePanic implements errors.ErrorHandler.
func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the reported errors in order.
func (r *ErrorRecorder) Errors() []*errors.SketchError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.SketchError(nil), r.errs...)
}

// Panics returns the recovered panics in order.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}

// OfKind returns the reported errors of kind k.
func (r *ErrorRecorder) OfKind(k errors.ErrorKind) []*errors.SketchError {
	var out []*errors.SketchError
	for _, err := range r.Errors() {
		if err.Kind == k {
			out = append(out, err)
		}
	}
	return out
}

// Reset forgets everything recorded so far.
func (r *ErrorRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = nil
	r.panics = nil
}

// RequireKind fails the test unless at least one error of kind k was
// reported.
func (r *ErrorRecorder) RequireKind(t TestingT, k errors.ErrorKind) *errors.SketchError {
	t.Helper()
	got := r.OfKind(k)
	if len(got) == 0 {
		t.Fatalf("expected a %s error, got %v", k, r.Errors())
		return nil
	}
	return got[0]
}
