package gestures

// Surface is the host side of gesture recognition for one control.
type Surface interface {
	// Attach installs a recognizer of kind r. deliver must be called on the
	// UI goroutine for every sample the recognizer produces.
	Attach(r RecognizerKind, deliver func(Raw)) Recognizer
}

// Recognizer is a host recognizer installed by a [Surface].
type Recognizer interface {
	// Detach removes the recognizer from its surface. After Detach the
	// recognizer must not deliver further samples.
	Detach()
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(r RecognizerKind, deliver func(Raw)) Recognizer

// Attach calls f.
func (f SurfaceFunc) Attach(r RecognizerKind, deliver func(Raw)) Recognizer {
	return f(r, deliver)
}

// RecognizerFunc adapts a detach function to the Recognizer interface.
type RecognizerFunc func()

// Detach calls f.
func (f RecognizerFunc) Detach() {
	if f != nil {
		f()
	}
}
