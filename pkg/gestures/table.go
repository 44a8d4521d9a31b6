package gestures

import (
	"slices"

	"github.com/go-drift/sketch/pkg/errors"
)

// Handler receives a recognized gesture. The concrete event type matches
// the kind the handler is bound to.
type Handler func(Event)

// Table holds at most one handler per [Kind] for a single control and the
// host recognizers backing them.
//
// Bind replaces atomically: the previous recognizer is detached before its
// replacement attaches, so one input never fires both. A Table is used
// from the UI goroutine only.
type Table struct {
	surface     Surface
	handlers    map[Kind]Handler
	recognizers map[RecognizerKind]*attachment
	gate        func() bool
	closed      bool
}

// attachment identifies one attach call so samples from a recognizer that
// has since been replaced are dropped.
type attachment struct {
	recognizer Recognizer
	live       bool
}

// NewTable creates an empty table. A nil surface is allowed: handlers are
// recorded but no recognizer is attached until SetSurface.
func NewTable(surface Surface) *Table {
	return &Table{
		surface:     surface,
		handlers:    make(map[Kind]Handler),
		recognizers: make(map[RecognizerKind]*attachment),
	}
}

// SetGate installs a predicate consulted before each delivery. Events are
// dropped while it returns false.
func (t *Table) SetGate(gate func() bool) {
	t.gate = gate
}

// SetSurface moves every recognizer to surface, detaching them from the
// previous one.
func (t *Table) SetSurface(surface Surface) {
	for r := range t.recognizers {
		t.detach(r)
	}
	t.surface = surface
	t.closed = false
	for _, r := range t.recognizerKinds() {
		t.attach(r)
	}
}

// Bind installs h for kind, replacing any previous handler. A nil handler
// unbinds. Binding an unknown kind reports and returns a KindBinding error
// and leaves the table unchanged.
func (t *Table) Bind(kind Kind, h Handler) error {
	if !kind.Valid() {
		return errors.Reportf("gestures.Table.Bind", errors.KindBinding, kind.String(),
			"unknown gesture kind %d", int(kind))
	}
	r := kind.Recognizer()
	t.detach(r)
	if h == nil {
		delete(t.handlers, kind)
	} else {
		t.handlers[kind] = h
	}
	if t.needs(r) {
		t.attach(r)
	}
	return nil
}

// Unbind removes the handler for kind.
func (t *Table) Unbind(kind Kind) {
	_ = t.Bind(kind, nil)
}

// Bound reports whether kind has a handler.
func (t *Table) Bound(kind Kind) bool {
	_, ok := t.handlers[kind]
	return ok
}

// Kinds returns the bound kinds in declaration order.
func (t *Table) Kinds() []Kind {
	out := make([]Kind, 0, len(t.handlers))
	for k := range t.handlers {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Recognizers returns the recognizer kinds currently attached.
func (t *Table) Recognizers() []RecognizerKind {
	out := make([]RecognizerKind, 0, len(t.recognizers))
	for r := range t.recognizers {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Dispatch delivers ev to the handler bound to its kind. It returns false
// when nothing is bound or the gate is closed. A panicking handler is
// recovered and reported.
func (t *Table) Dispatch(ev Event) bool {
	if ev == nil {
		return false
	}
	h, ok := t.handlers[ev.Kind()]
	if !ok {
		return false
	}
	if t.gate != nil && !t.gate() {
		return false
	}
	defer errors.Recover("gestures.Table.Dispatch")
	h(ev)
	return true
}

// Close detaches every recognizer. Handlers stay recorded and are
// re-attached by a later SetSurface.
func (t *Table) Close() {
	for r := range t.recognizers {
		t.detach(r)
	}
	t.closed = true
}

// Clear drops every handler and detaches every recognizer.
func (t *Table) Clear() {
	t.Close()
	clear(t.handlers)
}

func (t *Table) needs(r RecognizerKind) bool {
	for _, k := range r.kinds() {
		if _, ok := t.handlers[k]; ok {
			return true
		}
	}
	return false
}

func (t *Table) recognizerKinds() []RecognizerKind {
	var out []RecognizerKind
	for k := range t.handlers {
		r := k.Recognizer()
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	slices.Sort(out)
	return out
}

func (t *Table) attach(r RecognizerKind) {
	if t.surface == nil || t.closed {
		return
	}
	a := &attachment{live: true}
	a.recognizer = t.surface.Attach(r, func(raw Raw) {
		if !a.live {
			return
		}
		t.Dispatch(convert(r, raw))
	})
	t.recognizers[r] = a
}

func (t *Table) detach(r RecognizerKind) {
	a, ok := t.recognizers[r]
	if !ok {
		return
	}
	delete(t.recognizers, r)
	a.live = false
	if a.recognizer != nil {
		a.recognizer.Detach()
	}
}
