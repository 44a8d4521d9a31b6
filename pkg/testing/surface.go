package testing

import (
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/gestures"
)

// FakeSurface is an in-memory gestures.Surface. It keeps the recognizers a
// control attaches and lets tests emit samples through them as the host
// platform would.
type FakeSurface struct {
	attached map[gestures.RecognizerKind][]*fakeRecognizer
	attaches map[gestures.RecognizerKind]int
	detaches map[gestures.RecognizerKind]int
}

type fakeRecognizer struct {
	surface *FakeSurface
	kind    gestures.RecognizerKind
	deliver func(gestures.Raw)
}

// NewFakeSurface returns an empty surface.
func NewFakeSurface() *FakeSurface {
	return &FakeSurface{
		attached: make(map[gestures.RecognizerKind][]*fakeRecognizer),
		attaches: make(map[gestures.RecognizerKind]int),
		detaches: make(map[gestures.RecognizerKind]int),
	}
}

// Attach implements gestures.Surface.
func (s *FakeSurface) Attach(r gestures.RecognizerKind, deliver func(gestures.Raw)) gestures.Recognizer {
	rec := &fakeRecognizer{surface: s, kind: r, deliver: deliver}
	s.attached[r] = append(s.attached[r], rec)
	s.attaches[r]++
	return rec
}

func (r *fakeRecognizer) Detach() {
	list := r.surface.attached[r.kind]
	for i, other := range list {
		if other == r {
			r.surface.attached[r.kind] = append(list[:i], list[i+1:]...)
			r.surface.detaches[r.kind]++
			return
		}
	}
}

// Attached returns how many recognizers of kind r are currently attached.
func (s *FakeSurface) Attached(r gestures.RecognizerKind) int {
	return len(s.attached[r])
}

// AttachCount returns how many times a recognizer of kind r was attached.
func (s *FakeSurface) AttachCount(r gestures.RecognizerKind) int {
	return s.attaches[r]
}

// DetachCount returns how many times a recognizer of kind r was detached.
func (s *FakeSurface) DetachCount(r gestures.RecognizerKind) int {
	return s.detaches[r]
}

// Total returns the number of recognizers currently attached.
func (s *FakeSurface) Total() int {
	n := 0
	for _, list := range s.attached {
		n += len(list)
	}
	return n
}

// Send delivers raw through every attached recognizer of kind r. It
// returns false when none is attached.
func (s *FakeSurface) Send(r gestures.RecognizerKind, raw gestures.Raw) bool {
	list := append([]*fakeRecognizer(nil), s.attached[r]...)
	for _, rec := range list {
		rec.deliver(raw)
	}
	return len(list) > 0
}

// Tap emits a recognized tap at location.
func (s *FakeSurface) Tap(location geometry.Point) bool {
	return s.Send(gestures.RecognizeTap, gestures.Raw{State: gestures.StateRecognized, Location: location})
}

// Pan emits one pan sample.
func (s *FakeSurface) Pan(state gestures.State, location, translation, velocity geometry.Point) bool {
	return s.Send(gestures.RecognizePan, gestures.Raw{
		State:       state,
		Location:    location,
		Translation: translation,
		Velocity:    velocity,
	})
}

// Drag emits a began, changed and ended pan moving from start by delta.
func (s *FakeSurface) Drag(start, delta geometry.Point) bool {
	if !s.Pan(gestures.StateBegan, start, geometry.Point{}, geometry.Point{}) {
		return false
	}
	end := start.Add(delta)
	s.Pan(gestures.StateChanged, end, delta, geometry.Point{})
	s.Pan(gestures.StateEnded, end, delta, geometry.Point{})
	return true
}

// Pinch emits one pinch sample.
func (s *FakeSurface) Pinch(location geometry.Point, scale, velocity float64) bool {
	return s.Send(gestures.RecognizePinch, gestures.Raw{
		State:          gestures.StateChanged,
		Location:       location,
		Scale:          scale,
		ScalarVelocity: velocity,
	})
}

// Rotate emits one rotation sample.
func (s *FakeSurface) Rotate(location geometry.Point, angle, velocity float64) bool {
	return s.Send(gestures.RecognizeRotation, gestures.Raw{
		State:          gestures.StateChanged,
		Location:       location,
		Rotation:       angle,
		ScalarVelocity: velocity,
	})
}

// LongPress emits a full long press: began, changed, ended.
func (s *FakeSurface) LongPress(location geometry.Point) bool {
	if !s.Send(gestures.RecognizeLongPress, gestures.Raw{State: gestures.StateBegan, Location: location}) {
		return false
	}
	s.Send(gestures.RecognizeLongPress, gestures.Raw{State: gestures.StateChanged, Location: location})
	s.Send(gestures.RecognizeLongPress, gestures.Raw{State: gestures.StateEnded, Location: location})
	return true
}

// Swipe emits a recognized swipe in direction d.
func (s *FakeSurface) Swipe(d gestures.Direction) bool {
	var r gestures.RecognizerKind
	switch d {
	case gestures.Left:
		r = gestures.RecognizeSwipeLeft
	case gestures.Up:
		r = gestures.RecognizeSwipeUp
	case gestures.Down:
		r = gestures.RecognizeSwipeDown
	default:
		r = gestures.RecognizeSwipeRight
	}
	return s.Send(r, gestures.Raw{State: gestures.StateRecognized})
}
