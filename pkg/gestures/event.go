package gestures

import (
	"fmt"

	"github.com/go-drift/sketch/pkg/geometry"
)

// State is the phase of a continuous gesture as reported by the host.
type State int

const (
	StateBegan State = iota
	StateChanged
	StateEnded
	StateCancelled
	// StateRecognized is used by discrete gestures (tap, swipe).
	StateRecognized
)

func (s State) String() string {
	switch s {
	case StateBegan:
		return "began"
	case StateChanged:
		return "changed"
	case StateEnded:
		return "ended"
	case StateCancelled:
		return "cancelled"
	case StateRecognized:
		return "recognized"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Raw is one sample delivered by a host recognizer. Fields a recognizer
// does not measure are left zero.
type Raw struct {
	State       State
	Location    geometry.Point
	Translation geometry.Point
	Velocity    geometry.Point
	Scale       float64
	Rotation    float64
	// ScalarVelocity is the pinch or rotation velocity.
	ScalarVelocity float64
}

// Direction is a swipe direction.
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Event is a recognized gesture with its geometry copied out of the
// recognizer. The concrete type is one of TapEvent, PanEvent, PinchEvent,
// RotationEvent, LongPressEvent or SwipeEvent.
type Event interface {
	// Kind is the binding the event is delivered to.
	Kind() Kind
	isEvent()
}

// TapEvent reports a tap location.
type TapEvent struct {
	Location geometry.Point
}

// PanEvent reports a drag.
type PanEvent struct {
	Location    geometry.Point
	Translation geometry.Point
	Velocity    geometry.Point
}

// PinchEvent reports a two-finger scale.
type PinchEvent struct {
	Location geometry.Point
	Scale    float64
	Velocity float64
}

// RotationEvent reports a two-finger rotation in radians.
type RotationEvent struct {
	Location geometry.Point
	Angle    float64
	Velocity float64
}

// LongPressEvent reports the start or end of a long press.
type LongPressEvent struct {
	Location geometry.Point
	Ended    bool
}

// SwipeEvent reports a swipe. It carries no geometry; the direction is
// implied by the binding that fired.
type SwipeEvent struct {
	Direction Direction
}

func (TapEvent) Kind() Kind      { return Tap }
func (PanEvent) Kind() Kind      { return Pan }
func (PinchEvent) Kind() Kind    { return Pinch }
func (RotationEvent) Kind() Kind { return Rotation }

func (e LongPressEvent) Kind() Kind {
	if e.Ended {
		return LongPressEnd
	}
	return LongPressStart
}

func (e SwipeEvent) Kind() Kind {
	switch e.Direction {
	case Left:
		return SwipeLeft
	case Up:
		return SwipeUp
	case Down:
		return SwipeDown
	default:
		return SwipeRight
	}
}

func (TapEvent) isEvent()       {}
func (PanEvent) isEvent()       {}
func (PinchEvent) isEvent()     {}
func (RotationEvent) isEvent()  {}
func (LongPressEvent) isEvent() {}
func (SwipeEvent) isEvent()     {}

// convert turns a raw sample from recognizer r into an event, or nil when
// the sample maps to no binding (a long-press "changed" sample, say).
func convert(r RecognizerKind, raw Raw) Event {
	switch r {
	case RecognizeTap:
		return TapEvent{Location: raw.Location}
	case RecognizePan:
		return PanEvent{Location: raw.Location, Translation: raw.Translation, Velocity: raw.Velocity}
	case RecognizePinch:
		return PinchEvent{Location: raw.Location, Scale: raw.Scale, Velocity: raw.ScalarVelocity}
	case RecognizeRotation:
		return RotationEvent{Location: raw.Location, Angle: raw.Rotation, Velocity: raw.ScalarVelocity}
	case RecognizeLongPress:
		switch raw.State {
		case StateBegan:
			return LongPressEvent{Location: raw.Location}
		case StateEnded:
			return LongPressEvent{Location: raw.Location, Ended: true}
		}
		return nil
	case RecognizeSwipeRight:
		return SwipeEvent{Direction: Right}
	case RecognizeSwipeLeft:
		return SwipeEvent{Direction: Left}
	case RecognizeSwipeUp:
		return SwipeEvent{Direction: Up}
	case RecognizeSwipeDown:
		return SwipeEvent{Direction: Down}
	}
	return nil
}
