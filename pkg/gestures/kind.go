// Package gestures binds one callback per gesture kind to a control and
// adapts host-recognized input into plain value events.
//
// Recognition itself belongs to the host platform: a [Surface] attaches a
// [Recognizer] for a [RecognizerKind] and delivers [Raw] samples. The
// [Table] owns those recognizers, keeps at most one handler per [Kind] and
// converts samples into the tagged [Event] variants.
package gestures

import (
	"fmt"
	"strings"
)

// Kind identifies a bindable gesture.
type Kind int

const (
	Tap Kind = iota
	Pan
	Pinch
	Rotation
	LongPressStart
	LongPressEnd
	SwipeRight
	SwipeLeft
	SwipeUp
	SwipeDown

	kindCount
)

var kindNames = [...]string{
	Tap:            "tap",
	Pan:            "pan",
	Pinch:          "pinch",
	Rotation:       "rotation",
	LongPressStart: "longPressStart",
	LongPressEnd:   "longPressEnd",
	SwipeRight:     "swipeRight",
	SwipeLeft:      "swipeLeft",
	SwipeUp:        "swipeUp",
	SwipeDown:      "swipeDown",
}

// Kinds lists every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for k := range out {
		out[k] = Kind(k)
	}
	return out
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind with the given name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("gestures: unknown gesture kind %q", name)
}

// Recognizer returns the recognizer kind that produces k's events.
// LongPressStart and LongPressEnd share one long-press recognizer.
func (k Kind) Recognizer() RecognizerKind {
	switch k {
	case Tap:
		return RecognizeTap
	case Pan:
		return RecognizePan
	case Pinch:
		return RecognizePinch
	case Rotation:
		return RecognizeRotation
	case LongPressStart, LongPressEnd:
		return RecognizeLongPress
	case SwipeRight:
		return RecognizeSwipeRight
	case SwipeLeft:
		return RecognizeSwipeLeft
	case SwipeUp:
		return RecognizeSwipeUp
	case SwipeDown:
		return RecognizeSwipeDown
	default:
		return recognizerInvalid
	}
}

// RecognizerKind identifies a host recognizer. Each swipe direction has
// its own recognizer so opposite directions never suppress each other.
type RecognizerKind int

const (
	RecognizeTap RecognizerKind = iota
	RecognizePan
	RecognizePinch
	RecognizeRotation
	RecognizeLongPress
	RecognizeSwipeRight
	RecognizeSwipeLeft
	RecognizeSwipeUp
	RecognizeSwipeDown

	recognizerInvalid RecognizerKind = -1
)

func (r RecognizerKind) String() string {
	switch r {
	case RecognizeTap:
		return "tap"
	case RecognizePan:
		return "pan"
	case RecognizePinch:
		return "pinch"
	case RecognizeRotation:
		return "rotation"
	case RecognizeLongPress:
		return "longPress"
	case RecognizeSwipeRight:
		return "swipe-right"
	case RecognizeSwipeLeft:
		return "swipe-left"
	case RecognizeSwipeUp:
		return "swipe-up"
	case RecognizeSwipeDown:
		return "swipe-down"
	default:
		return fmt.Sprintf("RecognizerKind(%d)", int(r))
	}
}

// kinds returns the bindable kinds fed by recognizer r.
func (r RecognizerKind) kinds() []Kind {
	switch r {
	case RecognizeTap:
		return []Kind{Tap}
	case RecognizePan:
		return []Kind{Pan}
	case RecognizePinch:
		return []Kind{Pinch}
	case RecognizeRotation:
		return []Kind{Rotation}
	case RecognizeLongPress:
		return []Kind{LongPressStart, LongPressEnd}
	case RecognizeSwipeRight:
		return []Kind{SwipeRight}
	case RecognizeSwipeLeft:
		return []Kind{SwipeLeft}
	case RecognizeSwipeUp:
		return []Kind{SwipeUp}
	case RecognizeSwipeDown:
		return []Kind{SwipeDown}
	default:
		return nil
	}
}
