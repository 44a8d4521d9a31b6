package gestures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sketch/pkg/errors"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/gestures"
	sketchtest "github.com/go-drift/sketch/pkg/testing"
)

func TestBindTapDeliversLocation(t *testing.T) {
	surface := sketchtest.NewFakeSurface()
	table := gestures.NewTable(surface)

	var got []geometry.Point
	require.NoError(t, table.Bind(gestures.Tap, gestures.TapHandler(func(p geometry.Point) {
		got = append(got, p)
	})))

	surface.Tap(geometry.Pt(12, 34))
	assert.Equal(t, []geometry.Point{geometry.Pt(12, 34)}, got)
	assert.True(t, table.Bound(gestures.Tap))
}

func TestRebindReplacesRecognizer(t *testing.T) {
	surface := sketchtest.NewFakeSurface()
	table := gestures.NewTable(surface)

	var first, second int
	require.NoError(t, table.Bind(gestures.Tap, func(gestures.Event) { first++ }))
	require.NoError(t, table.Bind(gestures.Tap, func(gestures.Event) { second++ }))

	assert.Equal(t, 1, surface.Attached(gestures.RecognizeTap), "exactly one recognizer after rebinding")
	assert.Equal(t, 1, surface.DetachCount(gestures.RecognizeTap))

	surface.Tap(geometry.Pt(0, 0))
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestNilHandlerUnbinds(t *testing.T) {
	surface := sketchtest.NewFakeSurface()
	table := gestures.NewTable(surface)

	require.NoError(t, table.Bind(gestures.Pan, gestures.PanHandler(func(_, _, _ geometry.Point) {})))
	require.NoError(t, table.Bind(gestures.Pan, gestures.PanHandler(nil)))

	assert.False(t, table.Bound(gestures.Pan))
	assert.Zero(t, surface.Total())
}

func TestLongPressSharesRecognizer(t *testing.T) {
	surface := sketchtest.NewFakeSurface()
	table := gestures.NewTable(surface)

	var events []string
	require.NoError(t, table.Bind(gestures.LongPressStart, gestures.LongPressHandler(func(geometry.Point) {
		events = append(events, "start")
	})))
	require.NoError(t, table.Bind(gestures.LongPressEnd, gestures.LongPressHandler(func(geometry.Point) {
		events = append(events, "end")
	})))

	assert.Equal(t, 1, surface.Attached(gestures.RecognizeLongPress))
	assert.Equal(t, 2, surface.AttachCount(gestures.RecognizeLongPress), "recreated when the second binding changed")

	surface.LongPress(geometry.Pt(5, 5))
	assert.Equal(t, []string{"start", "end"}, events)

	table.Unbind(gestures.LongPressStart)
	assert.Equal(t, 1, surface.Attached(gestures.RecognizeLongPress), "end binding keeps the recognizer alive")
	table.Unbind(gestures.LongPressEnd)
	assert.Zero(t, surface.Attached(gestures.RecognizeLongPress))
}

func TestSwipeDirectionsAreIndependent(t *testing.T) {
	surface := sketchtest.NewFakeSurface()
	table := gestures.NewTable(surface)

	var got []gestures.Direction
	for _, k := range []gestures.Kind{gestures.SwipeLeft, gestures.SwipeRight} {
		require.NoError(t, table.Bind(k, func(ev gestures.Event) {
			got = append(got, ev.(gestures.SwipeEvent).Direction)
		}))
	}

	assert.Equal(t, 1, surface.Attached(gestures.RecognizeSwipeLeft))
	assert.Equal(t, 1, surface.Attached(gestures.RecognizeSwipeRight))

	surface.Swipe(gestures.Right)
	surface.Swipe(gestures.Up)
	surface.Swipe(gestures.Left)
	assert.Equal(t, []gestures.Direction{gestures.Right, gestures.Left}, got)
}

func TestUnknownKindReportsBindingError(t *testing.T) {
	rec := sketchtest.CaptureErrors(t)
	surface := sketchtest.NewFakeSurface()
	table := gestures.NewTable(surface)

	err := table.Bind(gestures.Kind(99), func(gestures.Event) {})
	require.Error(t, err)

	var se *errors.SketchError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.KindBinding, se.Kind)
	assert.Len(t, rec.OfKind(errors.KindBinding), 1)
	assert.Empty(t, table.Kinds())
	assert.Zero(t, surface.Total())
}

func TestPanickingHandlerIsRecovered(t *testing.T) {
	rec := sketchtest.CaptureErrors(t)
	surface := sketchtest.NewFakeSurface()
	table := gestures.NewTable(surface)

	require.NoError(t, table.Bind(gestures.Tap, func(gestures.Event) { panic("boom") }))
	assert.NotPanics(t, func() { surface.Tap(geometry.Pt(1, 1)) })

	panics := rec.Panics()
	require.Len(t, panics, 1)
	assert.Equal(t, "boom", panics[0].Value)
}

func TestGateDropsEvents(t *testing.T) {
	surface := sketchtest.NewFakeSurface()
	table := gestures.NewTable(surface)
	open := false
	table.SetGate(func() bool { return open })

	count := 0
	require.NoError(t, table.Bind(gestures.Tap, func(gestures.Event) { count++ }))

	surface.Tap(geometry.Pt(0, 0))
	assert.Zero(t, count)
	open = true
	surface.Tap(geometry.Pt(0, 0))
	assert.Equal(t, 1, count)
}

func TestCloseAndReattach(t *testing.T) {
	surface := sketchtest.NewFakeSurface()
	table := gestures.NewTable(surface)

	count := 0
	require.NoError(t, table.Bind(gestures.Pinch, gestures.PinchHandler(func(_ geometry.Point, scale, _ float64) {
		assert.InDelta(t, 2.0, scale, 1e-9)
		count++
	})))
	table.Close()
	assert.Zero(t, surface.Total())
	assert.False(t, surface.Pinch(geometry.Pt(0, 0), 2, 0))
	assert.True(t, table.Bound(gestures.Pinch), "Close keeps handlers")

	other := sketchtest.NewFakeSurface()
	table.SetSurface(other)
	other.Pinch(geometry.Pt(0, 0), 2, 0)
	assert.Equal(t, 1, count)
	assert.Equal(t, []gestures.RecognizerKind{gestures.RecognizePinch}, table.Recognizers())
}

func TestParseKind(t *testing.T) {
	k, err := gestures.ParseKind("LONGPRESSEND")
	require.NoError(t, err)
	assert.Equal(t, gestures.LongPressEnd, k)
	assert.Equal(t, gestures.RecognizeLongPress, k.Recognizer())

	_, err = gestures.ParseKind("doubleTap")
	assert.Error(t, err)
	assert.Len(t, gestures.Kinds(), 10)
}

func TestEventKinds(t *testing.T) {
	assert.Equal(t, gestures.LongPressEnd, gestures.LongPressEvent{Ended: true}.Kind())
	assert.Equal(t, gestures.SwipeDown, gestures.SwipeEvent{Direction: gestures.Down}.Kind())
	assert.Equal(t, gestures.Rotation, gestures.RotationEvent{}.Kind())
}
