package control_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sketch/pkg/animation"
	"github.com/go-drift/sketch/pkg/control"
	"github.com/go-drift/sketch/pkg/errors"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/graphics"
	"github.com/go-drift/sketch/pkg/template"
	sketchtest "github.com/go-drift/sketch/pkg/testing"
)

func newBox() *control.Control {
	return control.New(geometry.RectXYWH(10, 20, 100, 50))
}

func TestConstructionAppliesDefaults(t *testing.T) {
	c := newBox()
	assert.Equal(t, control.StateConstructed, c.State())
	assert.Equal(t, control.KindControl, c.Kind())
	assert.Equal(t, 1.0, c.Alpha())
	assert.Equal(t, 3.0, c.ShadowRadius())
	assert.Equal(t, geometry.Sz(0, -3), c.ShadowOffset())
	assert.False(t, c.IsAnimating())

	c.SetAlpha(0.9)
	assert.Equal(t, control.StateLive, c.State())
}

func TestConstructionIgnoresDefaultPolicy(t *testing.T) {
	sketchtest.UseFakeClock(t)
	prev := animation.SetDefaultPolicy(animation.NewPolicy(time.Second, 0, 0))
	t.Cleanup(func() { animation.SetDefaultPolicy(prev) })

	c := newBox()
	assert.False(t, c.IsAnimating(), "defaults are applied without animation")
	assert.Equal(t, geometry.RectXYWH(10, 20, 100, 50), c.Frame())
	assert.Equal(t, time.Second, c.AnimationDuration(), "policy survives construction")
}

func TestImmediateWrite(t *testing.T) {
	c := newBox()
	c.SetAlpha(0.5)
	assert.Equal(t, 0.5, c.Alpha())
	assert.False(t, c.IsAnimating())
}

func TestAnimatedWriteHoldsOldValue(t *testing.T) {
	clock := sketchtest.UseFakeClock(t)
	c := newBox()

	c.SetAlpha(0.5)
	require.Equal(t, 0.5, c.Alpha())

	c.SetAnimationDuration(time.Second)
	before := c.BackgroundColor()
	c.SetBackgroundColor(graphics.ColorRed)
	assert.Equal(t, before, c.BackgroundColor())

	clock.Step(999 * time.Millisecond)
	assert.Equal(t, before, c.BackgroundColor())
	assert.NotEqual(t, before, c.Presentation(control.PropBackgroundColor))

	clock.Step(time.Millisecond)
	assert.Equal(t, graphics.ColorRed, c.BackgroundColor())
	assert.False(t, c.IsAnimating())
}

func TestDelayHoldsOldValue(t *testing.T) {
	clock := sketchtest.UseFakeClock(t)
	c := newBox()
	c.SetAnimationDelay(500 * time.Millisecond)
	c.SetAnimationDuration(500 * time.Millisecond)

	c.SetCornerRadius(8)
	clock.Step(499 * time.Millisecond)
	assert.Equal(t, 0.0, c.CornerRadius())
	assert.Equal(t, 0.0, c.Presentation(control.PropCornerRadius))

	assert.True(t, clock.Settle(16*time.Millisecond, 2*time.Second))
	assert.Equal(t, 8.0, c.CornerRadius())
}

func TestNegativeDurationClamped(t *testing.T) {
	rec := sketchtest.CaptureErrors(t)
	c := newBox()
	c.SetAnimationDuration(-time.Second)
	assert.Zero(t, c.AnimationDuration())
	rec.RequireKind(t, errors.KindConfig)

	c.SetAlpha(0.2)
	assert.Equal(t, 0.2, c.Alpha())
}

func TestLastWriteWins(t *testing.T) {
	clock := sketchtest.UseFakeClock(t)
	c := newBox()
	c.SetAnimationDuration(time.Second)

	c.SetZPosition(10)
	clock.Step(400 * time.Millisecond)
	c.SetZPosition(2)
	clock.Step(700 * time.Millisecond)
	assert.Equal(t, 0.0, c.ZPosition(), "the second write restarted the clock")

	clock.Step(300 * time.Millisecond)
	assert.Equal(t, 2.0, c.ZPosition())
}

func TestShadowPathNeverAnimates(t *testing.T) {
	sketchtest.UseFakeClock(t)
	c := newBox()
	c.SetAnimationDuration(time.Second)

	p := graphics.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(5, 5)
	c.SetShadowPath(p)
	c.SetHidden(true)
	c.SetMasksToBounds(true)

	assert.True(t, c.ShadowPath().Equal(p))
	assert.True(t, c.Hidden())
	assert.True(t, c.MasksToBounds())
	assert.False(t, c.IsAnimating())
}

func TestOriginAndCenterStayConsistent(t *testing.T) {
	c := newBox()
	c.SetOrigin(geometry.Pt(30, 40))

	assert.Equal(t, geometry.Pt(30, 40), c.Frame().Origin)
	assert.Equal(t, geometry.Pt(80, 65), c.Center())

	c.SetCenter(geometry.Pt(0, 0))
	assert.Equal(t, geometry.Pt(-50, -25), c.Origin())

	c.SetFrame(geometry.RectXYWH(0, 0, 20, 10))
	assert.Equal(t, geometry.Pt(10, 5), c.Center())
	assert.Equal(t, 20.0, c.Width())
	assert.Equal(t, 10.0, c.Height())

	c.SetBounds(geometry.RectXYWH(0, 0, 40, 40))
	assert.Equal(t, geometry.Pt(10, 5), c.Center(), "bounds keep the center")
	assert.Equal(t, geometry.Pt(-10, -15), c.Origin())

	c.SetSize(geometry.Sz(2, 2))
	assert.Equal(t, geometry.Sz(2, 2), c.Size())
}

func TestOriginReadsBackExactly(t *testing.T) {
	c := control.New(geometry.RectXYWH(0, 0, 0.7, 0.3))
	for _, v := range []float64{0.1, 0.2, 0.3, 1e-17, 1.0 / 3, 123.456, -0.7} {
		c.SetOrigin(geometry.Pt(v, v))
		assert.Equal(t, geometry.Pt(v, v), c.Frame().Origin, "origin %v", v)
		assert.Equal(t, geometry.Pt(v, v), c.Origin())
		assert.True(t, c.Center().ApproxEqual(geometry.Pt(v+0.35, v+0.15)))
	}

	frame := geometry.RectXYWH(0.1, 0.2, 0.7, 0.3)
	c.SetFrame(frame)
	assert.Equal(t, frame, c.Frame())

	c.SetBounds(geometry.RectXYWH(0.3, 0.3, 0.7, 0.3))
	assert.Equal(t, frame.Origin, c.Origin(), "same-size bounds leave the origin alone")
}

func TestPerspectiveDistance(t *testing.T) {
	c := newBox()
	c.SetPerspectiveDistance(500)
	assert.InDelta(t, -1.0/500, c.LayerTransform().M34(), 1e-12)
	assert.Equal(t, 500.0, c.PerspectiveDistance())

	c.SetPerspectiveDistance(0)
	assert.Zero(t, c.LayerTransform().M34())
}

func TestSetByName(t *testing.T) {
	c := newBox()
	require.NoError(t, c.Set(control.PropBorderWidth, 2.0))
	assert.Equal(t, 2.0, c.BorderWidth())

	assert.ErrorIs(t, c.Set("glow", 1.0), template.ErrUnknownProperty)
	assert.ErrorIs(t, c.Set(control.PropBorderWidth, "thick"), template.ErrWrongType)
	assert.ErrorIs(t, c.Set(control.PropAlpha, nil), template.ErrWrongType)
	assert.NoError(t, c.Set(control.PropShadowPath, nil))
}

func TestDestroyedControlIgnoresWrites(t *testing.T) {
	clock := sketchtest.UseFakeClock(t)
	c := newBox()
	c.SetAnimationDuration(time.Second)
	c.SetAnimationOptions(animation.NewOptions(animation.Repeat))
	c.SetAlpha(0)
	require.True(t, c.IsAnimating())

	c.Destroy()
	assert.Equal(t, control.StateDestroyed, c.State())
	assert.False(t, c.IsAnimating())

	c.SetAlpha(0.3)
	clock.Step(time.Second)
	assert.Equal(t, 1.0, c.Alpha())
}

func TestDelayedRepeatWithoutDurationReleasesGestures(t *testing.T) {
	clock := sketchtest.UseFakeClock(t)
	c := newBox()
	c.SetAnimationDelay(100 * time.Millisecond)
	c.AddAnimationOptions(animation.Repeat)
	c.SetBackgroundColor(graphics.ColorBlack)

	clock.StepFrames(20, 50*time.Millisecond)

	assert.Equal(t, graphics.ColorBlack, c.BackgroundColor())
	assert.False(t, c.IsAnimating())
	assert.True(t, c.IsInteractionAllowed())
}
