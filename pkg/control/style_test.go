package control_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/sketch/pkg/control"
	"github.com/go-drift/sketch/pkg/errors"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/graphics"
	"github.com/go-drift/sketch/pkg/template"
	sketchtest "github.com/go-drift/sketch/pkg/testing"
)

func TestCaptureApplyIsIdempotent(t *testing.T) {
	c := newBox()
	c.SetBackgroundColor(graphics.ColorBlue)
	c.SetCornerRadius(6)
	c.SetShadowOpacity(0.4)

	tpl := c.CaptureTemplate()
	before := make(map[string]any)
	for _, name := range tpl.Names() {
		before[name], _ = c.StyleValue(name)
	}

	c.ApplyTemplate(tpl)
	for name, want := range before {
		got, _ := c.StyleValue(name)
		assert.Equal(t, want, got, name)
	}
}

func TestDefaultTemplateGivesIdenticalStyling(t *testing.T) {
	a := control.New(geometry.RectXYWH(0, 0, 10, 10))
	b := control.New(geometry.RectXYWH(50, 50, 30, 30))
	a.SetBorderWidth(4)

	a.ApplyTemplate(a.DefaultTemplate())
	b.ApplyTemplate(b.DefaultTemplate())
	assert.Equal(t, template.Capture(a).Names(), template.Capture(b).Names())
	for _, name := range a.StyleProperties() {
		av, _ := a.StyleValue(name)
		bv, _ := b.StyleValue(name)
		assert.Equal(t, av, bv, name)
	}
}

func TestApplyTemplateSkipsUnsupported(t *testing.T) {
	rec := sketchtest.CaptureErrors(t)
	tpl := template.New()
	tpl.Set("fillColor", graphics.ColorRed)
	tpl.Set(control.PropCornerRadius, 5.0)

	c := newBox()
	assert.Equal(t, 1, c.ApplyTemplate(tpl))
	assert.Equal(t, 5.0, c.CornerRadius())
	assert.Len(t, rec.OfKind(errors.KindTemplate), 1)
}

func TestApplyTemplateSharesOneTransaction(t *testing.T) {
	clock := sketchtest.UseFakeClock(t)
	c := newBox()
	c.SetAnimationDuration(time.Second)

	tpl := template.New()
	tpl.Set(control.PropCornerRadius, 5.0)
	tpl.Set(control.PropBorderWidth, 2.0)
	c.ApplyTemplate(tpl)

	assert.Equal(t, 0.0, c.CornerRadius(), "template writes obey the animation policy")
	clock.Step(time.Second)
	assert.Equal(t, 5.0, c.CornerRadius())
	assert.Equal(t, 2.0, c.BorderWidth())
}

func TestBlankTemplateChangesNothing(t *testing.T) {
	c := newBox()
	c.SetAlpha(0.7)
	assert.Zero(t, c.ApplyTemplate(template.Blank()))
	assert.Equal(t, 0.7, c.Alpha())
}

func TestDefaultTemplateProxy(t *testing.T) {
	t.Cleanup(func() { template.ResetDefault(control.KindControl) })

	early := newBox()
	proxy := control.DefaultTemplateProxy(control.KindControl)
	assert.True(t, proxy.IsProxy())

	proxy.SetBackgroundColor(graphics.ColorGreen)
	proxy.SetBorderWidth(3)

	assert.Equal(t, graphics.ColorGreen, proxy.BackgroundColor())
	assert.Equal(t, graphics.ColorTransparent, early.BackgroundColor(), "not retroactive")

	late := newBox()
	assert.Equal(t, graphics.ColorGreen, late.BackgroundColor())
	assert.Equal(t, 3.0, late.BorderWidth())
}

func TestCanvasIsWhite(t *testing.T) {
	root := control.NewCanvas(geometry.RectXYWH(0, 0, 320, 240))
	assert.Equal(t, graphics.ColorWhite, root.BackgroundColor())
	assert.Equal(t, control.KindCanvas, root.Kind())
	assert.Equal(t, geometry.Sz(320, 240), root.Size())
}
