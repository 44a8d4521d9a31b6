package graphics

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/sketch/pkg/geometry"
)

// DisplayOp is a printable description of one recorded canvas operation.
type DisplayOp struct {
	Op     string  `json:"op" yaml:"op"`
	Params []Param `json:"params,omitempty" yaml:"params,omitempty"`
}

// Param is one named argument of a DisplayOp.
type Param struct {
	Key   string `json:"key" yaml:"key"`
	Value any    `json:"value" yaml:"value"`
}

// Param returns the value recorded under key, or nil.
func (d DisplayOp) Param(key string) any {
	for _, p := range d.Params {
		if p.Key == key {
			return p.Value
		}
	}
	return nil
}

// String formats the op as `name key=value ...` in recorded order.
func (d DisplayOp) String() string {
	var sb strings.Builder
	sb.WriteString(d.Op)
	for _, p := range d.Params {
		fmt.Fprintf(&sb, " %s=%v", p.Key, p.Value)
	}
	return sb.String()
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size geometry.Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() geometry.Size {
	return d.size
}

// Ops describes every recorded operation in order.
func (d *DisplayList) Ops() []DisplayOp {
	out := make([]DisplayOp, len(d.ops))
	for i, op := range d.ops {
		out[i] = op.describe()
	}
	return out
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      geometry.Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size geometry.Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
	describe() DisplayOp
}

type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) Save()    { c.recorder.append(opSave{}) }
func (c *recordingCanvas) Restore() { c.recorder.append(opRestore{}) }

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) Concat(tf geometry.Affine) {
	c.recorder.append(opConcat{tf: tf})
}

func (c *recordingCanvas) SaveLayerAlpha(bounds geometry.Rect, alpha float64) {
	c.recorder.append(opSaveLayerAlpha{bounds: bounds, alpha: alpha})
}

func (c *recordingCanvas) ClipRRect(rect geometry.Rect, radius float64) {
	c.recorder.append(opClipRRect{rect: rect, radius: radius})
}

func (c *recordingCanvas) DrawRRect(rect geometry.Rect, radius float64, paint Paint) {
	c.recorder.append(opDrawRRect{rect: rect, radius: radius, paint: paint})
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	c.recorder.append(opDrawPath{path: path.Clone(), paint: paint})
}

func (c *recordingCanvas) DrawShadow(rect geometry.Rect, radius float64, shadow Shadow) {
	shadow.Path = shadow.Path.Clone()
	c.recorder.append(opDrawShadow{rect: rect, radius: radius, shadow: shadow})
}

type opSave struct{}

func (opSave) execute(canvas Canvas) { canvas.Save() }
func (opSave) describe() DisplayOp   { return DisplayOp{Op: "save"} }

type opRestore struct{}

func (opRestore) execute(canvas Canvas) { canvas.Restore() }
func (opRestore) describe() DisplayOp   { return DisplayOp{Op: "restore"} }

type opTranslate struct{ dx, dy float64 }

func (o opTranslate) execute(canvas Canvas) { canvas.Translate(o.dx, o.dy) }
func (o opTranslate) describe() DisplayOp {
	return DisplayOp{Op: "translate", Params: orderedParams("dx", round2(o.dx), "dy", round2(o.dy))}
}

type opConcat struct{ tf geometry.Affine }

func (o opConcat) execute(canvas Canvas) { canvas.Concat(o.tf) }
func (o opConcat) describe() DisplayOp {
	m := make([]float64, len(o.tf))
	for i, v := range o.tf {
		m[i] = round2(v)
	}
	return DisplayOp{Op: "concat", Params: orderedParams("matrix", m)}
}

type opSaveLayerAlpha struct {
	bounds geometry.Rect
	alpha  float64
}

func (o opSaveLayerAlpha) execute(canvas Canvas) { canvas.SaveLayerAlpha(o.bounds, o.alpha) }
func (o opSaveLayerAlpha) describe() DisplayOp {
	return DisplayOp{Op: "saveLayerAlpha", Params: orderedParams("bounds", serializeRect(o.bounds), "alpha", round2(o.alpha))}
}

type opClipRRect struct {
	rect   geometry.Rect
	radius float64
}

func (o opClipRRect) execute(canvas Canvas) { canvas.ClipRRect(o.rect, o.radius) }
func (o opClipRRect) describe() DisplayOp {
	return DisplayOp{Op: "clipRRect", Params: orderedParams("rect", serializeRect(o.rect), "radius", round2(o.radius))}
}

type opDrawRRect struct {
	rect   geometry.Rect
	radius float64
	paint  Paint
}

func (o opDrawRRect) execute(canvas Canvas) { canvas.DrawRRect(o.rect, o.radius, o.paint) }
func (o opDrawRRect) describe() DisplayOp {
	return DisplayOp{Op: "drawRRect", Params: orderedParams(
		"rect", serializeRect(o.rect),
		"radius", round2(o.radius),
		"color", o.paint.Color.String(),
		"style", o.paint.Style.String(),
		"strokeWidth", round2(o.paint.StrokeWidth),
	)}
}

type opDrawPath struct {
	path  *Path
	paint Paint
}

func (o opDrawPath) execute(canvas Canvas) { canvas.DrawPath(o.path, o.paint) }
func (o opDrawPath) describe() DisplayOp {
	return DisplayOp{Op: "drawPath", Params: orderedParams(
		"bounds", serializeRect(o.path.Bounds()),
		"commands", len(o.path.Commands),
		"color", o.paint.Color.String(),
		"style", o.paint.Style.String(),
	)}
}

type opDrawShadow struct {
	rect   geometry.Rect
	radius float64
	shadow Shadow
}

func (o opDrawShadow) execute(canvas Canvas) { canvas.DrawShadow(o.rect, o.radius, o.shadow) }
func (o opDrawShadow) describe() DisplayOp {
	return DisplayOp{Op: "drawShadow", Params: orderedParams(
		"rect", serializeRect(o.rect),
		"color", o.shadow.EffectiveColor().String(),
		"blur", round2(o.shadow.Radius),
		"offset", []float64{round2(o.shadow.Offset.Width), round2(o.shadow.Offset.Height)},
		"path", !o.shadow.Path.IsEmpty(),
	)}
}

func orderedParams(kv ...any) []Param {
	params := make([]Param, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		params = append(params, Param{Key: kv[i].(string), Value: kv[i+1]})
	}
	return params
}

func serializeRect(r geometry.Rect) []float64 {
	return []float64{round2(r.Origin.X), round2(r.Origin.Y), round2(r.Size.Width), round2(r.Size.Height)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
