// Package control implements Control, the animatable, styleable,
// gesture-bindable node beneath every on-screen object.
//
// A Control composes three capabilities as named fields rather than
// through inheritance:
//
//   - an [animation.Helper] through which every animatable property write
//     passes, immediately or as a timed transaction;
//   - a [gestures.Table] holding at most one handler per gesture kind;
//   - style templates from package template, applied at construction from
//     the kind's default and on demand afterwards.
//
// Other node kinds (see package shape) compose a *Control and extend its
// property surface with [WithProperty] instead of subclassing it.
//
// Property getters return committed values. While a transaction is in
// flight the getter keeps returning the old value until the transaction's
// delay and duration have elapsed; [Control.Presentation] exposes the
// interpolated value.
//
// All methods must be called from the UI goroutine.
package control

import (
	"reflect"
	"slices"
	"time"
	"weak"

	"github.com/go-drift/sketch/pkg/animation"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/gestures"
	"github.com/go-drift/sketch/pkg/graphics"
	"github.com/go-drift/sketch/pkg/template"
)

// KindControl is the kind of plain controls.
const KindControl = "control"

// Control is a visual node. Construct it with [New] or [NewWithKind].
type Control struct {
	kind  string
	state State

	values map[string]any
	types  map[string]reflect.Type
	style  []string

	anim     *animation.Helper
	gestures *gestures.Table
	surface  gestures.Surface

	parent   *Control
	children []*Control
	mask     weak.Pointer[Control]

	content func(c *Control, canvas graphics.Canvas)
	proxy   *template.Template

	observers []func()
}

// Option customizes a control during construction.
type Option func(*options)

type options struct {
	props   []property
	content func(c *Control, canvas graphics.Canvas)
	surface gestures.Surface
}

type property struct {
	name      string
	initial   any
	style     bool
	immediate bool
}

// WithProperty adds a property to the control. Style properties are
// captured into and applied from templates. Immediate properties never
// animate. The initial value fixes the property's type; a nil pointer
// must be typed, as in (*graphics.Path)(nil).
func WithProperty(name string, initial any, style, immediate bool) Option {
	return func(o *options) {
		o.props = append(o.props, property{name: name, initial: initial, style: style, immediate: immediate})
	}
}

// WithContent installs a drawer called by RenderInContext after the
// background and before the border.
func WithContent(draw func(c *Control, canvas graphics.Canvas)) Option {
	return func(o *options) { o.content = draw }
}

// WithSurface attaches gesture recognizers to surface from the start.
func WithSurface(s gestures.Surface) Option {
	return func(o *options) { o.surface = s }
}

// New builds a plain control with the given frame.
func New(frame geometry.Rect) *Control {
	return NewWithKind(KindControl, frame)
}

// NewWithKind builds a control of the given kind. Before it returns, the
// kind's default template is applied without animation, whatever the
// default animation policy.
func NewWithKind(kind string, frame geometry.Rect, opts ...Option) *Control {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Control{
		kind:    kind,
		state:   StateUninitialized,
		values:  make(map[string]any, len(baseProperties)+len(o.props)),
		types:   make(map[string]reflect.Type, len(baseProperties)+len(o.props)),
		content: o.content,
		surface: o.surface,
	}
	var immediate []string
	for _, p := range append(slices.Clone(baseProperties), o.props...) {
		if _, dup := c.values[p.name]; !dup && p.style {
			c.style = append(c.style, p.name)
		}
		c.values[p.name] = p.initial
		c.types[p.name] = reflect.TypeOf(p.initial)
		if p.immediate {
			immediate = append(immediate, p.name)
		}
	}
	c.anim = animation.NewHelper(c, immediate...)
	c.gestures = gestures.NewTable(c.surface)
	c.gestures.SetGate(c.anim.IsInteractionAllowed)

	c.withoutAnimation(func() {
		c.SetFrame(frame)
		template.Apply(template.Default(kind), c)
	})
	c.state = StateConstructed
	return c
}

// Kind returns the control's kind, used to look up its default template.
func (c *Control) Kind() string { return c.kind }

// State returns the lifecycle state.
func (c *Control) State() State { return c.state }

// Commit implements animation.Target.
func (c *Control) Commit(property string, value any) {
	c.values[property] = value
}

// Committed implements animation.Target.
func (c *Control) Committed(property string) any {
	return c.values[property]
}

// Get returns the committed value of any property by name.
func (c *Control) Get(name string) (any, bool) {
	if c.proxy != nil && c.proxy.Has(name) {
		return c.proxy.Get(name)
	}
	v, ok := c.values[name]
	return v, ok
}

// Set writes any property by name through the animation helper. It
// returns an error wrapping template.ErrUnknownProperty or
// template.ErrWrongType when the write is rejected.
func (c *Control) Set(name string, value any) error {
	if err := c.check(name, value); err != nil {
		return err
	}
	c.set(name, value)
	return nil
}

// Presentation returns the on-screen value of a property: the
// interpolated value while it animates, the committed value otherwise.
func (c *Control) Presentation(name string) any {
	return c.anim.Presentation(name)
}

// IsAnimating reports whether any transaction drives this control.
func (c *Control) IsAnimating() bool { return c.anim.IsAnimating() }

// IsInteractionAllowed reports whether gestures are currently delivered.
func (c *Control) IsInteractionAllowed() bool { return c.anim.IsInteractionAllowed() }

// AnimationPolicy returns the policy subsequent writes animate with.
func (c *Control) AnimationPolicy() animation.Policy { return c.anim.Policy() }

// AnimationDuration returns the duration of subsequent animated writes.
func (c *Control) AnimationDuration() time.Duration { return c.anim.Policy().Duration() }

// SetAnimationDuration sets the duration of subsequent writes. Negative
// values are clamped to zero.
func (c *Control) SetAnimationDuration(d time.Duration) { c.anim.SetDuration(d) }

// AnimationDelay returns the delay of subsequent animated writes.
func (c *Control) AnimationDelay() time.Duration { return c.anim.Policy().Delay() }

// SetAnimationDelay sets the delay of subsequent writes. Negative values
// are clamped to zero.
func (c *Control) SetAnimationDelay(d time.Duration) { c.anim.SetDelay(d) }

// AnimationOptions returns the option set of subsequent writes.
func (c *Control) AnimationOptions() animation.Options { return c.anim.Policy().Options() }

// SetAnimationOptions replaces the whole option set.
func (c *Control) SetAnimationOptions(opts animation.Options) { c.anim.SetOptions(opts) }

// AddAnimationOptions adds flags without clearing existing ones.
func (c *Control) AddAnimationOptions(opts ...animation.Option) { c.anim.AddOptions(opts...) }

// Batch runs fn and animates every write made inside it in one
// transaction.
func (c *Control) Batch(fn func()) { c.anim.Batch(fn) }

func (c *Control) withoutAnimation(fn func()) {
	policy := c.anim.Policy()
	c.anim.SetPolicy(animation.Policy{})
	defer c.anim.SetPolicy(policy)
	fn()
}

// set routes a validated write. Writes to a destroyed control are
// dropped; a proxy records style writes in its default template.
func (c *Control) set(name string, value any) {
	if c.state == StateDestroyed {
		return
	}
	c.touch()
	if c.proxy != nil && slices.Contains(c.style, name) {
		c.proxy.Set(name, value)
		return
	}
	c.anim.Apply(name, value)
}

func (c *Control) check(name string, value any) error {
	want, ok := c.types[name]
	if !ok {
		return &propertyError{name: name, err: template.ErrUnknownProperty}
	}
	if value == nil {
		if want.Kind() == reflect.Pointer {
			return nil
		}
		return &propertyError{name: name, err: template.ErrWrongType, want: want}
	}
	if got := reflect.TypeOf(value); got != want {
		return &propertyError{name: name, err: template.ErrWrongType, want: want, got: got}
	}
	return nil
}

// touch moves a freshly constructed control to Live on first use.
func (c *Control) touch() {
	if c.state == StateConstructed {
		c.state = StateLive
	}
}

// get returns a committed value as T, or T's zero value.
func get[T any](c *Control, name string) T {
	v, _ := c.Get(name)
	t, _ := v.(T)
	return t
}
