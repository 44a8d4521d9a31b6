package control

import (
	"slices"

	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/template"
)

// StyleProperties implements template.Target.
func (c *Control) StyleProperties() []string { return slices.Clone(c.style) }

// StyleValue implements template.Target.
func (c *Control) StyleValue(name string) (any, bool) {
	if !slices.Contains(c.style, name) {
		return nil, false
	}
	return c.Get(name)
}

// SetStyleValue implements template.Target.
func (c *Control) SetStyleValue(name string, value any) error {
	if !slices.Contains(c.style, name) {
		return &propertyError{name: name, err: template.ErrUnknownProperty}
	}
	return c.Set(name, value)
}

// CaptureTemplate snapshots the control's committed style.
func (c *Control) CaptureTemplate() *template.Template {
	return template.Capture(c)
}

// ApplyTemplate writes every entry of t the control supports, in one
// transaction under the current animation policy, and returns how many
// were applied. Unsupported entries are skipped and reported.
func (c *Control) ApplyTemplate(t *template.Template) int {
	return template.Apply(t, c)
}

// DefaultTemplate returns the live default template of the control's kind.
func (c *Control) DefaultTemplate() *template.Template {
	return template.Default(c.kind)
}

// IsProxy reports whether the control was built by DefaultTemplateProxy.
func (c *Control) IsProxy() bool { return c.proxy != nil }

// DefaultTemplateProxy returns a stand-in control whose style writes update
// kind's default template instead of any rendered state, so future
// defaults can be edited with ordinary setters. Style reads return the
// default's values. Controls constructed earlier are unaffected.
//
// Composed kinds pass the same options their constructor uses so the
// proxy knows their extra properties.
func DefaultTemplateProxy(kind string, opts ...Option) *Control {
	c := NewWithKind(kind, geometry.Rect{}, opts...)
	c.proxy = template.Default(kind)
	return c
}
