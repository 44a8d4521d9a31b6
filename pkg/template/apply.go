package template

import (
	sketcherrors "github.com/go-drift/sketch/pkg/errors"
)

// Target is an object whose style can be captured into and applied from a
// template.
type Target interface {
	// Kind names the object's kind, used to look up its default template.
	Kind() string
	// StyleProperties lists the styleable property names in capture order.
	StyleProperties() []string
	// StyleValue returns the committed value of a style property.
	StyleValue(name string) (any, bool)
	// SetStyleValue writes a style property. It returns an error wrapping
	// ErrUnknownProperty or ErrWrongType when the write cannot be honored.
	SetStyleValue(name string, value any) error
}

// Batcher is implemented by targets that can group writes into one
// animation transaction.
type Batcher interface {
	Batch(fn func())
}

// Capture snapshots every style property of target, in target order.
func Capture(target Target) *Template {
	t := New()
	for _, name := range target.StyleProperties() {
		if v, ok := target.StyleValue(name); ok {
			t.Set(name, v)
		}
	}
	return t
}

// Apply writes each entry of tpl to target in template order and returns
// how many were applied. Entries the target rejects are skipped and
// reported as KindTemplate; they never abort the rest. When target is a
// Batcher all writes share one transaction.
func Apply(tpl *Template, target Target) int {
	if tpl == nil || target == nil {
		return 0
	}
	applied := 0
	run := func() {
		for _, name := range tpl.names {
			if err := target.SetStyleValue(name, cloneValue(tpl.values[name])); err != nil {
				sketcherrors.Reportf("template.Apply", sketcherrors.KindTemplate, name,
					"%s: %v", target.Kind(), err)
				continue
			}
			applied++
		}
	}
	if b, ok := target.(Batcher); ok {
		b.Batch(run)
	} else {
		run()
	}
	return applied
}
