// Package template implements reusable style templates: ordered
// name-to-value mappings captured from, and applied to, styleable objects.
//
// Every kind of object (a plain control, a shape) has a lazily created
// default template in a process-wide registry. Constructors seed new
// instances from a clone of their kind's default, so later edits to the
// default are not retroactive.
//
// Values are deep-copied on the way in and on the way out, so a template
// never aliases live object state.
package template

import (
	"reflect"
	"slices"

	"github.com/jinzhu/copier"
)

// Template is an ordered mapping from style property name to value.
// Entries keep insertion order; re-setting an existing name keeps its
// position. A Template is not safe for concurrent mutation.
type Template struct {
	names  []string
	values map[string]any
}

// New returns an empty template.
func New() *Template {
	return &Template{values: make(map[string]any)}
}

// Blank returns an empty template. Applying it changes nothing.
func Blank() *Template {
	return New()
}

// Set stores a deep copy of value under name.
func (t *Template) Set(name string, value any) {
	if _, ok := t.values[name]; !ok {
		t.names = append(t.names, name)
	}
	t.values[name] = cloneValue(value)
}

// Get returns a deep copy of the value stored under name.
func (t *Template) Get(name string) (any, bool) {
	v, ok := t.values[name]
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// Has reports whether name has an entry.
func (t *Template) Has(name string) bool {
	_, ok := t.values[name]
	return ok
}

// Delete removes name and reports whether it was present.
func (t *Template) Delete(name string) bool {
	if _, ok := t.values[name]; !ok {
		return false
	}
	delete(t.values, name)
	t.names = slices.DeleteFunc(t.names, func(n string) bool { return n == name })
	return true
}

// Names returns the entry names in order.
func (t *Template) Names() []string {
	return slices.Clone(t.names)
}

// Len returns the number of entries.
func (t *Template) Len() int {
	return len(t.names)
}

// Clone returns a deep copy.
func (t *Template) Clone() *Template {
	out := &Template{
		names:  slices.Clone(t.names),
		values: make(map[string]any, len(t.values)),
	}
	for name, v := range t.values {
		out.values[name] = cloneValue(v)
	}
	return out
}

// Merge sets every entry of other on t, in other's order.
func (t *Template) Merge(other *Template) {
	if other == nil {
		return
	}
	for _, name := range other.names {
		t.Set(name, other.values[name])
	}
}

// Value returns the entry under name as a T.
func Value[T any](t *Template, name string) (T, bool) {
	var zero T
	v, ok := t.Get(name)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// cloneValue deep-copies reference values. Plain values such as float64,
// colors and points are returned as is.
func cloneValue(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return v
		}
		dst := reflect.New(rv.Elem().Type())
		if err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			return v
		}
		return dst.Interface()
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return v
		}
		dst := reflect.New(rv.Type())
		if err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			return v
		}
		return dst.Elem().Interface()
	default:
		return v
	}
}
