package control

import (
	"slices"

	"github.com/go-drift/sketch/pkg/errors"
)

// Add appends child to this control's children, first removing it from
// any previous parent. Adding a control to itself or to one of its own
// descendants is rejected with a KindHierarchy error.
func (c *Control) Add(child *Control) error {
	if child == nil {
		return nil
	}
	for p := c; p != nil; p = p.parent {
		if p == child {
			return errors.Reportf("control.Add", errors.KindHierarchy, "",
				"cannot add a %s to itself or its descendant", child.kind)
		}
	}
	if child.state == StateDestroyed || c.state == StateDestroyed {
		return errors.Reportf("control.Add", errors.KindHierarchy, "",
			"cannot add a destroyed control")
	}
	if child.parent != nil {
		child.parent.RemoveObject(child)
	}
	child.parent = c
	c.children = append(c.children, child)
	c.touch()
	if child.state == StateDetached {
		child.gestures.SetSurface(child.surface)
		child.state = StateLive
	}
	child.touch()
	return nil
}

// AddAll adds each child in order.
func (c *Control) AddAll(children ...*Control) error {
	for _, child := range children {
		if err := c.Add(child); err != nil {
			return err
		}
	}
	return nil
}

// RemoveObject removes child from this control's children. It only edits
// the containment graph: the child keeps its state and bindings and can
// be added elsewhere. It reports whether child was a child of c.
func (c *Control) RemoveObject(child *Control) bool {
	if child == nil || child.parent != c {
		return false
	}
	i := slices.Index(c.children, child)
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	child.parent = nil
	return true
}

// RemoveObjects removes each of children and returns how many were
// removed.
func (c *Control) RemoveObjects(children ...*Control) int {
	n := 0
	for _, child := range children {
		if c.RemoveObject(child) {
			n++
		}
	}
	return n
}

// Parent returns the containing control, or nil.
func (c *Control) Parent() *Control { return c.parent }

// Children returns the children in insertion order.
func (c *Control) Children() []*Control { return slices.Clone(c.children) }

// Root returns the topmost ancestor, which is c itself for a root.
func (c *Control) Root() *Control {
	r := c
	for r.parent != nil {
		r = r.parent
	}
	return r
}
