package control

import (
	"weak"

	"github.com/go-drift/sketch/pkg/errors"
)

var weakNil weak.Pointer[Control]

// Mask returns the control masking this one, or nil. The mask is held
// weakly: once the masking control is destroyed, or collected because
// nothing else keeps it alive, Mask returns nil.
func (c *Control) Mask() *Control {
	m := c.mask.Value()
	if m == nil || m.state == StateDestroyed {
		return nil
	}
	return m
}

// SetMask assigns the mask without taking ownership of it. Assigning the
// control itself, or a control whose mask chain leads back to it, is
// rejected: the previous mask is kept and a KindMask error is reported
// and returned. nil clears the mask.
func (c *Control) SetMask(m *Control) error {
	if c.state == StateDestroyed {
		return nil
	}
	for cur := m; cur != nil; cur = cur.Mask() {
		if cur == c {
			if m == c {
				return errors.Reportf("control.SetMask", errors.KindMask, PropMask,
					"a %s cannot mask itself", c.kind)
			}
			return errors.Reportf("control.SetMask", errors.KindMask, PropMask,
				"mask cycle: the %s's mask chain leads back to it", m.kind)
		}
	}
	c.touch()
	if m == nil {
		c.mask = weakNil
	} else {
		c.mask = weak.Make(m)
	}
	return nil
}
