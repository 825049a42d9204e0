// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import "fmt"

// Collapsible wraps one child control under a titled header that can
// be expanded and collapsed. Every control built for a message-kind
// field is wrapped in a Collapsible; the child keeps a back reference
// available through [ControlBase.Group], and the form registry holds
// the child, not the wrapper.
type Collapsible struct {
	ControlBase

	// Open is whether the details are expanded.
	Open bool

	// Child is the wrapped control.
	Child Control
}

// newCollapsible wraps the given control, linking it back to the
// returned collapsible.
func newCollapsible(key string, child Control, level int, st *Styles) *Collapsible {
	c := &Collapsible{Child: child}
	c.init(key, level, st)
	c.Background = st.BackgroundColor(level)
	if child != nil {
		child.AsBase().group = c
	}
	return c
}

// Toggle flips the open state.
func (c *Collapsible) Toggle() {
	c.Open = !c.Open
}

// SetValue sets the value of the wrapped child control.
func (c *Collapsible) SetValue(v any) error {
	if c.Child == nil {
		return fmt.Errorf("form.Collapsible: %q has no child control", c.Key)
	}
	return c.Child.SetValue(v)
}

// Value returns the value of the wrapped child control.
func (c *Collapsible) Value() any {
	if c.Child == nil {
		return nil
	}
	return c.Child.Value()
}
