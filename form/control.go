// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

// Control is one editor in a form, bound to a single message field.
// Concrete controls embed [ControlBase] and hold their input widgets
// as explicit typed fields. Like the [Form] that owns them, controls
// are confined to a single goroutine.
type Control interface {
	// AsBase returns the base control state.
	AsBase() *ControlBase

	// SetValue sets the control's current value from the given value,
	// returning an error if the value does not fit the control.
	SetValue(value any) error

	// Value returns the control's current value.
	Value() any
}

// ControlBase is the common state embedded in all control types.
type ControlBase struct {
	// Key is the message field name this control edits.
	Key string

	// Level is the message nesting depth of the control, used to select
	// colors from the form [Styles].
	Level int

	// Background is the background color of the control.
	Background string

	// group is the collapsible wrapping this control, if any.
	group *Collapsible

	// hidden is whether the control is hidden.
	hidden bool

	// readOnly is whether the control's value is blocked from being
	// written back into the message.
	readOnly bool
}

func (cb *ControlBase) init(key string, level int, st *Styles) {
	cb.Key = key
	cb.Level = level
	cb.Background = st.WidgetColor(level)
}

// AsBase returns the base control state.
func (cb *ControlBase) AsBase() *ControlBase {
	return cb
}

// Label returns the display label for the control, derived from its Key.
func (cb *ControlBase) Label() string {
	return humanReadable(cb.Key)
}

// Group returns the [Collapsible] wrapping this control, or nil.
// Visibility and read-only accessors on [Form] prefer the group state
// when one is present.
func (cb *ControlBase) Group() *Collapsible {
	return cb.group
}

// Visible returns whether the control is visible.
func (cb *ControlBase) Visible() bool {
	return !cb.hidden
}

// SetVisible sets whether the control is visible.
func (cb *ControlBase) SetVisible(visible bool) {
	cb.hidden = !visible
}

// ReadOnly returns whether the control's value is blocked from being
// written back into the message.
func (cb *ControlBase) ReadOnly() bool {
	return cb.readOnly
}

// SetReadOnly sets whether the control's value is blocked from being
// written back into the message.
func (cb *ControlBase) SetReadOnly(readOnly bool) {
	cb.readOnly = readOnly
}
