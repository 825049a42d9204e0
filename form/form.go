// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package form builds editable control trees from protobuf messages by
walking their field descriptors, and synchronizes edited control
values back into the message.

A [Form] is loaded from a message with [Form.Load], which makes a
working copy and fabricates one [Control] per supported singular
field, in declaration order. Controls are registered under scope
paths: field names joined with "::" from the message root, such as
"material::ambient::r". [Form.UpdateFromMsg] refreshes control values
from a newer message of the same type, visiting only fields that are
set, and [Form.Msg] writes all editable control values back into the
working copy and returns it.

Well-known message types (Vector3d, Color, Pose, Density, Geometry,
recognized by declared type name) get specialized controls; any other
nested message becomes a [GroupControl] of its own fields wrapped in a
[Collapsible]. Repeated and map fields are not supported and are
skipped everywhere.

A Form and everything it owns are confined to a single goroutine,
conventionally the user interface loop; no internal locking is
performed anywhere.
*/
package form

import (
	"fmt"
	"slices"

	"github.com/jinzhu/copier"
	"google.golang.org/protobuf/proto"

	"github.com/simforge/protoform/base/errors"
	"github.com/simforge/protoform/base/keylist"
	"github.com/simforge/protoform/material"
)

// scopeSeparator joins field names into scope paths.
const scopeSeparator = "::"

// Form is a reflective property form over one protobuf message. Use
// [New] to create one, then [Form.Load] to build its controls.
type Form struct {
	// Root is the visual control tree built by [Form.Load].
	Root *Frame

	// msg is the working copy of the loaded message.
	msg proto.Message

	// registry maps scope paths to their controls.
	registry keylist.List[string, Control]

	// styles is this form's own copy of the injected style table.
	styles *Styles

	// materials is the preset table given to density controls.
	materials []material.Material

	// listeners are the value change listeners.
	listeners Listeners
}

// Option configures a [Form] at construction.
type Option func(f *Form)

// WithStyles sets the form's style table; the form keeps a deep copy.
func WithStyles(st *Styles) Option {
	return func(f *Form) {
		cp := &Styles{}
		errors.Log(copier.CopyWithOption(cp, st, copier.Option{DeepCopy: true}))
		f.styles = cp
	}
}

// WithMaterials sets the material preset table given to density
// controls; the form keeps a copy.
func WithMaterials(mats []material.Material) Option {
	return func(f *Form) {
		f.materials = slices.Clone(mats)
	}
}

// New returns a new [Form] with the given options applied. Without
// options it uses [DefaultStyles] and [material.Materials].
func New(opts ...Option) *Form {
	f := &Form{
		styles:    DefaultStyles(),
		materials: material.Materials(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Load makes a working copy of the given message and builds the
// control tree for it, installing it as [Form.Root]. Loading again
// reuses already registered controls, refreshing their values in
// place; the existing tree is kept unless the walk fabricated new
// controls.
func (f *Form) Load(msg proto.Message) error {
	if msg == nil {
		return errors.New("form.Load: nil message")
	}
	f.msg = proto.Clone(msg)
	frame := f.parse(f.msg.ProtoReflect(), false, "", 0)
	if f.Root == nil || frame.Len() > 0 {
		f.Root = frame
	}
	return nil
}

// UpdateFromMsg copies the given message into the working copy and
// refreshes control values from it, visiting only fields that are set.
// Controls for newly set fields are fabricated and registered, but not
// added to [Form.Root]. It returns false, logging an error, when no
// message is loaded or the given message is nil or of another type.
func (f *Form) UpdateFromMsg(msg proto.Message) bool {
	if msg == nil {
		errors.Log(errors.New("form.UpdateFromMsg: nil message"))
		return false
	}
	if f.msg == nil {
		errors.Log(errors.New("form.UpdateFromMsg: no message loaded"))
		return false
	}
	want := f.msg.ProtoReflect().Descriptor().FullName()
	got := msg.ProtoReflect().Descriptor().FullName()
	if got != want {
		errors.Log(fmt.Errorf("form.UpdateFromMsg: message type %q does not match loaded type %q", got, want))
		return false
	}
	proto.Reset(f.msg)
	proto.Merge(f.msg, msg)
	f.parse(f.msg.ProtoReflect(), true, "", 0)
	return true
}

// Msg synchronizes all editable control values back into the working
// copy and returns it, or nil when no message is loaded. The returned
// message is the form's own copy, by reference; callers must not
// assume it stays unchanged across further edits.
func (f *Form) Msg() proto.Message {
	if f.msg == nil {
		return nil
	}
	f.updateMsg(f.msg.ProtoReflect(), "")
	return f.msg
}

// OnChange adds a listener called with the scope path and new value
// whenever a control's value actually changes through the form,
// including during [Form.Load] and [Form.UpdateFromMsg] walks.
func (f *Form) OnChange(fn ChangeFunc) {
	f.listeners.Add(fn)
}

// AddControl registers the given control under the given scope path so
// that walks and accessors can find it. It does not add the control to
// [Form.Root]. It returns false, logging an error, if the path is
// empty, the control is nil, or the path is already registered; the
// original registration is retained.
func (f *Form) AddControl(path string, c Control) bool {
	if path == "" {
		errors.Log(errors.New("form.AddControl: empty path"))
		return false
	}
	if c == nil {
		errors.Log(fmt.Errorf("form.AddControl: nil control for path %q", path))
		return false
	}
	return errors.Log(f.registry.Add(path, c)) == nil
}

// Control returns the control registered under the given scope path,
// or nil if there is none.
func (f *Form) Control(path string) Control {
	c, _ := f.registry.AtTry(path)
	return c
}

// ControlCount returns the number of registered controls.
func (f *Form) ControlCount() int {
	return f.registry.Len()
}

// Paths returns the registered scope paths, in registration order.
func (f *Form) Paths() []string {
	return slices.Clone(f.registry.Keys)
}

// Visible returns whether the control at the given path is visible,
// preferring the enclosing [Collapsible] when the control is wrapped.
// It returns false for unknown paths.
func (f *Form) Visible(path string) bool {
	c := f.Control(path)
	if c == nil {
		return false
	}
	if g := c.AsBase().Group(); g != nil {
		return g.Visible()
	}
	return c.AsBase().Visible()
}

// SetVisible sets the visibility of the control at the given path,
// preferring the enclosing [Collapsible] when the control is wrapped.
// Unknown paths are ignored.
func (f *Form) SetVisible(path string, visible bool) {
	c := f.Control(path)
	if c == nil {
		return
	}
	if g := c.AsBase().Group(); g != nil {
		g.SetVisible(visible)
		return
	}
	c.AsBase().SetVisible(visible)
}

// ReadOnly returns whether the control at the given path is read-only,
// preferring the enclosing [Collapsible] when the control is wrapped.
// Read-only controls keep their values out of [Form.Msg] write-backs.
// It returns false for unknown paths.
func (f *Form) ReadOnly(path string) bool {
	c := f.Control(path)
	if c == nil {
		return false
	}
	return f.controlReadOnly(c)
}

// SetReadOnly sets the read-only state of the control at the given
// path, preferring the enclosing [Collapsible] when the control is
// wrapped. Setting a group propagates to every control inside it.
// Unknown paths are ignored.
func (f *Form) SetReadOnly(path string, readOnly bool) {
	c := f.Control(path)
	if c == nil {
		return
	}
	if g := c.AsBase().Group(); g != nil {
		g.SetReadOnly(readOnly)
	} else {
		c.AsBase().SetReadOnly(readOnly)
	}
	if gc, ok := c.(*GroupControl); ok {
		gc.Frame.Walk(func(child Control) {
			child.AsBase().SetReadOnly(readOnly)
		})
	}
}

// controlReadOnly returns the effective read-only state of a control,
// preferring the enclosing collapsible.
func (f *Form) controlReadOnly(c Control) bool {
	if g := c.AsBase().Group(); g != nil {
		return g.ReadOnly()
	}
	return c.AsBase().ReadOnly()
}

// setControlValue pushes a value into a control, firing change
// listeners when the stored value actually changes. It returns false,
// logging the error, when the control rejects the value.
func (f *Form) setControlValue(path string, c Control, v any) bool {
	old := c.Value()
	if errors.Log(c.SetValue(v)) != nil {
		return false
	}
	nv := c.Value()
	if !valuesEqual(old, nv) {
		f.listeners.Send(path, nv)
	}
	return true
}
