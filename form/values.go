// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/simforge/protoform/base/errors"
	"github.com/simforge/protoform/colors"
	"github.com/simforge/protoform/math64"
)

// Value returns the value of the control at the given path, or nil if
// no control is registered there.
func (f *Form) Value(path string) any {
	c := f.Control(path)
	if c == nil {
		return nil
	}
	return c.Value()
}

// SetValue sets the value of the control at the given path, firing
// change listeners if it actually changes. It returns false, logging
// an error, for unknown paths and rejected values.
func (f *Form) SetValue(path string, v any) bool {
	c := f.Control(path)
	if c == nil {
		errors.Log(fmt.Errorf("form.SetValue: no control at path %q", path))
		return false
	}
	return f.setControlValue(path, c, v)
}

// IntValue returns the value at the given path as an int64, or 0 for
// unknown paths and non-integer values.
func (f *Form) IntValue(path string) int64 {
	iv, _ := toInt64(f.Value(path))
	return iv
}

// SetIntValue sets the value at the given path from an int64.
func (f *Form) SetIntValue(path string, v int64) bool {
	return f.SetValue(path, v)
}

// UintValue returns the value at the given path as a uint64, or 0 for
// unknown paths and non-integer values.
func (f *Form) UintValue(path string) uint64 {
	uv, _ := toUint64(f.Value(path))
	return uv
}

// SetUintValue sets the value at the given path from a uint64.
func (f *Form) SetUintValue(path string, v uint64) bool {
	return f.SetValue(path, v)
}

// ColorValue returns the value of the color control at the given
// path, or the zero color if it is not one.
func (f *Form) ColorValue(path string) colors.Color {
	c, _ := f.Value(path).(colors.Color)
	return c
}

// SetColorValue sets the color control at the given path.
func (f *Form) SetColorValue(path string, c colors.Color) bool {
	return f.SetValue(path, c)
}

// PoseValue returns the value of the pose control at the given path,
// or the zero pose if it is not one.
func (f *Form) PoseValue(path string) math64.Pose {
	p, _ := f.Value(path).(math64.Pose)
	return p
}

// SetPoseValue sets the pose control at the given path.
func (f *Form) SetPoseValue(path string, p math64.Pose) bool {
	return f.SetValue(path, p)
}

// Vector3Value returns the value of the vector control at the given
// path, or the zero vector if it is not one.
func (f *Form) Vector3Value(path string) math64.Vector3 {
	v, _ := f.Value(path).(math64.Vector3)
	return v
}

// SetVector3Value sets the vector control at the given path.
func (f *Form) SetVector3Value(path string, v math64.Vector3) bool {
	return f.SetValue(path, v)
}

// DensityValue returns the density stored by the density control at
// the given path, or 0 if there is no density control there.
func (f *Form) DensityValue(path string) float64 {
	dc, ok := f.Control(path).(*DensityControl)
	if !ok {
		return 0
	}
	return dc.Density()
}

// SetDensityValue sets the density control at the given path,
// selecting the matching material preset.
func (f *Form) SetDensityValue(path string, density float64) bool {
	dc, ok := f.Control(path).(*DensityControl)
	if !ok {
		errors.Log(fmt.Errorf("form.SetDensityValue: no density control at path %q", path))
		return false
	}
	return f.setControlValue(path, dc, density)
}

// EnumValue returns the current option of the enum control at the
// given path, or "" if there is no enum control there.
func (f *Form) EnumValue(path string) string {
	ec, ok := f.Control(path).(*EnumControl)
	if !ok {
		return ""
	}
	return ec.Chooser.CurrentText()
}

// SetEnumValue selects the given option on the enum control at the
// given path.
func (f *Form) SetEnumValue(path, option string) bool {
	ec, ok := f.Control(path).(*EnumControl)
	if !ok {
		errors.Log(fmt.Errorf("form.SetEnumValue: no enum control at path %q", path))
		return false
	}
	return f.setControlValue(path, ec, option)
}

// GeometryValue returns the geometry surface of the geometry control
// at the given path: type name, dimensions, and mesh URI. All results
// are zero if there is no geometry control there.
func (f *Form) GeometryValue(path string) (typeName string, dims math64.Vector3, uri string) {
	gc, ok := f.Control(path).(*GeometryControl)
	if !ok {
		return "", math64.Vector3{}, ""
	}
	return gc.Geometry()
}

// SetGeometryValue edits the geometry control at the given path
// through its typed surface, firing change listeners if the stored
// geometry actually changes.
func (f *Form) SetGeometryValue(path, typeName string, dims math64.Vector3, uri string) bool {
	gc, ok := f.Control(path).(*GeometryControl)
	if !ok {
		errors.Log(fmt.Errorf("form.SetGeometryValue: no geometry control at path %q", path))
		return false
	}
	var old proto.Message
	if m, ok := gc.Value().(proto.Message); ok {
		old = proto.Clone(m)
	}
	if errors.Log(gc.SetGeometry(typeName, dims, uri)) != nil {
		return false
	}
	nv := gc.Value()
	if !valuesEqual(old, nv) {
		f.listeners.Send(path, nv)
	}
	return true
}

// AddEnumItem appends an option to the enum control at the given path
// without firing change listeners.
func (f *Form) AddEnumItem(path, option string) bool {
	ec, ok := f.Control(path).(*EnumControl)
	if !ok {
		errors.Log(fmt.Errorf("form.AddEnumItem: no enum control at path %q", path))
		return false
	}
	ec.Chooser.AddItem(option)
	return true
}

// RemoveEnumItem removes an option from the enum control at the given
// path without firing change listeners, returning false if the path
// has no enum control or the option is not in its list.
func (f *Form) RemoveEnumItem(path, option string) bool {
	ec, ok := f.Control(path).(*EnumControl)
	if !ok {
		errors.Log(fmt.Errorf("form.RemoveEnumItem: no enum control at path %q", path))
		return false
	}
	if !ec.Chooser.RemoveItem(option) {
		errors.Log(fmt.Errorf("form.RemoveEnumItem: %q has no option %q", path, option))
		return false
	}
	return true
}

// ClearEnumItems removes all options from the enum control at the
// given path without firing change listeners.
func (f *Form) ClearEnumItems(path string) bool {
	ec, ok := f.Control(path).(*EnumControl)
	if !ok {
		errors.Log(fmt.Errorf("form.ClearEnumItems: no enum control at path %q", path))
		return false
	}
	ec.Chooser.Clear()
	return true
}
