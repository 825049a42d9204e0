// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/simforge/protoform/base/errors"
	"github.com/simforge/protoform/colors"
	"github.com/simforge/protoform/math64"
)

// parse walks the fields of the given message in declaration order,
// fabricating controls for newly seen scope paths and refreshing the
// values of already registered ones. In update mode only fields that
// are set are visited. It returns a frame holding the newly fabricated
// controls; callers decide whether to install it.
func (f *Form) parse(pm protoreflect.Message, update bool, scope string, level int) *Frame {
	frame := &Frame{}
	fields := pm.Descriptor().Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if fd.IsList() || fd.IsMap() {
			continue
		}
		if update && !pm.Has(fd) {
			continue
		}
		key := string(fd.Name())
		path := scopePath(scope, key)
		switch fd.Kind() {
		case protoreflect.DoubleKind, protoreflect.FloatKind:
			v := pm.Get(fd).Float()
			if math.IsNaN(v) {
				v = 0
			}
			f.applyScalar(frame, path, key, level, v, func() Control {
				return newNumberControl(key, NumberDouble, level, f.styles)
			})
		case protoreflect.Int32Kind, protoreflect.Int64Kind:
			f.applyScalar(frame, path, key, level, pm.Get(fd).Int(), func() Control {
				return newNumberControl(key, NumberInt, level, f.styles)
			})
		case protoreflect.Uint32Kind, protoreflect.Uint64Kind:
			f.applyScalar(frame, path, key, level, pm.Get(fd).Uint(), func() Control {
				return newNumberControl(key, NumberUint, level, f.styles)
			})
		case protoreflect.BoolKind:
			f.applyScalar(frame, path, key, level, pm.Get(fd).Bool(), func() Control {
				return newBoolControl(key, level, f.styles)
			})
		case protoreflect.StringKind:
			f.applyScalar(frame, path, key, level, pm.Get(fd).String(), func() Control {
				return newStringControl(key, level, f.styles)
			})
		case protoreflect.EnumKind:
			ev := fd.Enum().Values().ByNumber(pm.Get(fd).Enum())
			if ev == nil {
				errors.Log(fmt.Errorf("form: field %q holds enum number %d with no declared value", path, pm.Get(fd).Enum()))
				continue
			}
			f.applyScalar(frame, path, key, level, string(ev.Name()), func() Control {
				return newEnumControl(key, enumItems(fd.Enum()), level, f.styles)
			})
		case protoreflect.MessageKind:
			f.parseMessage(frame, fd, pm.Mutable(fd).Message(), path, key, update, level)
		}
	}
	return frame
}

// parseMessage dispatches one singular message field to its control,
// recognizing well-known shapes by declared type name and turning
// everything else into a nested group of its own fields.
func (f *Form) parseMessage(frame *Frame, fd protoreflect.FieldDescriptor, nested protoreflect.Message, path, key string, update bool, level int) {
	switch fd.Message().Name() {
	case "Geometry":
		f.applyMessage(frame, path, key, level, nested.Interface(), func() Control {
			return newGeometryControl(key, level, f.styles)
		})
	case "Pose":
		p, err := poseFromMsg(nested)
		if errors.Log(err) != nil {
			return
		}
		f.applyMessage(frame, path, key, level, p, func() Control {
			return newPoseControl(key, level, f.styles)
		})
	case "Vector3d":
		v, err := vector3FromMsg(nested)
		if errors.Log(err) != nil {
			return
		}
		f.applyMessage(frame, path, key, level, v, func() Control {
			return newVector3Control(key, level, f.styles)
		})
	case "Color":
		c, err := colorFromMsg(nested)
		if errors.Log(err) != nil {
			return
		}
		f.applyMessage(frame, path, key, level, c, func() Control {
			return newColorControl(key, level, f.styles)
		})
	case "Density":
		f.applyMessage(frame, path, key, level, densityFromMsg(nested), func() Control {
			return newDensityControl(key, level, f.styles, f.materials)
		})
	default:
		child := f.parse(nested, update, path, level+1)
		if _, ok := f.registry.AtTry(path); ok {
			return
		}
		g := newGroupControl(key, level, child, f.styles)
		if !f.AddControl(path, g) {
			return
		}
		frame.Add(newCollapsible(key, g, level, f.styles))
	}
}

// applyScalar refreshes the value of an already registered scalar
// control, or fabricates one with create, registers it under path, and
// adds it to the frame. Controls fabricated at the top level take the
// frame background color instead of the widget color.
func (f *Form) applyScalar(frame *Frame, path, key string, level int, v any, create func() Control) {
	if c, ok := f.registry.AtTry(path); ok {
		f.setControlValue(path, c, v)
		return
	}
	c := create()
	if !f.AddControl(path, c) {
		return
	}
	f.setControlValue(path, c, v)
	if level == 0 {
		c.AsBase().Background = f.styles.BackgroundColor(0)
	}
	frame.Add(c)
}

// applyMessage is applyScalar for well-known message shapes: new
// controls are wrapped in a [Collapsible] before being added, with the
// registry keeping the inner control.
func (f *Form) applyMessage(frame *Frame, path, key string, level int, v any, create func() Control) {
	if c, ok := f.registry.AtTry(path); ok {
		f.setControlValue(path, c, v)
		return
	}
	c := create()
	if !f.AddControl(path, c) {
		return
	}
	f.setControlValue(path, c, v)
	frame.Add(newCollapsible(key, c, level, f.styles))
}

// scopePath joins a parent scope and a field name into a scope path.
func scopePath(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + scopeSeparator + name
}

// vector3FromMsg reads a Vector3d-shaped message into a
// [math64.Vector3] by field position: the three doubles following the
// leading header field.
func vector3FromMsg(pm protoreflect.Message) (math64.Vector3, error) {
	fields := pm.Descriptor().Fields()
	if fields.Len() < 4 {
		return math64.Vector3{}, fmt.Errorf("form: message %q has %d fields, not a vector", pm.Descriptor().FullName(), fields.Len())
	}
	var v math64.Vector3
	for i, dst := range []*float64{&v.X, &v.Y, &v.Z} {
		fd := fields.Get(i + 1)
		if fd.Kind() != protoreflect.DoubleKind {
			return math64.Vector3{}, fmt.Errorf("form: message %q field %q is %v, not double", pm.Descriptor().FullName(), fd.Name(), fd.Kind())
		}
		*dst = pm.Get(fd).Float()
	}
	return v, nil
}

// quaternionFromMsg reads a Quaternion-shaped message into a
// [math64.Quaternion] by field position: the four doubles following
// the leading header field.
func quaternionFromMsg(pm protoreflect.Message) (math64.Quaternion, error) {
	fields := pm.Descriptor().Fields()
	if fields.Len() < 5 {
		return math64.Quaternion{}, fmt.Errorf("form: message %q has %d fields, not a quaternion", pm.Descriptor().FullName(), fields.Len())
	}
	var q math64.Quaternion
	for i, dst := range []*float64{&q.X, &q.Y, &q.Z, &q.W} {
		fd := fields.Get(i + 1)
		if fd.Kind() != protoreflect.DoubleKind {
			return math64.Quaternion{}, fmt.Errorf("form: message %q field %q is %v, not double", pm.Descriptor().FullName(), fd.Name(), fd.Kind())
		}
		*dst = pm.Get(fd).Float()
	}
	return q, nil
}

// poseFromMsg reads a Pose-shaped message into a [math64.Pose] from
// its Vector3d and Quaternion message sub-fields.
func poseFromMsg(pm protoreflect.Message) (math64.Pose, error) {
	var p math64.Pose
	p.Rot = math64.QIdentity()
	fields := pm.Descriptor().Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if fd.Kind() != protoreflect.MessageKind || fd.IsList() || fd.IsMap() {
			continue
		}
		switch fd.Message().Name() {
		case "Vector3d":
			v, err := vector3FromMsg(pm.Get(fd).Message())
			if err != nil {
				return math64.Pose{}, err
			}
			p.Pos = v
		case "Quaternion":
			q, err := quaternionFromMsg(pm.Get(fd).Message())
			if err != nil {
				return math64.Pose{}, err
			}
			p.Rot = q
		}
	}
	return p, nil
}

// colorFromMsg reads a Color-shaped message into a [colors.Color] by
// field position: the four floats following the leading header field.
// Channels that are not set read as 0, regardless of declared field
// defaults.
func colorFromMsg(pm protoreflect.Message) (colors.Color, error) {
	fields := pm.Descriptor().Fields()
	if fields.Len() < 5 {
		return colors.Color{}, fmt.Errorf("form: message %q has %d fields, not a color", pm.Descriptor().FullName(), fields.Len())
	}
	var c colors.Color
	for i, dst := range []*float32{&c.R, &c.G, &c.B, &c.A} {
		fd := fields.Get(i + 1)
		if fd.Kind() != protoreflect.FloatKind {
			return colors.Color{}, fmt.Errorf("form: message %q field %q is %v, not float", pm.Descriptor().FullName(), fd.Name(), fd.Kind())
		}
		if pm.Has(fd) {
			*dst = float32(pm.Get(fd).Float())
		}
	}
	return c, nil
}

// densityFromMsg reads a Density-shaped message's density sub-field,
// defaulting to 1 when the message has no double field of that name.
func densityFromMsg(pm protoreflect.Message) float64 {
	fd := pm.Descriptor().Fields().ByName("density")
	if fd == nil || fd.Kind() != protoreflect.DoubleKind {
		return 1
	}
	return pm.Get(fd).Float()
}
