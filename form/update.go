// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/simforge/protoform/base/errors"
	"github.com/simforge/protoform/colors"
	"github.com/simforge/protoform/math64"
)

// updateMsg walks the fields of the given message in declaration
// order, writing the value of each registered, editable control back
// into its field. Fields with no registered control and fields whose
// control is read-only keep their stored values.
func (f *Form) updateMsg(pm protoreflect.Message, scope string) {
	fields := pm.Descriptor().Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if fd.IsList() || fd.IsMap() {
			continue
		}
		path := scopePath(scope, string(fd.Name()))
		if fd.Kind() == protoreflect.MessageKind {
			f.updateMessage(pm, fd, path)
			continue
		}
		c, ok := f.registry.AtTry(path)
		if !ok || f.controlReadOnly(c) {
			continue
		}
		v := c.Value()
		switch fd.Kind() {
		case protoreflect.DoubleKind:
			fv, ok := toFloat64(v)
			if !ok {
				logTypeMismatch(path, v, "double")
				continue
			}
			pm.Set(fd, protoreflect.ValueOfFloat64(fv))
		case protoreflect.FloatKind:
			fv, ok := toFloat64(v)
			if !ok {
				logTypeMismatch(path, v, "float")
				continue
			}
			pm.Set(fd, protoreflect.ValueOfFloat32(float32(fv)))
		case protoreflect.Int32Kind:
			iv, ok := toInt64(v)
			if !ok {
				logTypeMismatch(path, v, "int32")
				continue
			}
			pm.Set(fd, protoreflect.ValueOfInt32(int32(iv)))
		case protoreflect.Int64Kind:
			iv, ok := toInt64(v)
			if !ok {
				logTypeMismatch(path, v, "int64")
				continue
			}
			pm.Set(fd, protoreflect.ValueOfInt64(iv))
		case protoreflect.Uint32Kind:
			uv, ok := toUint64(v)
			if !ok {
				logTypeMismatch(path, v, "uint32")
				continue
			}
			pm.Set(fd, protoreflect.ValueOfUint32(uint32(uv)))
		case protoreflect.Uint64Kind:
			uv, ok := toUint64(v)
			if !ok {
				logTypeMismatch(path, v, "uint64")
				continue
			}
			pm.Set(fd, protoreflect.ValueOfUint64(uv))
		case protoreflect.BoolKind:
			bv, ok := v.(bool)
			if !ok {
				logTypeMismatch(path, v, "bool")
				continue
			}
			pm.Set(fd, protoreflect.ValueOfBool(bv))
		case protoreflect.StringKind:
			sv, ok := v.(string)
			if !ok {
				logTypeMismatch(path, v, "string")
				continue
			}
			pm.Set(fd, protoreflect.ValueOfString(sv))
		case protoreflect.EnumKind:
			sv, ok := v.(string)
			if !ok {
				logTypeMismatch(path, v, "enum")
				continue
			}
			ev := fd.Enum().Values().ByName(protoreflect.Name(sv))
			if ev == nil {
				errors.Log(fmt.Errorf("form: enum %q has no value named %q for field %q", fd.Enum().FullName(), sv, path))
				continue
			}
			pm.Set(fd, protoreflect.ValueOfEnum(ev.Number()))
		}
	}
}

// updateMessage writes one singular message field back from its
// registered control, dispatching well-known shapes to positional
// writers and recursing into plain groups.
func (f *Form) updateMessage(pm protoreflect.Message, fd protoreflect.FieldDescriptor, path string) {
	c, ok := f.registry.AtTry(path)
	if !ok || f.controlReadOnly(c) {
		return
	}
	switch tc := c.(type) {
	case *GeometryControl:
		m, ok := tc.Value().(proto.Message)
		if !ok {
			return
		}
		nested := pm.Mutable(fd).Message()
		if m.ProtoReflect().Descriptor().FullName() != nested.Descriptor().FullName() {
			errors.Log(fmt.Errorf("form: geometry control %q holds %q, field needs %q",
				path, m.ProtoReflect().Descriptor().FullName(), nested.Descriptor().FullName()))
			return
		}
		proto.Reset(nested.Interface())
		proto.Merge(nested.Interface(), m)
	case *PoseControl:
		p, _ := tc.Value().(math64.Pose)
		writePoseMsg(pm.Mutable(fd).Message(), p)
	case *Vector3Control:
		v, _ := tc.Value().(math64.Vector3)
		writeVector3Msg(pm.Mutable(fd).Message(), v)
	case *ColorControl:
		cv, _ := tc.Value().(colors.Color)
		writeColorMsg(pm.Mutable(fd).Message(), cv)
	case *DensityControl:
		writeDensityMsg(pm.Mutable(fd).Message(), tc.Density())
	default:
		f.updateMsg(pm.Mutable(fd).Message(), path)
	}
}

// writeVector3Msg writes a [math64.Vector3] into a Vector3d-shaped
// message by field position, skipping positions that are not doubles.
func writeVector3Msg(pm protoreflect.Message, v math64.Vector3) {
	fields := pm.Descriptor().Fields()
	if fields.Len() < 4 {
		return
	}
	for i, val := range []float64{v.X, v.Y, v.Z} {
		fd := fields.Get(i + 1)
		if fd.Kind() != protoreflect.DoubleKind {
			continue
		}
		pm.Set(fd, protoreflect.ValueOfFloat64(val))
	}
}

// writeQuaternionMsg writes a [math64.Quaternion] into a
// Quaternion-shaped message by field position.
func writeQuaternionMsg(pm protoreflect.Message, q math64.Quaternion) {
	fields := pm.Descriptor().Fields()
	if fields.Len() < 5 {
		return
	}
	for i, val := range []float64{q.X, q.Y, q.Z, q.W} {
		fd := fields.Get(i + 1)
		if fd.Kind() != protoreflect.DoubleKind {
			continue
		}
		pm.Set(fd, protoreflect.ValueOfFloat64(val))
	}
}

// writePoseMsg writes a [math64.Pose] into a Pose-shaped message
// through its Vector3d and Quaternion message sub-fields.
func writePoseMsg(pm protoreflect.Message, p math64.Pose) {
	fields := pm.Descriptor().Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if fd.Kind() != protoreflect.MessageKind || fd.IsList() || fd.IsMap() {
			continue
		}
		switch fd.Message().Name() {
		case "Vector3d":
			writeVector3Msg(pm.Mutable(fd).Message(), p.Pos)
		case "Quaternion":
			writeQuaternionMsg(pm.Mutable(fd).Message(), p.Rot)
		}
	}
}

// writeColorMsg writes a [colors.Color] into a Color-shaped message
// by field position, skipping positions that are not floats.
func writeColorMsg(pm protoreflect.Message, c colors.Color) {
	fields := pm.Descriptor().Fields()
	if fields.Len() < 5 {
		return
	}
	for i, val := range []float32{c.R, c.G, c.B, c.A} {
		fd := fields.Get(i + 1)
		if fd.Kind() != protoreflect.FloatKind {
			continue
		}
		pm.Set(fd, protoreflect.ValueOfFloat32(val))
	}
}

// writeDensityMsg writes a density into a Density-shaped message's
// density sub-field, if it has one.
func writeDensityMsg(pm protoreflect.Message, density float64) {
	fd := pm.Descriptor().Fields().ByName("density")
	if fd == nil || fd.Kind() != protoreflect.DoubleKind {
		return
	}
	pm.Set(fd, protoreflect.ValueOfFloat64(density))
}

// logTypeMismatch logs a control value that cannot be written back
// into its field's kind.
func logTypeMismatch(path string, v any, want string) {
	errors.Log(fmt.Errorf("form: control %q value %v of type %T cannot be written as %s", path, v, v, want))
}
