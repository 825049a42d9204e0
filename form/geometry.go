// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/simforge/protoform/math64"
)

// geometryTypes are the shape type names offered by a [GeometryControl].
var geometryTypes = []string{"box", "cylinder", "sphere", "plane", "mesh"}

// GeometryControl holds a geometry message as an opaque value, with a
// shape type [Chooser] and typed access to the common dimension fields.
// The stored message is written back whole on synchronization.
type GeometryControl struct {
	ControlBase

	// Types selects the shape type name.
	Types *Chooser

	// msg is the stored geometry message.
	msg proto.Message
}

func newGeometryControl(key string, level int, st *Styles) *GeometryControl {
	gc := &GeometryControl{Types: NewChooser(geometryTypes...)}
	gc.init(key, level, st)
	return gc
}

// SetValue stores a copy of the given geometry message and aligns the
// type chooser with its type field.
func (gc *GeometryControl) SetValue(v any) error {
	m, ok := v.(proto.Message)
	if !ok || m == nil {
		return fmt.Errorf("form.GeometryControl: cannot set %q to %v of type %T", gc.Key, v, v)
	}
	gc.msg = proto.Clone(m)
	gc.syncType()
	return nil
}

// Value returns the stored geometry message.
func (gc *GeometryControl) Value() any {
	if gc.msg == nil {
		return nil
	}
	return gc.msg
}

// syncType aligns the type chooser with the stored message's type enum.
func (gc *GeometryControl) syncType() {
	pm := gc.msg.ProtoReflect()
	fd := pm.Descriptor().Fields().ByName("type")
	if fd == nil || fd.Kind() != protoreflect.EnumKind {
		return
	}
	evd := fd.Enum().Values().ByNumber(pm.Get(fd).Enum())
	if evd == nil {
		return
	}
	gc.Types.SetCurrentText(strings.ToLower(string(evd.Name())))
}

// SetGeometry sets the shape type and the per-type dimension fields of
// the stored geometry message: box.size from dims, sphere.radius from
// dims.X, cylinder.radius and cylinder.length from dims.X and dims.Z,
// and mesh.filename and mesh.scale from uri and dims.
func (gc *GeometryControl) SetGeometry(typeName string, dims math64.Vector3, uri string) error {
	if gc.msg == nil {
		return fmt.Errorf("form.GeometryControl: %q holds no geometry message", gc.Key)
	}
	pm := gc.msg.ProtoReflect()
	tfd := pm.Descriptor().Fields().ByName("type")
	if tfd == nil || tfd.Kind() != protoreflect.EnumKind {
		return fmt.Errorf("form.GeometryControl: message %q has no type enum", pm.Descriptor().FullName())
	}
	typeName = strings.ToLower(typeName)
	evd := tfd.Enum().Values().ByName(protoreflect.Name(strings.ToUpper(typeName)))
	if evd == nil {
		return fmt.Errorf("form.GeometryControl: unknown geometry type %q", typeName)
	}
	pm.Set(tfd, protoreflect.ValueOfEnum(evd.Number()))
	gc.Types.SetCurrentText(typeName)

	switch typeName {
	case "box":
		if box := mutableChild(pm, "box"); box != nil {
			writeVector3Fields(mutableChild(box, "size"), dims)
		}
	case "sphere":
		if sp := mutableChild(pm, "sphere"); sp != nil {
			setDoubleField(sp, "radius", dims.X)
		}
	case "cylinder":
		if cyl := mutableChild(pm, "cylinder"); cyl != nil {
			setDoubleField(cyl, "radius", dims.X)
			setDoubleField(cyl, "length", dims.Z)
		}
	case "mesh":
		if mesh := mutableChild(pm, "mesh"); mesh != nil {
			setStringField(mesh, "filename", uri)
			writeVector3Fields(mutableChild(mesh, "scale"), dims)
		}
	}
	return nil
}

// Geometry returns the current shape type name and the per-type
// dimensions and mesh uri read from the stored message.
func (gc *GeometryControl) Geometry() (typeName string, dims math64.Vector3, uri string) {
	typeName = gc.Types.CurrentText()
	if gc.msg == nil {
		return
	}
	pm := gc.msg.ProtoReflect()
	switch typeName {
	case "box":
		dims = readVector3Fields(childMsg(childMsg(pm, "box"), "size"))
	case "sphere":
		dims.X = doubleField(childMsg(pm, "sphere"), "radius")
	case "cylinder":
		cyl := childMsg(pm, "cylinder")
		dims.X = doubleField(cyl, "radius")
		dims.Z = doubleField(cyl, "length")
	case "mesh":
		mesh := childMsg(pm, "mesh")
		uri = stringField(mesh, "filename")
		dims = readVector3Fields(childMsg(mesh, "scale"))
	}
	return
}

// mutableChild returns the mutable child message of the given field
// name, or nil if there is no such singular message field.
func mutableChild(pm protoreflect.Message, name string) protoreflect.Message {
	if pm == nil {
		return nil
	}
	fd := pm.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil || fd.Kind() != protoreflect.MessageKind || fd.IsList() || fd.IsMap() {
		return nil
	}
	return pm.Mutable(fd).Message()
}

// childMsg returns the child message of the given field name for
// reading, without marking it present, or nil if there is none.
func childMsg(pm protoreflect.Message, name string) protoreflect.Message {
	if pm == nil {
		return nil
	}
	fd := pm.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil || fd.Kind() != protoreflect.MessageKind || fd.IsList() || fd.IsMap() {
		return nil
	}
	return pm.Get(fd).Message()
}

func setDoubleField(pm protoreflect.Message, name string, v float64) {
	if pm == nil {
		return
	}
	fd := pm.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil || fd.Kind() != protoreflect.DoubleKind {
		return
	}
	pm.Set(fd, protoreflect.ValueOfFloat64(v))
}

func doubleField(pm protoreflect.Message, name string) float64 {
	if pm == nil {
		return 0
	}
	fd := pm.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil || fd.Kind() != protoreflect.DoubleKind {
		return 0
	}
	return pm.Get(fd).Float()
}

func setStringField(pm protoreflect.Message, name string, v string) {
	if pm == nil {
		return
	}
	fd := pm.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil || fd.Kind() != protoreflect.StringKind {
		return
	}
	pm.Set(fd, protoreflect.ValueOfString(v))
}

func stringField(pm protoreflect.Message, name string) string {
	if pm == nil {
		return ""
	}
	fd := pm.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil || fd.Kind() != protoreflect.StringKind {
		return ""
	}
	return pm.Get(fd).String()
}

// writeVector3Fields sets the x, y, z double fields of a vector
// message by name.
func writeVector3Fields(pm protoreflect.Message, v math64.Vector3) {
	setDoubleField(pm, "x", v.X)
	setDoubleField(pm, "y", v.Y)
	setDoubleField(pm, "z", v.Z)
}

// readVector3Fields reads the x, y, z double fields of a vector
// message by name.
func readVector3Fields(pm protoreflect.Message) math64.Vector3 {
	return math64.V3(
		doubleField(pm, "x"),
		doubleField(pm, "y"),
		doubleField(pm, "z"),
	)
}
