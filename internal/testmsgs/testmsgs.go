// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testmsgs provides a dynamic protobuf schema for tests,
// mirroring the simulation message shapes that forms are built from:
// vectors, quaternions, poses, colors, densities, geometries, and a
// Visual message tying them together. The schema is declared
// programmatically so tests need no generated code or proto files.
package testmsgs

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/simforge/protoform/base/errors"
)

// File is the compiled descriptor of the test schema.
var File = errors.Must1(protodesc.NewFile(fileDesc, nil))

// New returns a new, empty dynamic message of the named type.
func New(name protoreflect.Name) *dynamicpb.Message {
	md := File.Messages().ByName(name)
	if md == nil {
		panic(fmt.Sprintf("testmsgs: no message named %q", name))
	}
	return dynamicpb.NewMessage(md)
}

// NewVisual returns a new, empty Visual message, the root type most
// tests build forms from.
func NewVisual() *dynamicpb.Message {
	return New("Visual")
}

// NewCalibration returns a new, empty Calibration message, whose
// nested vector type declares non-zero field defaults.
func NewCalibration() *dynamicpb.Message {
	return New("Calibration")
}

func mustField(pm protoreflect.Message, name protoreflect.Name) protoreflect.FieldDescriptor {
	fd := pm.Descriptor().Fields().ByName(name)
	if fd == nil {
		panic(fmt.Sprintf("testmsgs: message %s has no field %q", pm.Descriptor().FullName(), name))
	}
	return fd
}

// Mutable returns the named child message, marking it set.
func Mutable(pm protoreflect.Message, name protoreflect.Name) protoreflect.Message {
	return pm.Mutable(mustField(pm, name)).Message()
}

// Child returns the named child message without marking it set.
func Child(pm protoreflect.Message, name protoreflect.Name) protoreflect.Message {
	return pm.Get(mustField(pm, name)).Message()
}

// SetDouble sets the named double field.
func SetDouble(pm protoreflect.Message, name protoreflect.Name, v float64) {
	pm.Set(mustField(pm, name), protoreflect.ValueOfFloat64(v))
}

// SetFloat sets the named float field.
func SetFloat(pm protoreflect.Message, name protoreflect.Name, v float32) {
	pm.Set(mustField(pm, name), protoreflect.ValueOfFloat32(v))
}

// SetInt sets the named int32 or int64 field.
func SetInt(pm protoreflect.Message, name protoreflect.Name, v int64) {
	fd := mustField(pm, name)
	if fd.Kind() == protoreflect.Int32Kind || fd.Kind() == protoreflect.Sint32Kind {
		pm.Set(fd, protoreflect.ValueOfInt32(int32(v)))
		return
	}
	pm.Set(fd, protoreflect.ValueOfInt64(v))
}

// SetUint sets the named uint32 or uint64 field.
func SetUint(pm protoreflect.Message, name protoreflect.Name, v uint64) {
	fd := mustField(pm, name)
	if fd.Kind() == protoreflect.Uint32Kind {
		pm.Set(fd, protoreflect.ValueOfUint32(uint32(v)))
		return
	}
	pm.Set(fd, protoreflect.ValueOfUint64(v))
}

// SetBool sets the named bool field.
func SetBool(pm protoreflect.Message, name protoreflect.Name, v bool) {
	pm.Set(mustField(pm, name), protoreflect.ValueOfBool(v))
}

// SetString sets the named string field.
func SetString(pm protoreflect.Message, name protoreflect.Name, v string) {
	pm.Set(mustField(pm, name), protoreflect.ValueOfString(v))
}

// SetBytes sets the named bytes field.
func SetBytes(pm protoreflect.Message, name protoreflect.Name, v []byte) {
	pm.Set(mustField(pm, name), protoreflect.ValueOfBytes(v))
}

// SetEnum sets the named enum field to the value with the given name.
func SetEnum(pm protoreflect.Message, name protoreflect.Name, value protoreflect.Name) {
	fd := mustField(pm, name)
	evd := fd.Enum().Values().ByName(value)
	if evd == nil {
		panic(fmt.Sprintf("testmsgs: enum %s has no value %q", fd.Enum().FullName(), value))
	}
	pm.Set(fd, protoreflect.ValueOfEnum(evd.Number()))
}

// SetEnumNumber sets the named enum field to a raw number, declared
// or not.
func SetEnumNumber(pm protoreflect.Message, name protoreflect.Name, n int32) {
	pm.Set(mustField(pm, name), protoreflect.ValueOfEnum(protoreflect.EnumNumber(n)))
}

// Double returns the named double field's value.
func Double(pm protoreflect.Message, name protoreflect.Name) float64 {
	return pm.Get(mustField(pm, name)).Float()
}

// Float returns the named float field's value.
func Float(pm protoreflect.Message, name protoreflect.Name) float32 {
	return float32(pm.Get(mustField(pm, name)).Float())
}

// Int returns the named signed integer field's value.
func Int(pm protoreflect.Message, name protoreflect.Name) int64 {
	return pm.Get(mustField(pm, name)).Int()
}

// Uint returns the named unsigned integer field's value.
func Uint(pm protoreflect.Message, name protoreflect.Name) uint64 {
	return pm.Get(mustField(pm, name)).Uint()
}

// Bool returns the named bool field's value.
func Bool(pm protoreflect.Message, name protoreflect.Name) bool {
	return pm.Get(mustField(pm, name)).Bool()
}

// Str returns the named string field's value.
func Str(pm protoreflect.Message, name protoreflect.Name) string {
	return pm.Get(mustField(pm, name)).String()
}

// EnumName returns the declared name of the named enum field's current
// number, or "" for undeclared numbers.
func EnumName(pm protoreflect.Message, name protoreflect.Name) string {
	fd := mustField(pm, name)
	evd := fd.Enum().Values().ByNumber(pm.Get(fd).Enum())
	if evd == nil {
		return ""
	}
	return string(evd.Name())
}

// Has reports whether the named field is set.
func Has(pm protoreflect.Message, name protoreflect.Name) bool {
	return pm.Has(mustField(pm, name))
}

// AppendMessage appends and returns a new element of the named
// repeated message field.
func AppendMessage(pm protoreflect.Message, name protoreflect.Name) protoreflect.Message {
	list := pm.Mutable(mustField(pm, name)).List()
	v := list.NewElement()
	list.Append(v)
	return v.Message()
}

// SetMapString sets one entry of the named string-keyed, string-valued
// map field.
func SetMapString(pm protoreflect.Message, name protoreflect.Name, key, value string) {
	m := pm.Mutable(mustField(pm, name)).Map()
	m.Set(protoreflect.ValueOfString(key).MapKey(), protoreflect.ValueOfString(value))
}

func field(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func msgField(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := field(name, num, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = proto.String(typeName)
	return f
}

func enumField(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := field(name, num, descriptorpb.FieldDescriptorProto_TYPE_ENUM)
	f.TypeName = proto.String(typeName)
	return f
}

func withDefault(f *descriptorpb.FieldDescriptorProto, def string) *descriptorpb.FieldDescriptorProto {
	f.DefaultValue = proto.String(def)
	return f
}

func repeated(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func enumValue(name string, num int32) *descriptorpb.EnumValueDescriptorProto {
	return &descriptorpb.EnumValueDescriptorProto{Name: proto.String(name), Number: proto.Int32(num)}
}

var fileDesc = &descriptorpb.FileDescriptorProto{
	Name:    proto.String("testmsgs.proto"),
	Package: proto.String("protoform.test"),
	Syntax:  proto.String("proto2"),
	MessageType: []*descriptorpb.DescriptorProto{
		{
			Name: proto.String("Header"),
			Field: []*descriptorpb.FieldDescriptorProto{
				field("stamp", 1, descriptorpb.FieldDescriptorProto_TYPE_INT64),
			},
		},
		{
			Name: proto.String("Vector3d"),
			Field: []*descriptorpb.FieldDescriptorProto{
				msgField("header", 1, ".protoform.test.Header"),
				field("x", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				field("y", 3, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				field("z", 4, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
			},
		},
		{
			Name: proto.String("Quaternion"),
			Field: []*descriptorpb.FieldDescriptorProto{
				msgField("header", 1, ".protoform.test.Header"),
				field("x", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				field("y", 3, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				field("z", 4, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				field("w", 5, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
			},
		},
		{
			Name: proto.String("Pose"),
			Field: []*descriptorpb.FieldDescriptorProto{
				msgField("header", 1, ".protoform.test.Header"),
				msgField("position", 2, ".protoform.test.Vector3d"),
				msgField("orientation", 3, ".protoform.test.Quaternion"),
			},
		},
		{
			Name: proto.String("Color"),
			Field: []*descriptorpb.FieldDescriptorProto{
				msgField("header", 1, ".protoform.test.Header"),
				field("r", 2, descriptorpb.FieldDescriptorProto_TYPE_FLOAT),
				field("g", 3, descriptorpb.FieldDescriptorProto_TYPE_FLOAT),
				field("b", 4, descriptorpb.FieldDescriptorProto_TYPE_FLOAT),
				withDefault(field("a", 5, descriptorpb.FieldDescriptorProto_TYPE_FLOAT), "1"),
			},
		},
		{
			Name: proto.String("Density"),
			Field: []*descriptorpb.FieldDescriptorProto{
				msgField("header", 1, ".protoform.test.Header"),
				withDefault(field("density", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE), "1"),
			},
		},
		{
			Name: proto.String("BoxGeom"),
			Field: []*descriptorpb.FieldDescriptorProto{
				msgField("size", 1, ".protoform.test.Vector3d"),
			},
		},
		{
			Name: proto.String("CylinderGeom"),
			Field: []*descriptorpb.FieldDescriptorProto{
				withDefault(field("radius", 1, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE), "0.5"),
				withDefault(field("length", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE), "1"),
			},
		},
		{
			Name: proto.String("SphereGeom"),
			Field: []*descriptorpb.FieldDescriptorProto{
				withDefault(field("radius", 1, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE), "0.5"),
			},
		},
		{
			Name: proto.String("PlaneGeom"),
			Field: []*descriptorpb.FieldDescriptorProto{
				msgField("normal", 1, ".protoform.test.Vector3d"),
			},
		},
		{
			Name: proto.String("MeshGeom"),
			Field: []*descriptorpb.FieldDescriptorProto{
				field("filename", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				msgField("scale", 2, ".protoform.test.Vector3d"),
			},
		},
		{
			Name: proto.String("Geometry"),
			EnumType: []*descriptorpb.EnumDescriptorProto{
				{
					Name: proto.String("Type"),
					Value: []*descriptorpb.EnumValueDescriptorProto{
						enumValue("BOX", 1),
						enumValue("CYLINDER", 2),
						enumValue("SPHERE", 3),
						enumValue("PLANE", 4),
						enumValue("MESH", 5),
					},
				},
			},
			Field: []*descriptorpb.FieldDescriptorProto{
				msgField("header", 1, ".protoform.test.Header"),
				enumField("type", 2, ".protoform.test.Geometry.Type"),
				msgField("box", 3, ".protoform.test.BoxGeom"),
				msgField("cylinder", 4, ".protoform.test.CylinderGeom"),
				msgField("sphere", 5, ".protoform.test.SphereGeom"),
				msgField("plane", 6, ".protoform.test.PlaneGeom"),
				msgField("mesh", 7, ".protoform.test.MeshGeom"),
			},
		},
		{
			Name: proto.String("Material"),
			Field: []*descriptorpb.FieldDescriptorProto{
				msgField("header", 1, ".protoform.test.Header"),
				msgField("ambient", 2, ".protoform.test.Color"),
				msgField("diffuse", 3, ".protoform.test.Color"),
				msgField("density", 4, ".protoform.test.Density"),
			},
		},
		{
			Name: proto.String("Visual"),
			NestedType: []*descriptorpb.DescriptorProto{
				{
					Name:    proto.String("ParamsEntry"),
					Options: &descriptorpb.MessageOptions{MapEntry: proto.Bool(true)},
					Field: []*descriptorpb.FieldDescriptorProto{
						field("key", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
						field("value", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					},
				},
			},
			Field: []*descriptorpb.FieldDescriptorProto{
				msgField("header", 1, ".protoform.test.Header"),
				field("name", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				field("id", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				field("mass", 4, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				withDefault(field("cast_shadows", 5, descriptorpb.FieldDescriptorProto_TYPE_BOOL), "true"),
				field("transparency", 6, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				field("innerxml", 7, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				enumField("shading", 8, ".protoform.test.ShadingMode"),
				msgField("pose", 9, ".protoform.test.Pose"),
				msgField("material", 10, ".protoform.test.Material"),
				msgField("geometry", 11, ".protoform.test.Geometry"),
				repeated(msgField("children", 12, ".protoform.test.Visual")),
				field("blob", 13, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				field("laser_retro", 14, descriptorpb.FieldDescriptorProto_TYPE_FLOAT),
				field("layer", 15, descriptorpb.FieldDescriptorProto_TYPE_INT32),
				field("weird", 16, descriptorpb.FieldDescriptorProto_TYPE_SINT32),
				repeated(msgField("params", 17, ".protoform.test.Visual.ParamsEntry")),
			},
		},
		{
			Name: proto.String("Calibration"),
			NestedType: []*descriptorpb.DescriptorProto{
				{
					Name: proto.String("Vector3d"),
					Field: []*descriptorpb.FieldDescriptorProto{
						msgField("header", 1, ".protoform.test.Header"),
						withDefault(field("x", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE), "1"),
						withDefault(field("y", 3, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE), "1"),
						withDefault(field("z", 4, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE), "1"),
					},
				},
			},
			Field: []*descriptorpb.FieldDescriptorProto{
				msgField("header", 1, ".protoform.test.Header"),
				msgField("scale", 2, ".protoform.test.Calibration.Vector3d"),
			},
		},
	},
	EnumType: []*descriptorpb.EnumDescriptorProto{
		{
			Name: proto.String("ShadingMode"),
			Value: []*descriptorpb.EnumValueDescriptorProto{
				enumValue("FLAT", 1),
				enumValue("SMOOTH", 2),
				enumValue("PIXEL", 3),
			},
		},
	},
}
