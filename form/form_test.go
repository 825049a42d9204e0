// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/simforge/protoform/colors"
	"github.com/simforge/protoform/internal/testmsgs"
	"github.com/simforge/protoform/math64"
)

// buildVisual returns a Visual message with every form-editable field
// explicitly set.
func buildVisual() *dynamicpb.Message {
	vis := testmsgs.NewVisual()
	testmsgs.SetInt(testmsgs.Mutable(vis, "header"), "stamp", 7)
	testmsgs.SetString(vis, "name", "chassis")
	testmsgs.SetUint(vis, "id", 12)
	testmsgs.SetDouble(vis, "mass", 1.5)
	testmsgs.SetBool(vis, "cast_shadows", false)
	testmsgs.SetDouble(vis, "transparency", 0.25)
	testmsgs.SetString(vis, "innerxml", "<plugin name='p'/>")
	testmsgs.SetEnum(vis, "shading", "SMOOTH")
	testmsgs.SetFloat(vis, "laser_retro", 0.5)
	testmsgs.SetInt(vis, "layer", 2)

	pose := testmsgs.Mutable(vis, "pose")
	pos := testmsgs.Mutable(pose, "position")
	testmsgs.SetDouble(pos, "x", 1)
	testmsgs.SetDouble(pos, "y", 2)
	testmsgs.SetDouble(pos, "z", 3)
	rot := testmsgs.Mutable(pose, "orientation")
	testmsgs.SetDouble(rot, "x", 0)
	testmsgs.SetDouble(rot, "y", 0)
	testmsgs.SetDouble(rot, "z", 0)
	testmsgs.SetDouble(rot, "w", 1)

	mat := testmsgs.Mutable(vis, "material")
	testmsgs.SetInt(testmsgs.Mutable(mat, "header"), "stamp", 3)
	amb := testmsgs.Mutable(mat, "ambient")
	testmsgs.SetFloat(amb, "r", 0.5)
	testmsgs.SetFloat(amb, "g", 0.25)
	testmsgs.SetFloat(amb, "b", 0.125)
	testmsgs.SetFloat(amb, "a", 1)
	dif := testmsgs.Mutable(mat, "diffuse")
	testmsgs.SetFloat(dif, "r", 1)
	testmsgs.SetFloat(dif, "g", 1)
	testmsgs.SetFloat(dif, "b", 1)
	testmsgs.SetFloat(dif, "a", 1)
	testmsgs.SetDouble(testmsgs.Mutable(mat, "density"), "density", 1000)

	geom := testmsgs.Mutable(vis, "geometry")
	testmsgs.SetEnum(geom, "type", "BOX")
	size := testmsgs.Mutable(testmsgs.Mutable(geom, "box"), "size")
	testmsgs.SetDouble(size, "x", 1)
	testmsgs.SetDouble(size, "y", 2)
	testmsgs.SetDouble(size, "z", 3)
	return vis
}

func TestLoadBuildsControls(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))

	for _, path := range []string{
		"header", "header::stamp", "name", "id", "mass", "cast_shadows",
		"transparency", "innerxml", "shading", "pose", "material",
		"material::header::stamp", "material::ambient", "material::diffuse",
		"material::density", "geometry", "laser_retro", "layer",
	} {
		assert.NotNil(t, f.Control(path), "path %q", path)
	}
	// bytes, sint32, repeated, and map fields have no controls
	for _, path := range []string{"blob", "weird", "children", "params", "pose::position"} {
		assert.Nil(t, f.Control(path), "path %q", path)
	}

	// one root child per supported top-level field, in declaration order
	require.Equal(t, 13, f.Root.Len())
	col, ok := f.Root.Children[0].(*Collapsible)
	require.True(t, ok)
	assert.IsType(t, &GroupControl{}, col.Child)
	assert.Equal(t, "header", col.Key)

	assert.Equal(t, "chassis", f.Value("name"))
	assert.Equal(t, uint64(12), f.UintValue("id"))
	assert.Equal(t, 1.5, f.Value("mass"))
	assert.Equal(t, false, f.Value("cast_shadows"))
	assert.Equal(t, "SMOOTH", f.EnumValue("shading"))
	assert.Equal(t, int64(7), f.IntValue("header::stamp"))
	assert.Equal(t, colors.Color{R: 0.5, G: 0.25, B: 0.125, A: 1}, f.ColorValue("material::ambient"))
	assert.Equal(t, 1000.0, f.DensityValue("material::density"))

	pose := f.PoseValue("pose")
	assert.True(t, pose.Pos.AlmostEqual(math64.V3(1, 2, 3), 1e-12))
	assert.True(t, pose.Rot.AlmostEqual(math64.QIdentity(), 1e-12))

	typeName, dims, uri := f.GeometryValue("geometry")
	assert.Equal(t, "box", typeName)
	assert.True(t, dims.AlmostEqual(math64.V3(1, 2, 3), 1e-12))
	assert.Equal(t, "", uri)

	// top-level primitives take the frame background, nested ones the
	// widget color for their level
	st := DefaultStyles()
	assert.Equal(t, st.BackgroundColor(0), f.Control("mass").AsBase().Background)
	assert.Equal(t, st.WidgetColor(1), f.Control("material::ambient").AsBase().Background)
	assert.Equal(t, st.BackgroundColor(0), col.Background)
}

func TestMsgRoundTrip(t *testing.T) {
	vis := buildVisual()
	f := New()
	require.NoError(t, f.Load(vis))

	got := f.Msg()
	require.NotNil(t, got)
	assert.True(t, proto.Equal(vis, got), "synchronized message differs from loaded one")

	// synchronizing again changes nothing
	again := f.Msg()
	assert.True(t, proto.Equal(got, again))
}

func TestLoadTwiceReusesControls(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))
	root := f.Root
	mass := f.Control("mass")
	count := f.ControlCount()

	second := buildVisual()
	testmsgs.SetDouble(second, "mass", 9)
	require.NoError(t, f.Load(second))

	assert.Same(t, root, f.Root)
	assert.Same(t, mass, f.Control("mass"))
	assert.Equal(t, count, f.ControlCount())
	assert.Equal(t, 9.0, f.Value("mass"))
}

func TestUpdateFromMsg(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))
	root := f.Root
	count := f.ControlCount()

	var events []string
	f.OnChange(func(path string, value any) {
		events = append(events, path)
	})

	next := buildVisual()
	testmsgs.SetDouble(next, "mass", 7.5)
	require.True(t, f.UpdateFromMsg(next))

	assert.Equal(t, 7.5, f.Value("mass"))
	assert.Same(t, root, f.Root)
	assert.Equal(t, count, f.ControlCount())
	// only the changed field fires
	assert.Equal(t, []string{"mass"}, events)
}

func TestUpdateFromMsgRejectsOtherType(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))
	assert.False(t, f.UpdateFromMsg(testmsgs.New("Pose")))
	assert.Equal(t, 1.5, f.Value("mass"))

	assert.False(t, f.UpdateFromMsg(nil))
}

func TestUpdateRegistersNewControls(t *testing.T) {
	vis := testmsgs.NewVisual()
	testmsgs.SetEnumNumber(vis, "shading", 99)
	f := New()
	require.NoError(t, f.Load(vis))

	// an undeclared stored number leaves the field without a control
	require.Nil(t, f.Control("shading"))
	root := f.Root

	next := testmsgs.NewVisual()
	testmsgs.SetEnum(next, "shading", "PIXEL")
	require.True(t, f.UpdateFromMsg(next))

	// the control exists now, but the visual tree is unchanged
	require.NotNil(t, f.Control("shading"))
	assert.Equal(t, "PIXEL", f.EnumValue("shading"))
	assert.Same(t, root, f.Root)
	found := false
	f.Root.Walk(func(c Control) {
		if c.AsBase().Key == "shading" {
			found = true
		}
	})
	assert.False(t, found)
}

func TestReadOnlyVeto(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))

	f.SetReadOnly("mass", true)
	assert.True(t, f.ReadOnly("mass"))
	assert.True(t, f.SetValue("mass", 99))
	got := f.Msg().ProtoReflect()
	assert.Equal(t, 1.5, testmsgs.Double(got, "mass"), "read-only value written back")

	f.SetReadOnly("mass", false)
	got = f.Msg().ProtoReflect()
	assert.Equal(t, 99.0, testmsgs.Double(got, "mass"))
}

func TestGroupReadOnlyPropagates(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))

	f.SetReadOnly("material", true)
	assert.True(t, f.ReadOnly("material"))
	assert.True(t, f.ReadOnly("material::ambient"))
	assert.True(t, f.ReadOnly("material::density"))

	f.SetColorValue("material::ambient", colors.Color{R: 1})
	amb := testmsgs.Child(testmsgs.Child(f.Msg().ProtoReflect(), "material"), "ambient")
	assert.InDelta(t, 0.5, testmsgs.Float(amb, "r"), 1e-9, "read-only group written back")

	f.SetReadOnly("material", false)
	assert.False(t, f.ReadOnly("material::ambient"))
	amb = testmsgs.Child(testmsgs.Child(f.Msg().ProtoReflect(), "material"), "ambient")
	assert.InDelta(t, 1, testmsgs.Float(amb, "r"), 1e-9)
}

func TestAddControl(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))
	count := f.ControlCount()
	mass := f.Control("mass")

	assert.False(t, f.AddControl("mass", newBoolControl("mass", 0, DefaultStyles())))
	assert.Same(t, mass, f.Control("mass"), "duplicate replaced the original")
	assert.False(t, f.AddControl("", newBoolControl("x", 0, DefaultStyles())))
	assert.False(t, f.AddControl("extra", nil))
	assert.Equal(t, count, f.ControlCount())

	assert.True(t, f.AddControl("extra", newBoolControl("extra", 0, DefaultStyles())))
	assert.Equal(t, count+1, f.ControlCount())
	assert.Contains(t, f.Paths(), "extra")
}

func TestUnsupportedFieldsUntouched(t *testing.T) {
	vis := buildVisual()
	testmsgs.SetBytes(vis, "blob", []byte{1, 2, 3})
	testmsgs.SetInt(vis, "weird", -5)
	testmsgs.AppendMessage(vis, "children")
	testmsgs.SetMapString(vis, "params", "k", "v")

	f := New()
	require.NoError(t, f.Load(vis))
	assert.Nil(t, f.Control("blob"))
	assert.Nil(t, f.Control("weird"))

	got := f.Msg()
	require.NotNil(t, got)
	assert.True(t, proto.Equal(vis, got), "unsupported fields were modified")

	// the update walk skips them too
	count := f.ControlCount()
	require.True(t, f.UpdateFromMsg(vis))
	assert.Equal(t, count, f.ControlCount())
	assert.Nil(t, f.Control("children"))
	assert.True(t, proto.Equal(vis, f.Msg()))
}

func TestNaNHandling(t *testing.T) {
	vis := buildVisual()
	testmsgs.SetDouble(vis, "mass", math.NaN())

	f := New()
	require.NoError(t, f.Load(vis))
	// NaN reads normalize to zero
	assert.Equal(t, 0.0, f.Value("mass"))
	assert.Equal(t, 0.0, testmsgs.Double(f.Msg().ProtoReflect(), "mass"))

	// but a NaN pushed into a control is written back as given
	require.True(t, f.SetValue("mass", math.NaN()))
	assert.True(t, math.IsNaN(testmsgs.Double(f.Msg().ProtoReflect(), "mass")))
}

func TestEnumWriteBack(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))

	ec, ok := f.Control("shading").(*EnumControl)
	require.True(t, ok)
	assert.Equal(t, []string{"FLAT", "SMOOTH", "PIXEL"}, ec.Chooser.Items)

	require.True(t, f.SetEnumValue("shading", "PIXEL"))
	assert.Equal(t, "PIXEL", testmsgs.EnumName(f.Msg().ProtoReflect(), "shading"))

	// unknown options are rejected before reaching the control
	assert.False(t, f.SetEnumValue("shading", "GLOSSY"))
	assert.Equal(t, "PIXEL", f.EnumValue("shading"))

	// an injected option that is not a declared value leaves the field
	// untouched on write-back
	require.True(t, f.AddEnumItem("shading", "GLOSSY"))
	require.True(t, f.SetEnumValue("shading", "GLOSSY"))
	assert.Equal(t, "PIXEL", testmsgs.EnumName(f.Msg().ProtoReflect(), "shading"))
}

func TestDensityPresets(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))
	const path = "material::density"

	dc, ok := f.Control(path).(*DensityControl)
	require.True(t, ok)
	assert.Equal(t, "Water", dc.Presets.CurrentText())

	// within the preset tolerance, strictly
	require.True(t, f.SetDensityValue(path, 1000.4))
	assert.Equal(t, "Water", dc.Presets.CurrentText())
	assert.Equal(t, 1000.4, f.DensityValue(path))

	// at the tolerance boundary the custom entry is selected
	require.True(t, f.SetDensityValue(path, 1001))
	assert.Equal(t, "Custom...", dc.Presets.CurrentText())
	assert.Equal(t, 1001.0, f.DensityValue(path))

	require.True(t, f.SetDensityValue(path, 19300))
	assert.Equal(t, "Tungsten", dc.Presets.CurrentText())

	den := testmsgs.Child(testmsgs.Child(f.Msg().ProtoReflect(), "material"), "density")
	assert.Equal(t, 19300.0, testmsgs.Double(den, "density"))
}

func TestColorUnsetChannelsReadZero(t *testing.T) {
	vis := buildVisual()
	amb := testmsgs.Mutable(testmsgs.Mutable(vis, "material"), "ambient")
	amb.Clear(amb.Descriptor().Fields().ByName("a"))

	f := New()
	require.NoError(t, f.Load(vis))
	// the unset alpha reads 0 even though the field declares default 1
	assert.Equal(t, colors.Color{R: 0.5, G: 0.25, B: 0.125, A: 0}, f.ColorValue("material::ambient"))

	got := testmsgs.Child(testmsgs.Child(f.Msg().ProtoReflect(), "material"), "ambient")
	assert.Equal(t, float32(0), testmsgs.Float(got, "a"))
	assert.True(t, testmsgs.Has(got, "a"))
}

func TestVectorDeclaredDefaultsHonored(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(testmsgs.NewCalibration()))

	// unlike colors, vector reads go through the declared defaults
	assert.True(t, f.Vector3Value("scale").AlmostEqual(math64.V3(1, 1, 1), 1e-12))

	scale := testmsgs.Child(f.Msg().ProtoReflect(), "scale")
	assert.Equal(t, 1.0, testmsgs.Double(scale, "x"))
}

func TestListeners(t *testing.T) {
	type event struct {
		path  string
		value any
	}
	var order []string
	var events []event
	f := New()
	f.OnChange(func(path string, value any) {
		order = append(order, "first")
		events = append(events, event{path, value})
	})
	f.OnChange(func(path string, value any) {
		order = append(order, "second")
	})

	require.NoError(t, f.Load(buildVisual()))
	// the build walk fires for controls whose value moved off the zero state
	paths := make(map[string]bool)
	for _, ev := range events {
		paths[ev.path] = true
	}
	assert.True(t, paths["mass"])
	assert.True(t, paths["material::density"])
	// false equals the fresh switch state, so no event
	assert.False(t, paths["cast_shadows"])

	order, events = nil, nil
	require.True(t, f.SetValue("mass", 2.5))
	require.Equal(t, []event{{"mass", 2.5}}, events)
	assert.Equal(t, []string{"first", "second"}, order)

	// no event when the value does not actually change
	events = nil
	require.True(t, f.SetValue("mass", 2.5))
	require.True(t, f.SetValue("name", "chassis"))
	assert.Empty(t, events)

	// option maintenance is silent even when the selection moves
	require.True(t, f.AddEnumItem("shading", "EXTRA"))
	require.True(t, f.RemoveEnumItem("shading", "SMOOTH"))
	require.True(t, f.ClearEnumItems("shading"))
	assert.Empty(t, events)
}

func TestVisibility(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))

	assert.True(t, f.Visible("mass"))
	f.SetVisible("mass", false)
	assert.False(t, f.Visible("mass"))

	// wrapped controls defer to their collapsible
	assert.True(t, f.Visible("material::ambient"))
	f.SetVisible("material::ambient", false)
	assert.False(t, f.Visible("material::ambient"))
	cc := f.Control("material::ambient")
	assert.True(t, cc.AsBase().Visible(), "hiding should target the collapsible")

	assert.False(t, f.Visible("no::such::path"))
	f.SetVisible("no::such::path", true)
}

func TestGeometryEditing(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))

	var events []string
	f.OnChange(func(path string, value any) { events = append(events, path) })

	require.True(t, f.SetGeometryValue("geometry", "sphere", math64.V3(2.5, 0, 0), ""))
	typeName, dims, _ := f.GeometryValue("geometry")
	assert.Equal(t, "sphere", typeName)
	assert.Equal(t, 2.5, dims.X)
	assert.Equal(t, []string{"geometry"}, events)

	geom := testmsgs.Child(f.Msg().ProtoReflect(), "geometry")
	assert.Equal(t, "SPHERE", testmsgs.EnumName(geom, "type"))
	assert.Equal(t, 2.5, testmsgs.Double(testmsgs.Child(geom, "sphere"), "radius"))
	// the previous shape's data stays in the message
	size := testmsgs.Child(testmsgs.Child(geom, "box"), "size")
	assert.Equal(t, 1.0, testmsgs.Double(size, "x"))

	require.True(t, f.SetGeometryValue("geometry", "mesh", math64.V3(1, 1, 1), "file://chassis.dae"))
	typeName, dims, uri := f.GeometryValue("geometry")
	assert.Equal(t, "mesh", typeName)
	assert.True(t, dims.AlmostEqual(math64.V3(1, 1, 1), 1e-12))
	assert.Equal(t, "file://chassis.dae", uri)

	events = nil
	assert.False(t, f.SetGeometryValue("geometry", "torus", math64.V3(1, 1, 1), ""))
	assert.Empty(t, events)
	typeName, _, _ = f.GeometryValue("geometry")
	assert.Equal(t, "mesh", typeName)
}

func TestStringKinds(t *testing.T) {
	f := New()
	require.NoError(t, f.Load(buildVisual()))

	name, ok := f.Control("name").(*StringControl)
	require.True(t, ok)
	assert.Equal(t, StringLine, name.Kind)

	xml, ok := f.Control("innerxml").(*StringControl)
	require.True(t, ok)
	assert.Equal(t, StringText, xml.Kind)
	assert.Equal(t, "<plugin name='p'/>", xml.Field.Text)
}

func TestUnloadedForm(t *testing.T) {
	f := New()
	assert.Nil(t, f.Msg())
	assert.False(t, f.UpdateFromMsg(buildVisual()))
	assert.Error(t, f.Load(nil))
	assert.Nil(t, f.Value("mass"))
	assert.Equal(t, 0, f.ControlCount())
}
