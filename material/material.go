// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material provides a table of common material densities,
// used by density form controls to offer named presets.
package material

import (
	"slices"
	"strings"
)

// Material is a named material with a density in kg/m³.
type Material struct {
	// Name is the display name of the material.
	Name string

	// Density is the density in kg/m³.
	Density float64
}

// materials is the default preset table, ordered by ascending density.
var materials = []Material{
	{"Styrofoam", 75},
	{"Pine", 373},
	{"Wood", 700},
	{"Oak", 710},
	{"Ice", 916},
	{"Water", 1000},
	{"Plastic", 1175},
	{"Concrete", 2000},
	{"Aluminum", 2700},
	{"Steel alloy", 7600},
	{"Stainless steel", 7800},
	{"Iron", 7870},
	{"Brass", 8600},
	{"Copper", 8940},
	{"Tungsten", 19300},
}

// Materials returns a copy of the default material preset table,
// ordered by ascending density.
func Materials() []Material {
	return slices.Clone(materials)
}

// Nearest returns the material in the default table whose density is
// nearest to the given value, if its distance is strictly within the
// given tolerance. The second return value reports whether one was found.
func Nearest(density, tolerance float64) (Material, bool) {
	return NearestIn(materials, density, tolerance)
}

// NearestIn returns the material in the given table whose density is
// nearest to the given value, if its distance is strictly within the
// given tolerance.
func NearestIn(table []Material, density, tolerance float64) (Material, bool) {
	var nearest Material
	found := false
	min := tolerance
	for _, m := range table {
		diff := density - m.Density
		if diff < 0 {
			diff = -diff
		}
		if diff < min {
			min = diff
			nearest = m
			found = true
		}
	}
	return nearest, found
}

// ByName returns the material in the given table with the given name,
// compared case-insensitively.
func ByName(table []Material, name string) (Material, bool) {
	for _, m := range table {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Material{}, false
}
