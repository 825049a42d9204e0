// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"

	"github.com/simforge/protoform/material"
)

// customMaterialLabel is the trailing preset entry selected when the
// density matches no named material.
const customMaterialLabel = "Custom..."

// presetTolerance is how close a density must be to a preset, strictly,
// for the preset to be selected.
const presetTolerance = 1.0

// DensityControl edits a density with a material preset [Chooser] and
// an exact-value [Spinner]. Setting a value selects the nearest preset
// within [presetTolerance], or the trailing custom entry.
type DensityControl struct {
	ControlBase

	// Presets selects a named material; the last entry is the custom marker.
	Presets *Chooser

	// Spinner edits the exact density in kg/m³.
	Spinner *Spinner

	// Unit is the density unit label.
	Unit string

	// materials is the preset table backing Presets.
	materials []material.Material

	// density is the current value.
	density float64
}

func newDensityControl(key string, level int, st *Styles, mats []material.Material) *DensityControl {
	dc := &DensityControl{materials: mats}
	dc.init(key, level, st)
	items := make([]string, 0, len(mats)+1)
	for _, m := range mats {
		items = append(items, m.Name)
	}
	items = append(items, customMaterialLabel)
	dc.Presets = NewChooser(items...)
	lo, hi := rangeFromKey("density")
	dc.Spinner = &Spinner{Min: lo, Max: hi, Step: 0.1, Decimals: 1}
	dc.Unit = unitFromKey("density")
	dc.SetDensity(1)
	return dc
}

// SetDensity sets the density, aligning the preset chooser and spinner.
func (dc *DensityControl) SetDensity(density float64) {
	dc.density = density
	if m, ok := material.NearestIn(dc.materials, density, presetTolerance); ok {
		dc.Presets.SetCurrentText(m.Name)
	} else {
		dc.Presets.SetCurrentText(customMaterialLabel)
	}
	dc.Spinner.SetValue(density)
}

// Density returns the current density.
func (dc *DensityControl) Density() float64 {
	return dc.density
}

// SetValue sets the density; it accepts any numeric Go type.
func (dc *DensityControl) SetValue(v any) error {
	f, ok := toFloat64(v)
	if !ok {
		return fmt.Errorf("form.DensityControl: cannot set %q to %v of type %T", dc.Key, v, v)
	}
	dc.SetDensity(f)
	return nil
}

// Value returns the current density as a float64.
func (dc *DensityControl) Value() any {
	return dc.density
}
