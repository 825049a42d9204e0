// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"

	"github.com/simforge/protoform/colors"
)

// ColorControl edits the r, g, b, a channels of a color with four
// [Spinner]s over [0, 1].
type ColorControl struct {
	ControlBase

	// R, G, B, A edit the color channels.
	R, G, B, A *Spinner
}

func newColorControl(key string, level int, st *Styles) *ColorControl {
	cc := &ColorControl{}
	cc.init(key, level, st)
	for _, sp := range []**Spinner{&cc.R, &cc.G, &cc.B, &cc.A} {
		*sp = &Spinner{Min: 0, Max: 1, Step: 0.1, Decimals: 2}
	}
	return cc
}

// SetValue sets the channel spinners from a [colors.Color] value.
func (cc *ColorControl) SetValue(v any) error {
	col, ok := v.(colors.Color)
	if !ok {
		return fmt.Errorf("form.ColorControl: cannot set %q to %v of type %T", cc.Key, v, v)
	}
	cc.R.SetValue(float64(col.R))
	cc.G.SetValue(float64(col.G))
	cc.B.SetValue(float64(col.B))
	cc.A.SetValue(float64(col.A))
	return nil
}

// Value returns the current [colors.Color] value.
func (cc *ColorControl) Value() any {
	return colors.NewColor(
		float32(cc.R.Value),
		float32(cc.G.Value),
		float32(cc.B.Value),
		float32(cc.A.Value),
	)
}
