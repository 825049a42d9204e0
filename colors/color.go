// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides a float32 channel color type matching the
// red, green, blue, alpha message fields edited by color form controls.
package colors

import "github.com/chewxy/math32"

// Color is an RGBA color with float32 channels nominally in [0, 1].
// The zero value is fully transparent black.
type Color struct {
	R, G, B, A float32
}

// Standard colors.
var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// NewColor returns a new [Color] with the given channel values.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// Clamp returns the color with every channel clamped to [0, 1].
func (c Color) Clamp() Color {
	cl := func(v float32) float32 {
		return math32.Min(1, math32.Max(0, v))
	}
	return Color{cl(c.R), cl(c.G), cl(c.B), cl(c.A)}
}

// AlmostEqual returns whether the color is within the given tolerance
// of the other color on every channel.
func (c Color) AlmostEqual(o Color, tol float32) bool {
	return math32.Abs(c.R-o.R) <= tol &&
		math32.Abs(c.G-o.G) <= tol &&
		math32.Abs(c.B-o.B) <= tol &&
		math32.Abs(c.A-o.A) <= tol
}
