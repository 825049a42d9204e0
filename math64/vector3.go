// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math64 provides float64 vector, quaternion, and pose types
// for 3D spatial values carried by form controls.
package math64

import "math"

// Vector3 is a 3D vector or point with X, Y, Z components.
type Vector3 struct {
	X, Y, Z float64
}

// V3 returns a new [Vector3] with the given x, y, z components.
func V3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Add adds the other vector to this one and returns the result.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub subtracts the other vector from this one and returns the result.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// MulScalar multiplies each component by the given scalar
// and returns the result.
func (v Vector3) MulScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the length of the vector.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// AlmostEqual returns whether the vector is within the given
// tolerance of the other vector on every component.
func (v Vector3) AlmostEqual(o Vector3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol &&
		math.Abs(v.Y-o.Y) <= tol &&
		math.Abs(v.Z-o.Z) <= tol
}
