// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import "math"

// Quaternion is a rotation in 3D space, with W as the scalar component.
// The zero value is not a valid rotation; use [QIdentity] for no rotation.
type Quaternion struct {
	X, Y, Z, W float64
}

// QIdentity returns the identity quaternion (no rotation).
func QIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// NewQuaternionEuler returns a quaternion from the given roll, pitch,
// and yaw angles in radians: intrinsic rotations about the body X, Y,
// and Z axes, applied yaw first, then pitch, then roll. This is the
// usual mobile-robotics convention.
func NewQuaternionEuler(roll, pitch, yaw float64) Quaternion {
	phi, the, psi := roll/2, pitch/2, yaw/2
	sphi, cphi := math.Sincos(phi)
	sthe, cthe := math.Sincos(the)
	spsi, cpsi := math.Sincos(psi)
	return Quaternion{
		X: sphi*cthe*cpsi - cphi*sthe*spsi,
		Y: cphi*sthe*cpsi + sphi*cthe*spsi,
		Z: cphi*cthe*spsi - sphi*sthe*cpsi,
		W: cphi*cthe*cpsi + sphi*sthe*spsi,
	}
}

// Euler returns the roll, pitch, and yaw angles in radians that
// correspond to this quaternion, in the convention of
// [NewQuaternionEuler]. At the pitch singularity (pitch = ±π/2),
// pitch is clamped and roll/yaw share one degree of freedom.
func (q Quaternion) Euler() (roll, pitch, yaw float64) {
	roll = math.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))
	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}
	yaw = math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))
	return
}

// Length returns the length (norm) of the quaternion.
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalized returns the quaternion scaled to unit length.
// A zero quaternion normalizes to the identity.
func (q Quaternion) Normalized() Quaternion {
	l := q.Length()
	if l == 0 {
		return QIdentity()
	}
	return Quaternion{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// AlmostEqual returns whether the quaternion is within the given
// tolerance of the other quaternion on every component.
func (q Quaternion) AlmostEqual(o Quaternion, tol float64) bool {
	return math.Abs(q.X-o.X) <= tol &&
		math.Abs(q.Y-o.Y) <= tol &&
		math.Abs(q.Z-o.Z) <= tol &&
		math.Abs(q.W-o.W) <= tol
}
