// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

// Pose is a position and an orientation in 3D space.
type Pose struct {
	// Pos is the position.
	Pos Vector3

	// Rot is the orientation.
	Rot Quaternion
}

// NewPose returns a new [Pose] with the given position and orientation.
func NewPose(pos Vector3, rot Quaternion) Pose {
	return Pose{Pos: pos, Rot: rot}
}

// NewPoseEuler returns a new [Pose] from a position and roll, pitch,
// yaw angles in radians (see [NewQuaternionEuler]).
func NewPoseEuler(x, y, z, roll, pitch, yaw float64) Pose {
	return Pose{Pos: V3(x, y, z), Rot: NewQuaternionEuler(roll, pitch, yaw)}
}

// AlmostEqual returns whether the pose is within the given tolerance
// of the other pose on every position and orientation component.
func (p Pose) AlmostEqual(o Pose, tol float64) bool {
	return p.Pos.AlmostEqual(o.Pos, tol) && p.Rot.AlmostEqual(o.Rot, tol)
}
