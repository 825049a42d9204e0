// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"

	"github.com/simforge/protoform/math64"
)

// PoseControl edits a position and orientation with six [Spinner]s:
// position x, y, z, and orientation roll, pitch, yaw in radians. The
// quaternion of the edited message is rebuilt from the Euler angles on
// write-back.
type PoseControl struct {
	ControlBase

	// X, Y, Z edit the position.
	X, Y, Z *Spinner

	// Roll, Pitch, Yaw edit the orientation Euler angles in radians.
	Roll, Pitch, Yaw *Spinner
}

func newPoseControl(key string, level int, st *Styles) *PoseControl {
	pc := &PoseControl{}
	pc.init(key, level, st)
	lo, hi := rangeFromKey(key)
	for _, sp := range []**Spinner{&pc.X, &pc.Y, &pc.Z, &pc.Roll, &pc.Pitch, &pc.Yaw} {
		*sp = &Spinner{Min: lo, Max: hi, Step: 0.1, Decimals: 6}
	}
	return pc
}

// SetValue sets the spinners from a [math64.Pose] value, converting
// the orientation to Euler angles.
func (pc *PoseControl) SetValue(v any) error {
	pose, ok := v.(math64.Pose)
	if !ok {
		return fmt.Errorf("form.PoseControl: cannot set %q to %v of type %T", pc.Key, v, v)
	}
	pc.X.SetValue(pose.Pos.X)
	pc.Y.SetValue(pose.Pos.Y)
	pc.Z.SetValue(pose.Pos.Z)
	roll, pitch, yaw := pose.Rot.Euler()
	pc.Roll.SetValue(roll)
	pc.Pitch.SetValue(pitch)
	pc.Yaw.SetValue(yaw)
	return nil
}

// Value returns the current [math64.Pose] value, with the orientation
// built from the Euler angle spinners.
func (pc *PoseControl) Value() any {
	return math64.NewPoseEuler(
		pc.X.Value, pc.Y.Value, pc.Z.Value,
		pc.Roll.Value, pc.Pitch.Value, pc.Yaw.Value,
	)
}
