// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"

	"github.com/simforge/protoform/math64"
)

// Vector3Control edits an x, y, z vector with three [Spinner]s.
type Vector3Control struct {
	ControlBase

	// X, Y, Z edit the vector components.
	X, Y, Z *Spinner
}

func newVector3Control(key string, level int, st *Styles) *Vector3Control {
	vc := &Vector3Control{}
	vc.init(key, level, st)
	lo, hi := rangeFromKey(key)
	for _, sp := range []**Spinner{&vc.X, &vc.Y, &vc.Z} {
		*sp = &Spinner{Min: lo, Max: hi, Step: 0.1, Decimals: 6}
	}
	return vc
}

// SetValue sets the spinners from a [math64.Vector3] value.
func (vc *Vector3Control) SetValue(v any) error {
	vec, ok := v.(math64.Vector3)
	if !ok {
		return fmt.Errorf("form.Vector3Control: cannot set %q to %v of type %T", vc.Key, v, v)
	}
	vc.X.SetValue(vec.X)
	vc.Y.SetValue(vec.Y)
	vc.Z.SetValue(vec.Z)
	return nil
}

// Value returns the current [math64.Vector3] value.
func (vc *Vector3Control) Value() any {
	return math64.V3(vc.X.Value, vc.Y.Value, vc.Z.Value)
}
