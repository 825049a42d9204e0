// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import "fmt"

// BoolControl edits one bool field with a [Switch].
type BoolControl struct {
	ControlBase

	// Switch edits the value.
	Switch *Switch
}

func newBoolControl(key string, level int, st *Styles) *BoolControl {
	bc := &BoolControl{Switch: &Switch{}}
	bc.init(key, level, st)
	return bc
}

// SetValue sets the switch state from a bool value.
func (bc *BoolControl) SetValue(v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("form.BoolControl: cannot set %q to %v of type %T", bc.Key, v, v)
	}
	bc.Switch.SetChecked(b)
	return nil
}

// Value returns the switch state as a bool.
func (bc *BoolControl) Value() any {
	return bc.Switch.Checked
}
