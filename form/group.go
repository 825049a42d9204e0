// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import "fmt"

// GroupControl holds the controls of a nested message that has no
// specialized control, as a plain sub-frame. It has no value of its
// own; its children are registered under their own scope paths.
type GroupControl struct {
	ControlBase

	// Frame contains the child controls.
	Frame *Frame
}

func newGroupControl(key string, level int, frame *Frame, st *Styles) *GroupControl {
	g := &GroupControl{Frame: frame}
	g.init(key, level, st)
	return g
}

// SetValue returns an error: a group has no value of its own.
func (g *GroupControl) SetValue(v any) error {
	return fmt.Errorf("form.GroupControl: %q has no value", g.Key)
}

// Value returns nil: a group has no value of its own.
func (g *GroupControl) Value() any {
	return nil
}
