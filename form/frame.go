// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

// Frame is an ordered container of controls, produced by a build walk.
// Nested messages appear as [Collapsible] children holding their own
// sub-frames.
type Frame struct {
	// Children are the contained controls, in field declaration order.
	Children []Control
}

// Add appends a control to the frame.
func (fr *Frame) Add(c Control) {
	fr.Children = append(fr.Children, c)
}

// Len returns the number of direct children.
func (fr *Frame) Len() int {
	if fr == nil {
		return 0
	}
	return len(fr.Children)
}

// Walk calls fn for every control in the frame, descending into
// [Collapsible] and [GroupControl] children, in order.
func (fr *Frame) Walk(fn func(c Control)) {
	if fr == nil {
		return
	}
	for _, c := range fr.Children {
		walkControl(c, fn)
	}
}

func walkControl(c Control, fn func(c Control)) {
	fn(c)
	switch t := c.(type) {
	case *Collapsible:
		if t.Child != nil {
			walkControl(t.Child, fn)
		}
	case *GroupControl:
		t.Frame.Walk(fn)
	}
}
