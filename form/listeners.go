// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

// ChangeFunc is a listener function called with a control's scope path
// and its new value after the value has changed.
type ChangeFunc func(path string, value any)

// Listeners is an ordered list of value change listeners.
type Listeners []ChangeFunc

// Add adds a listener function.
func (ls *Listeners) Add(fn ChangeFunc) {
	*ls = append(*ls, fn)
}

// Send calls each listener with the given path and value, in the order
// they were added.
func (ls Listeners) Send(path string, value any) {
	for _, fn := range ls {
		fn(path, value)
	}
}
