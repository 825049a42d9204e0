// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// EnumControl edits one enum field with a [Chooser] over the enum's
// value names, in declaration order. The option list can be maintained
// at runtime through [Form.AddEnumItem] and friends.
type EnumControl struct {
	ControlBase

	// Chooser selects among the option names.
	Chooser *Chooser
}

func newEnumControl(key string, items []string, level int, st *Styles) *EnumControl {
	ec := &EnumControl{Chooser: NewChooser(items...)}
	ec.init(key, level, st)
	return ec
}

// enumItems returns the value names of the given enum descriptor,
// in declaration order.
func enumItems(ed protoreflect.EnumDescriptor) []string {
	values := ed.Values()
	items := make([]string, values.Len())
	for i := range items {
		items[i] = string(values.Get(i).Name())
	}
	return items
}

// SetValue selects the option with the given string value, erroring if
// it is not among the options.
func (ec *EnumControl) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("form.EnumControl: cannot set %q to %v of type %T", ec.Key, v, v)
	}
	if !ec.Chooser.SetCurrentText(s) {
		return fmt.Errorf("form.EnumControl: %q has no option %q", ec.Key, s)
	}
	return nil
}

// Value returns the current option text as a string.
func (ec *EnumControl) Value() any {
	return ec.Chooser.CurrentText()
}
