// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import "fmt"

// StringKinds are the presentation kinds of a [StringControl].
type StringKinds int32

const (
	// StringLine presents a single-line editor.
	StringLine StringKinds = iota

	// StringText presents a multi-line editor.
	StringText
)

func (sk StringKinds) String() string {
	if sk == StringText {
		return "Text"
	}
	return "Line"
}

// stringKindForKey returns the presentation for the given field name:
// fields named innerxml hold embedded markup and get a multi-line editor.
func stringKindForKey(key string) StringKinds {
	if key == "innerxml" {
		return StringText
	}
	return StringLine
}

// StringControl edits one string field with a [TextField].
type StringControl struct {
	ControlBase

	// Kind is the presentation of the editor.
	Kind StringKinds

	// Field holds the text.
	Field *TextField
}

func newStringControl(key string, level int, st *Styles) *StringControl {
	sc := &StringControl{Kind: stringKindForKey(key), Field: &TextField{}}
	sc.init(key, level, st)
	return sc
}

// SetValue sets the text from a string value.
func (sc *StringControl) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("form.StringControl: cannot set %q to %v of type %T", sc.Key, v, v)
	}
	sc.Field.SetText(s)
	return nil
}

// Value returns the text as a string.
func (sc *StringControl) Value() any {
	return sc.Field.Text
}
