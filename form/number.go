// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"
	"math"
)

// NumberKinds are the numeric families a [NumberControl] can edit.
type NumberKinds int32

const (
	// NumberDouble edits floating point fields.
	NumberDouble NumberKinds = iota

	// NumberInt edits signed integer fields.
	NumberInt

	// NumberUint edits unsigned integer fields.
	NumberUint
)

func (nk NumberKinds) String() string {
	switch nk {
	case NumberInt:
		return "Int"
	case NumberUint:
		return "Uint"
	}
	return "Double"
}

// NumberControl edits one numeric field with a [Spinner]. The spinner
// range comes from [rangeFromKey]; unsigned kinds never go below zero.
type NumberControl struct {
	ControlBase

	// Kind is the numeric family of the bound field.
	Kind NumberKinds

	// Unit is the measurement unit label for the field, if known.
	Unit string

	// Spinner edits the value.
	Spinner *Spinner
}

func newNumberControl(key string, kind NumberKinds, level int, st *Styles) *NumberControl {
	nc := &NumberControl{Kind: kind}
	nc.init(key, level, st)
	lo, hi := rangeFromKey(key)
	step, dec := 0.1, 6
	if kind != NumberDouble {
		step, dec = 1, 0
	}
	if kind == NumberUint && lo < 0 {
		lo = 0
	}
	nc.Spinner = &Spinner{Min: lo, Max: hi, Step: step, Decimals: dec}
	nc.Unit = unitFromKey(key)
	return nc
}

// SetValue sets the spinner value; it accepts any numeric Go type.
func (nc *NumberControl) SetValue(v any) error {
	f, ok := toFloat64(v)
	if !ok {
		return fmt.Errorf("form.NumberControl: cannot set %q to %v of type %T", nc.Key, v, v)
	}
	nc.Spinner.SetValue(f)
	return nil
}

// Value returns a float64 for [NumberDouble], an int64 for [NumberInt],
// and a uint64 for [NumberUint].
func (nc *NumberControl) Value() any {
	v := nc.Spinner.Value
	switch nc.Kind {
	case NumberInt:
		if math.IsNaN(v) {
			return int64(0)
		}
		return int64(v)
	case NumberUint:
		if math.IsNaN(v) || v < 0 {
			return uint64(0)
		}
		return uint64(v)
	}
	return v
}
