// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"google.golang.org/protobuf/proto"
)

// humanReadable returns the display label for the given field name:
// underscores become spaces and the first letter is capitalized.
func humanReadable(key string) string {
	if key == "" {
		return ""
	}
	s := strings.ReplaceAll(key, "_", " ")
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// unitFromKey returns the measurement unit label for well-known field
// names, or "" when none applies.
func unitFromKey(key string) string {
	switch key {
	case "mass":
		return "kg"
	case "density":
		return "kg/m³"
	case "pos", "length", "min_depth":
		return "m"
	case "rot":
		return "rad"
	case "kp", "kd":
		return "N/m"
	case "max_vel":
		return "m/s"
	}
	return ""
}

// rangeFromKey returns the editing range for well-known field names,
// with a wide default range.
func rangeFromKey(key string) (lo, hi float64) {
	lo, hi = -1e12, 1e12
	switch key {
	case "mass", "density", "length", "min_depth", "kp", "kd", "max_vel":
		lo = 0
	case "transparency", "bounce", "restitution_coefficient", "laser_retro":
		lo, hi = 0, 1
	}
	return
}

// toFloat64 converts any numeric Go value to a float64.
func toFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}

// toInt64 converts a signed integer control value to an int64,
// truncating floating point values.
func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case float64:
		return int64(t), true
	}
	return 0, false
}

// toUint64 converts an unsigned integer control value to a uint64,
// clamping negative values to zero.
func toUint64(v any) (uint64, bool) {
	switch t := v.(type) {
	case uint64:
		return t, true
	case uint:
		return uint64(t), true
	case uint32:
		return uint64(t), true
	case int:
		if t < 0 {
			return 0, true
		}
		return uint64(t), true
	case int64:
		if t < 0 {
			return 0, true
		}
		return uint64(t), true
	case float64:
		if t < 0 {
			return 0, true
		}
		return uint64(t), true
	}
	return 0, false
}

// valuesEqual compares two control values, using protobuf equality
// for message values.
func valuesEqual(a, b any) bool {
	am, aok := a.(proto.Message)
	bm, bok := b.(proto.Message)
	if aok || bok {
		return aok && bok && proto.Equal(am, bm)
	}
	return reflect.DeepEqual(a, b)
}
