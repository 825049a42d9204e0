// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"
	"log/slog"
)

// Styles is the color configuration of a [Form], indexed by message
// nesting level. A Form keeps its own deep copy of the styles it is
// given, so one Styles value can configure many forms without sharing.
type Styles struct {
	// BackgroundColors are the background colors of top-level controls
	// and collapsible headers by nesting level, cycled when deeper.
	BackgroundColors []string

	// WidgetColors are the widget face colors by nesting level, cycled.
	WidgetColors []string

	// RedColor is the accent color of warning styling.
	RedColor string

	// GreenColor is the accent color of active styling.
	GreenColor string

	// BlueColor is the accent color of selection styling.
	BlueColor string
}

// DefaultStyles returns the default style table.
func DefaultStyles() *Styles {
	return &Styles{
		BackgroundColors: []string{"#999999", "#777777", "#555555", "#333333"},
		WidgetColors:     []string{"#eeeeee", "#cccccc", "#aaaaaa", "#888888"},
		RedColor:         "#d42b22",
		GreenColor:       "#3bc43b",
		BlueColor:        "#0d0df2",
	}
}

// BackgroundColor returns the background color for the given nesting
// level, cycling through the configured colors.
func (st *Styles) BackgroundColor(level int) string {
	return cycleColor(st.BackgroundColors, level)
}

// WidgetColor returns the widget face color for the given nesting
// level, cycling through the configured colors.
func (st *Styles) WidgetColor(level int) string {
	return cycleColor(st.WidgetColors, level)
}

func cycleColor(list []string, level int) string {
	if len(list) == 0 {
		return ""
	}
	if level < 0 {
		level = 0
	}
	return list[level%len(list)]
}

// StyleSheet returns the style string of the given kind at the given
// nesting level. The kinds are "normal", "warning", and "active";
// unknown kinds log an error and return the normal style.
func (st *Styles) StyleSheet(kind string, level int) string {
	switch kind {
	case "normal":
		return fmt.Sprintf("background-color: %s; color: %s", st.BackgroundColor(level), st.WidgetColor(level))
	case "warning":
		return fmt.Sprintf("background-color: %s; color: %s", st.BackgroundColor(level), st.RedColor)
	case "active":
		return fmt.Sprintf("background-color: %s; color: %s", st.BackgroundColor(level), st.GreenColor)
	}
	slog.Error("form: unknown style sheet kind", "kind", kind)
	return st.StyleSheet("normal", level)
}
