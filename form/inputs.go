// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"math"
	"slices"
)

// Spinner is a numeric input with range, step, and precision
// constraints, the headless counterpart of a spin box.
type Spinner struct {
	// Value is the current value.
	Value float64

	// Min and Max bound the value; [Spinner.SetValue] clamps into this range.
	Min float64
	Max float64

	// Step is the increment hint for front ends.
	Step float64

	// Decimals is the display precision hint for front ends.
	Decimals int
}

// SetValue sets the value, clamped into [Min, Max].
// NaN is stored as given.
func (sp *Spinner) SetValue(v float64) {
	if !math.IsNaN(v) {
		v = min(max(v, sp.Min), sp.Max)
	}
	sp.Value = v
}

// TextField is a text input holding a string value.
type TextField struct {
	// Text is the current text.
	Text string
}

// SetText sets the current text.
func (tf *TextField) SetText(text string) {
	tf.Text = text
}

// Chooser is an option selector: one current choice from an ordered
// list of items. Adding the first item makes it current.
type Chooser struct {
	// Items are the available options, in order.
	Items []string

	// Index is the index of the current item in Items, or -1 for none.
	Index int
}

// NewChooser returns a new [Chooser] with the given items.
// The first item, if any, becomes current.
func NewChooser(items ...string) *Chooser {
	ch := &Chooser{Items: items, Index: -1}
	if len(items) > 0 {
		ch.Index = 0
	}
	return ch
}

// CurrentText returns the text of the current item, or "" if there is none.
func (ch *Chooser) CurrentText() string {
	if ch.Index < 0 || ch.Index >= len(ch.Items) {
		return ""
	}
	return ch.Items[ch.Index]
}

// SetCurrentText selects the item with the given text, returning false
// if it is not in the list.
func (ch *Chooser) SetCurrentText(text string) bool {
	i := slices.Index(ch.Items, text)
	if i < 0 {
		return false
	}
	ch.Index = i
	return true
}

// AddItem appends an item to the list, making it current if the list
// was empty.
func (ch *Chooser) AddItem(text string) {
	ch.Items = append(ch.Items, text)
	if ch.Index < 0 {
		ch.Index = 0
	}
}

// RemoveItem removes the first item with the given text, returning
// false if it is not in the list. If the current item is removed, the
// selection moves to the item now at its index, or the last item.
func (ch *Chooser) RemoveItem(text string) bool {
	i := slices.Index(ch.Items, text)
	if i < 0 {
		return false
	}
	ch.Items = slices.Delete(ch.Items, i, i+1)
	switch {
	case len(ch.Items) == 0:
		ch.Index = -1
	case i < ch.Index:
		ch.Index--
	case ch.Index >= len(ch.Items):
		ch.Index = len(ch.Items) - 1
	}
	return true
}

// Clear removes all items, leaving nothing selected.
func (ch *Chooser) Clear() {
	ch.Items = nil
	ch.Index = -1
}

// Switch is a boolean toggle input.
type Switch struct {
	// Checked is the current state.
	Checked bool
}

// SetChecked sets the current state.
func (sw *Switch) SetChecked(on bool) {
	sw.Checked = on
}
