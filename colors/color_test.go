// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	c := NewColor(1.5, -0.25, 0.5, 2)
	assert.Equal(t, Color{1, 0, 0.5, 1}, c.Clamp())
	assert.Equal(t, White, White.Clamp())
}

func TestAlmostEqual(t *testing.T) {
	c := NewColor(0.1, 0.2, 0.3, 1)
	assert.True(t, c.AlmostEqual(NewColor(0.1, 0.2, 0.3, 1), 0))
	assert.True(t, c.AlmostEqual(NewColor(0.1001, 0.2, 0.3, 1), 0.001))
	assert.False(t, c.AlmostEqual(Black, 0.001))
}
