// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterials(t *testing.T) {
	mats := Materials()
	assert.Len(t, mats, 15)
	for i := 1; i < len(mats); i++ {
		assert.LessOrEqual(t, mats[i-1].Density, mats[i].Density)
	}

	// returned table is a copy
	mats[0].Density = -1
	assert.Equal(t, 75.0, Materials()[0].Density)
}

func TestNearest(t *testing.T) {
	m, ok := Nearest(1000, 1)
	assert.True(t, ok)
	assert.Equal(t, "Water", m.Name)

	m, ok = Nearest(1000.5, 1)
	assert.True(t, ok)
	assert.Equal(t, "Water", m.Name)

	// tolerance is a strict bound
	_, ok = Nearest(1001, 1)
	assert.False(t, ok)

	_, ok = Nearest(1180, 1)
	assert.False(t, ok)

	m, ok = Nearest(7869.5, 1)
	assert.True(t, ok)
	assert.Equal(t, "Iron", m.Name)
}

func TestByName(t *testing.T) {
	m, ok := ByName(Materials(), "water")
	assert.True(t, ok)
	assert.Equal(t, 1000.0, m.Density)

	_, ok = ByName(Materials(), "unobtainium")
	assert.False(t, ok)
}
