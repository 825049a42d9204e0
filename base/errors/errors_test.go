// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	err := New("test error")
	assert.Equal(t, err, Log(err))
	assert.NoError(t, Log(nil))

	v := Log1(42, err)
	assert.Equal(t, 42, v)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, "x", Must1("x", nil))
}

func TestWrapping(t *testing.T) {
	base := New("base")
	joined := Join(base, New("other"))
	assert.True(t, Is(joined, base))
	assert.NoError(t, Unwrap(base))
	assert.Equal(t, 1, Ignore1(1, base))
}
