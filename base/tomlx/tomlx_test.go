// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name     string
	Density  float64
	Channels []string
}

func TestSaveOpen(t *testing.T) {
	cfg := testConfig{Name: "water", Density: 1000, Channels: []string{"r", "g", "b"}}
	fn := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Save(&cfg, fn))

	var got testConfig
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, cfg, got)

	assert.Error(t, Open(&got, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestBytes(t *testing.T) {
	cfg := testConfig{Name: "iron", Density: 7870}
	b, err := WriteBytes(&cfg)
	require.NoError(t, err)
	assert.Contains(t, string(b), "iron")

	var got testConfig
	require.NoError(t, ReadBytes(&got, b))
	assert.Equal(t, cfg, got)

	assert.Error(t, ReadBytes(&got, []byte("not [valid ( toml")))
}
