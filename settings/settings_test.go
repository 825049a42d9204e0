// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simforge/protoform/form"
	"github.com/simforge/protoform/material"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, *form.DefaultStyles(), cfg.Styles)
	assert.Equal(t, material.Materials(), cfg.Materials)
	assert.Len(t, cfg.Options(), 2)
}

func TestSaveOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protoform.toml")
	cfg := Defaults()
	cfg.Styles.RedColor = "#ff0000"
	cfg.Materials = append(cfg.Materials, material.Material{Name: "Lead", Density: 11340})
	require.NoError(t, Save(cfg, path))

	got, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestOpenPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protoform.toml")
	data := `
[Styles]
RedColor = '#aa0000'

[[Materials]]
Name = 'Lead'
Density = 11340.0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0666))

	cfg, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "#aa0000", cfg.Styles.RedColor)
	assert.Equal(t, form.DefaultStyles().GreenColor, cfg.Styles.GreenColor)
	assert.Equal(t, form.DefaultStyles().BackgroundColors, cfg.Styles.BackgroundColors)
	assert.Equal(t, []material.Material{{Name: "Lead", Density: 11340}}, cfg.Materials)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protoform.toml")
	require.NoError(t, Save(Defaults(), path))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	cfg := Defaults()
	cfg.Styles.RedColor = "#123456"
	require.NoError(t, Save(cfg, path))

	deadline := time.After(10 * time.Second)
	for {
		select {
		case got := <-w.C:
			if got.Styles.RedColor == "#123456" {
				w.Close()
				w.Close() // closing again is a no-op
				return
			}
		case <-deadline:
			t.Fatal("no reloaded config delivered")
		}
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "missing", "protoform.toml"))
	assert.Error(t, err)
}
