// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings loads and saves form engine configuration: the
// style table applied to control trees and the material preset table
// offered by density controls. Configurations live in TOML files and
// can be watched for on-disk changes.
package settings

import (
	"github.com/simforge/protoform/base/tomlx"
	"github.com/simforge/protoform/form"
	"github.com/simforge/protoform/material"
)

// Config is the persisted form engine configuration.
type Config struct {
	// Styles colors the control trees built from messages.
	Styles form.Styles

	// Materials is the density preset table, ordered by ascending density.
	Materials []material.Material
}

// Defaults returns a config holding the built-in styles and material
// presets.
func Defaults() *Config {
	return &Config{
		Styles:    *form.DefaultStyles(),
		Materials: material.Materials(),
	}
}

// Options returns the form options carried by the config, for passing
// to [form.New].
func (cfg *Config) Options() []form.Option {
	return []form.Option{
		form.WithStyles(&cfg.Styles),
		form.WithMaterials(cfg.Materials),
	}
}

// Open reads the config in the given TOML file. Sections absent from
// the file keep their default values.
func Open(path string) (*Config, error) {
	cfg := &Config{}
	if err := tomlx.Open(cfg, path); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults fills zero-valued sections from the built-in defaults.
func (cfg *Config) fillDefaults() {
	def := Defaults()
	st, defst := &cfg.Styles, &def.Styles
	if len(st.BackgroundColors) == 0 {
		st.BackgroundColors = defst.BackgroundColors
	}
	if len(st.WidgetColors) == 0 {
		st.WidgetColors = defst.WidgetColors
	}
	if st.RedColor == "" {
		st.RedColor = defst.RedColor
	}
	if st.GreenColor == "" {
		st.GreenColor = defst.GreenColor
	}
	if st.BlueColor == "" {
		st.BlueColor = defst.BlueColor
	}
	if cfg.Materials == nil {
		cfg.Materials = def.Materials
	}
}

// Save writes the config to the given TOML file.
func Save(cfg *Config, path string) error {
	return tomlx.Save(cfg, path)
}
