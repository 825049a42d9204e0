// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides TOML reading and writing helpers
// using the pelletier/go-toml/v2 package.
package tomlx

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given filename using TOML encoding.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("tomlx.Open: %w", err)
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// Read reads the given object from the given reader using TOML encoding.
func Read(v any, reader io.Reader) error {
	dec := toml.NewDecoder(reader)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("tomlx.Read: %w", err)
	}
	return nil
}

// ReadBytes reads the given object from the given bytes using TOML encoding.
func ReadBytes(v any, b []byte) error {
	if err := toml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("tomlx.ReadBytes: %w", err)
	}
	return nil
}

// Save writes the given object to the given filename using TOML encoding.
func Save(v any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("tomlx.Save: %w", err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(v, bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given object to the given writer using TOML encoding.
func Write(v any, writer io.Writer) error {
	enc := toml.NewEncoder(writer)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("tomlx.Write: %w", err)
	}
	return nil
}

// WriteBytes writes the given object to bytes using TOML encoding.
func WriteBytes(v any) ([]byte, error) {
	b, err := toml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("tomlx.WriteBytes: %w", err)
	}
	return b, nil
}
