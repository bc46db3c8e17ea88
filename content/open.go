// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default.toml
var defaultCatalog []byte

// Formats are the catalog file formats.
type Formats int32

const (
	// TOML is the default format.
	TOML Formats = iota

	// YAML is selected by the .yaml and .yml extensions.
	YAML
)

// FormatOf returns the format for the given file name, based on its extension.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("content: unsupported catalog format %q", filename)
}

// Default returns the built-in catalog.
// It panics if the embedded catalog is invalid.
func Default() *Catalog {
	return errors.Must1(Read(bytes.NewReader(defaultCatalog), TOML))
}

// Open reads and validates the catalog in the given file.
// A leading ~ in the file name is expanded to the home directory.
func Open(filename string) (*Catalog, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	ft, err := FormatOf(fn)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cat, err := Read(f, ft)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return cat, nil
}

// Read decodes a catalog in the given format and validates it.
// Unknown fields are rejected so that typos in hand-edited
// catalogs are reported instead of silently ignored.
func Read(r io.Reader, ft Formats) (*Catalog, error) {
	var fl file
	switch ft {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&fl); err != nil {
			return nil, err
		}
	default:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fl); err != nil {
			return nil, err
		}
	}
	return NewCatalog(fl.Name, fl.Topics, fl.Links...)
}

// Write encodes the catalog in the given format.
func Write(w io.Writer, cat *Catalog, ft Formats) error {
	fl := file{Name: cat.Name, Links: cat.Links(), Topics: cat.Topics()}
	switch ft {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&fl); err != nil {
			return err
		}
		return enc.Close()
	default:
		return toml.NewEncoder(w).Encode(&fl)
	}
}

// Save writes the catalog to the given file, in the format selected by
// its extension. A leading ~ in the file name is expanded to the home
// directory.
func Save(cat *Catalog, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	ft, err := FormatOf(fn)
	if err != nil {
		return err
	}
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err := Write(f, cat, ft); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fn, err)
	}
	return f.Close()
}
