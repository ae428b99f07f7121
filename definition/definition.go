/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package definition reads unit listings, the external source the unit
// descriptor table is populated from.
//
// A listing carries a semver schema version and one row per unit:
//
//	schema: "1.0.0"
//	units:
//	  - {code: 101, dimension: length, name: Kilometer, symbol: km, ratio: 1000}
//
// TOML listings use the same keys with [[units]] tables. The default
// listing is embedded in the binary and returned by Default.
package definition

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"dirpx.dev/qtty/apis"
	"dirpx.dev/qtty/config"
)

// Format names a listing encoding.
type Format string

const (
	// FormatYAML is a YAML listing (.yaml, .yml).
	FormatYAML Format = "yaml"
	// FormatTOML is a TOML listing (.toml).
	FormatTOML Format = "toml"
)

var (
	// ErrInvalidDefinition marks every listing that cannot be decoded.
	ErrInvalidDefinition = errors.New("qtty(definition): invalid unit listing")
	// ErrUnsupportedFormat is returned for unknown listing encodings.
	ErrUnsupportedFormat = errors.New("qtty(definition): unsupported listing format")
	// ErrSchemaMismatch is returned when a listing's schema version
	// does not satisfy the configured constraint.
	ErrSchemaMismatch = errors.New("qtty(definition): schema version not accepted")
)

//go:embed units.yaml
var defaultListing []byte

// document is the decoded form of a listing.
type document struct {
	Schema string `yaml:"schema" toml:"schema"`
	Units  []row  `yaml:"units" toml:"units"`
}

// row is one unit entry of a listing.
type row struct {
	Code      uint32   `yaml:"code" toml:"code"`
	Dimension string   `yaml:"dimension" toml:"dimension"`
	Name      string   `yaml:"name" toml:"name"`
	Symbol    string   `yaml:"symbol" toml:"symbol"`
	Ratio     Ratio    `yaml:"ratio" toml:"ratio"`
	Aliases   []string `yaml:"aliases" toml:"aliases"`
}

// Default returns the embedded listing.
func Default(cfg apis.Config) ([]apis.Definition, error) {
	return Parse(defaultListing, FormatYAML, cfg)
}

// FormatOf infers the listing format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", path)
	}
}

// Load reads and parses the listing at path.
func Load(path string, cfg apis.Config) ([]apis.Definition, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read unit listing %s", path)
	}
	defs, err := Parse(data, format, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return defs, nil
}

// Parse decodes a listing and checks its schema version against
// cfg.SchemaConstraint. Rows are returned in listing order; semantic
// validation (duplicates, ratios, dimensions) is left to the table builder.
func Parse(data []byte, format Format, cfg apis.Config) ([]apis.Definition, error) {
	var doc document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "decode YAML listing"), ErrInvalidDefinition)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "decode TOML listing"), ErrInvalidDefinition)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Mark(errors.Newf("unknown key %q in TOML listing", undecoded[0].String()), ErrInvalidDefinition)
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}

	if err := checkSchema(doc.Schema, cfg.SchemaConstraint); err != nil {
		return nil, err
	}

	defs := make([]apis.Definition, 0, len(doc.Units))
	for _, r := range doc.Units {
		defs = append(defs, apis.Definition{
			Code:      apis.UnitID(r.Code),
			Dimension: r.Dimension,
			Name:      r.Name,
			Symbol:    r.Symbol,
			Ratio:     float64(r.Ratio),
			Aliases:   r.Aliases,
		})
	}
	return defs, nil
}

func checkSchema(schema, constraint string) error {
	if strings.TrimSpace(constraint) == "" {
		constraint = config.DefaultSchemaConstraint
	}
	if schema == "" {
		return errors.WithHint(
			errors.Mark(errors.New("listing has no schema version"), ErrInvalidDefinition),
			`add a top-level "schema" key, e.g. schema: "1.0.0"`,
		)
	}
	v, err := semver.NewVersion(schema)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "schema version %q", schema), ErrInvalidDefinition)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "schema constraint %q", constraint)
	}
	if !c.Check(v) {
		return errors.Wrapf(ErrSchemaMismatch, "schema %s does not satisfy %q", v, constraint)
	}
	return nil
}
