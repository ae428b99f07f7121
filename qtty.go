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

package qtty

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"dirpx.dev/qtty/apis"
	"dirpx.dev/qtty/builder"
	"dirpx.dev/qtty/config"
	"dirpx.dev/qtty/definition"
	"dirpx.dev/qtty/dimension"
)

// init builds the process-wide System from the embedded unit listing.
// A listing that fails validation halts startup: no caller may ever observe
// a corrupt or partially populated table.
func init() {
	cfg := config.DefaultConfig()
	defs, err := definition.Default(cfg)
	if err != nil {
		panic(errors.Wrap(err, "qtty: embedded unit listing"))
	}
	s, err := NewSystem(cfg, defs)
	if err != nil {
		panic(errors.Wrap(err, "qtty: embedded unit table"))
	}
	// Publish once; there is no other writer.
	std.Store(s)
}

// std holds the process-wide System.
var std atomic.Pointer[System]

type (
	// UnitID is the permanent numeric code of a unit.
	UnitID = apis.UnitID
	// Descriptor is the immutable record for one unit.
	Descriptor = apis.Descriptor
	// UnknownUnitError reports a unit code absent from the table.
	UnknownUnitError = apis.UnknownUnitError
	// IncompatibleDimensionError reports units of different dimensions.
	IncompatibleDimensionError = apis.IncompatibleDimensionError
)

var (
	// ErrUnknownUnit matches every *UnknownUnitError.
	ErrUnknownUnit = apis.ErrUnknownUnit
	// ErrIncompatibleDimension matches every *IncompatibleDimensionError.
	ErrIncompatibleDimension = apis.ErrIncompatibleDimension
	// ErrNilTable is returned when a builder returns no table and no error.
	ErrNilTable = errors.New("qtty: builder returned nil table")
)

// System is an owned unit table together with the conversion engine and
// label resolver built over it. A System is immutable and safe for
// concurrent use.
type System struct {
	// cfg is the configuration the system was built with.
	cfg apis.Config
	// table is the frozen descriptor table.
	table apis.Table
	// conv is the conversion engine over table.
	conv apis.Converter
	// res resolves textual labels over table.
	res apis.Resolver
}

// NewSystem builds a System from defs. Options configure the builder (logging).
func NewSystem(cfg apis.Config, defs []apis.Definition, opts ...builder.Option) (*System, error) {
	return NewWithBuilder(builder.New(opts...), cfg, defs)
}

// NewWithBuilder builds a System using b.
func NewWithBuilder(b apis.Builder, cfg apis.Config, defs []apis.Definition) (*System, error) {
	t, err := b.BuildTable(cfg, defs)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNilTable
	}
	return &System{
		cfg:   cfg,
		table: t,
		conv:  b.BuildConverter(cfg, t),
		res:   b.BuildResolver(cfg, t),
	}, nil
}

// Default returns the process-wide System built from the embedded listing.
// Static quantities always convert through it.
func Default() *System {
	return std.Load()
}

// Config returns the configuration s was built with.
func (s *System) Config() apis.Config { return s.cfg }

// Table returns the read-only descriptor table.
func (s *System) Table() apis.Table { return s.table }

// Converter returns the conversion engine.
func (s *System) Converter() apis.Converter { return s.conv }

// Lookup returns the descriptor of id.
func (s *System) Lookup(id UnitID) (Descriptor, error) { return s.table.Lookup(id) }

// IsValid reports whether id is present in the table.
func (s *System) IsValid(id UnitID) bool { return s.table.IsValid(id) }

// DimensionOf returns the dimension of id.
func (s *System) DimensionOf(id UnitID) (dimension.ID, error) { return s.table.DimensionOf(id) }

// IsKnownDimension reports whether the table has a unit of d.
func (s *System) IsKnownDimension(d dimension.ID) bool { return s.table.IsKnownDimension(d) }

// NameOf returns the display name of id.
func (s *System) NameOf(id UnitID) (string, error) { return s.table.NameOf(id) }

// SymbolOf returns the display symbol of id.
func (s *System) SymbolOf(id UnitID) (string, error) { return s.table.SymbolOf(id) }

// Convert expresses value, given in src, in dst.
func (s *System) Convert(value float64, src, dst UnitID) (float64, error) {
	return s.conv.Convert(value, src, dst)
}

// Compatible reports whether a and b share a dimension.
func (s *System) Compatible(a, b UnitID) (bool, error) {
	return s.conv.Compatible(a, b)
}

// Parse resolves a label such as "km", "Kilometer", "kilometres" or "101".
func (s *System) Parse(label string) (UnitID, error) {
	if id, ok := s.res.Resolve(label, s.cfg); ok {
		return id, nil
	}
	return 0, errors.Wrapf(ErrUnknownUnit, "label %q", label)
}

// Lookup returns the descriptor of id in the default System.
func Lookup(id UnitID) (Descriptor, error) { return Default().Lookup(id) }

// IsValid reports whether id is present in the default System.
func IsValid(id UnitID) bool { return Default().IsValid(id) }

// DimensionOf returns the dimension of id in the default System.
func DimensionOf(id UnitID) (dimension.ID, error) { return Default().DimensionOf(id) }

// IsKnownDimension reports whether the default System has a unit of d.
func IsKnownDimension(d dimension.ID) bool { return Default().IsKnownDimension(d) }

// NameOf returns the display name of id in the default System.
func NameOf(id UnitID) (string, error) { return Default().NameOf(id) }

// SymbolOf returns the display symbol of id in the default System.
func SymbolOf(id UnitID) (string, error) { return Default().SymbolOf(id) }

// Convert converts through the default System.
func Convert(value float64, src, dst UnitID) (float64, error) {
	return Default().Convert(value, src, dst)
}

// Compatible reports dimensional compatibility in the default System.
func Compatible(a, b UnitID) (bool, error) { return Default().Compatible(a, b) }

// ParseUnit resolves a label in the default System.
func ParseUnit(label string) (UnitID, error) { return Default().Parse(label) }
