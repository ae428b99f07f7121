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

package registry

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"dirpx.dev/qtty/apis"
	"dirpx.dev/qtty/dimension"
)

// ErrInvalidTable marks every rejection produced by New.
var ErrInvalidTable = errors.New("qtty(registry): invalid unit table")

// New validates defs and freezes them into an apis.Table.
//
// It rejects: zero or duplicate codes, unknown dimension names, empty names
// or symbols, ratios that are not positive and finite, and labels (name,
// symbol, alias) claimed by two units. With cfg.RequireBaseUnit it also
// rejects any dimension without a unit of ratio exactly 1.
//
// No mutation is exposed on the result, so it is safe for concurrent use.
func New(cfg apis.Config, defs []apis.Definition) (apis.Table, error) {
	t := &table{
		byID:    make(map[apis.UnitID]apis.Descriptor, len(defs)),
		aliases: make(map[apis.UnitID][]string),
		dims:    make(map[dimension.ID]int),
	}
	// labels maps every name, symbol and alias to its owner.
	labels := make(map[string]apis.UnitID, len(defs)*3)
	claim := func(label string, id apis.UnitID) error {
		if owner, ok := labels[label]; ok && owner != id {
			return invalid("unit %d: label %q already used by unit %d", id, label, owner)
		}
		labels[label] = id
		return nil
	}

	for _, d := range defs {
		if d.Code == 0 {
			return nil, invalid("unit %q: code 0 is reserved", d.Name)
		}
		if _, dup := t.byID[d.Code]; dup {
			return nil, errors.WithHint(
				invalid("unit %d (%s): duplicate code", d.Code, d.Name),
				"unit codes are permanent; give the new unit an unused code",
			)
		}
		dim, err := dimension.Parse(d.Dimension)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "unit %d", d.Code), ErrInvalidTable)
		}
		name, symbol := strings.TrimSpace(d.Name), strings.TrimSpace(d.Symbol)
		if name == "" {
			return nil, invalid("unit %d: empty name", d.Code)
		}
		if symbol == "" {
			return nil, invalid("unit %d (%s): empty symbol", d.Code, name)
		}
		if !(d.Ratio > 0) || math.IsInf(d.Ratio, 0) {
			return nil, invalid("unit %d (%s): ratio %v must be positive and finite", d.Code, name, d.Ratio)
		}
		if err := claim(name, d.Code); err != nil {
			return nil, err
		}
		if err := claim(symbol, d.Code); err != nil {
			return nil, err
		}
		var aliases []string
		for _, a := range d.Aliases {
			a = strings.TrimSpace(a)
			if a == "" {
				continue
			}
			if err := claim(a, d.Code); err != nil {
				return nil, err
			}
			aliases = append(aliases, a)
		}

		desc := apis.Descriptor{ID: d.Code, Dimension: dim, Name: name, Symbol: symbol, Ratio: d.Ratio}
		t.byID[d.Code] = desc
		t.ordered = append(t.ordered, desc)
		if len(aliases) > 0 {
			t.aliases[d.Code] = aliases
		}
		t.dims[dim]++
	}

	if cfg.RequireBaseUnit {
		for dim := range t.dims {
			if !slices.ContainsFunc(t.ordered, func(d apis.Descriptor) bool {
				return d.Dimension == dim && d.Ratio == 1
			}) {
				return nil, invalid("dimension %s has no base unit with ratio 1", dim)
			}
		}
	}

	slices.SortFunc(t.ordered, func(a, b apis.Descriptor) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return t, nil
}

func invalid(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidTable)
}

// table is the frozen apis.Table implementation. Every field is written
// only by New, before the table is returned.
type table struct {
	// byID maps a unit code to its descriptor.
	byID map[apis.UnitID]apis.Descriptor
	// ordered holds all descriptors sorted by code.
	ordered []apis.Descriptor
	// aliases holds the extra labels of each unit.
	aliases map[apis.UnitID][]string
	// dims counts units per dimension.
	dims map[dimension.ID]int
}

// Lookup returns the descriptor for id.
func (t *table) Lookup(id apis.UnitID) (apis.Descriptor, error) {
	d, ok := t.byID[id]
	if !ok {
		return apis.Descriptor{}, &apis.UnknownUnitError{ID: id}
	}
	return d, nil
}

// IsValid reports whether id is present.
func (t *table) IsValid(id apis.UnitID) bool {
	_, ok := t.byID[id]
	return ok
}

// DimensionOf returns the owning dimension of id.
func (t *table) DimensionOf(id apis.UnitID) (dimension.ID, error) {
	d, err := t.Lookup(id)
	if err != nil {
		return 0, err
	}
	return d.Dimension, nil
}

// NameOf returns the display name of id.
func (t *table) NameOf(id apis.UnitID) (string, error) {
	d, err := t.Lookup(id)
	if err != nil {
		return "", err
	}
	return d.Name, nil
}

// SymbolOf returns the display symbol of id.
func (t *table) SymbolOf(id apis.UnitID) (string, error) {
	d, err := t.Lookup(id)
	if err != nil {
		return "", err
	}
	return d.Symbol, nil
}

// Aliases returns a copy of the aliases of id.
func (t *table) Aliases(id apis.UnitID) []string {
	return slices.Clone(t.aliases[id])
}

// IsKnownDimension reports whether the table holds a unit of d.
func (t *table) IsKnownDimension(d dimension.ID) bool {
	return t.dims[d] > 0
}

// Descriptors returns a snapshot sorted by code.
func (t *table) Descriptors() []apis.Descriptor {
	return slices.Clone(t.ordered)
}

// Count returns the number of units.
func (t *table) Count() int {
	return len(t.ordered)
}
