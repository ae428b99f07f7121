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

package apis

import "dirpx.dev/qtty/dimension"

// UnitID is the permanent numeric code of a unit.
// By convention codes are grouped per dimension (1xx length, 2xx time,
// 3xx angle, 4xx mass, 5xx power); membership is always resolved through
// a Table, never from the numeric range.
type UnitID uint32

// Descriptor is the immutable record for one unit.
type Descriptor struct {
	// ID is the permanent unit code.
	ID UnitID
	// Dimension is the owning dimension.
	Dimension dimension.ID
	// Name is the display name, e.g. "Kilometer".
	Name string
	// Symbol is the display symbol, e.g. "km".
	Symbol string
	// Ratio is the number of dimension base units in one of this unit.
	// Always positive and finite.
	Ratio float64
}

// Definition is one row of an external unit listing, before validation.
type Definition struct {
	Code      UnitID
	Dimension string
	Name      string
	Symbol    string
	Ratio     float64
	Aliases   []string
}

// Table is a frozen, read-only unit descriptor table.
// Implementations must be safe for concurrent use and expose no mutation.
type Table interface {
	// Lookup returns the descriptor for id or an *UnknownUnitError.
	Lookup(id UnitID) (Descriptor, error)
	// IsValid reports whether Lookup would succeed.
	IsValid(id UnitID) bool
	// DimensionOf returns the owning dimension of id.
	DimensionOf(id UnitID) (dimension.ID, error)
	// NameOf returns the display name of id.
	NameOf(id UnitID) (string, error)
	// SymbolOf returns the display symbol of id.
	SymbolOf(id UnitID) (string, error)
	// Aliases returns a copy of the extra labels recorded for id.
	Aliases(id UnitID) []string
	// IsKnownDimension reports whether at least one unit of d is present.
	IsKnownDimension(d dimension.ID) bool
	// Descriptors returns every descriptor in ascending ID order.
	Descriptors() []Descriptor
	// Count returns the number of units.
	Count() int
}
