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

// Package convert implements the dynamic conversion engine.
//
// Every cross-unit computation in qtty ends here: a conversion looks up
// both units, checks they share a dimension and scales the value by
// src.Ratio/dst.Ratio. There are no pairwise factors; ratio composition is
// the only rule.
package convert

import (
	"dirpx.dev/qtty/apis"
)

// New constructs an apis.Converter over table.
// The converter holds no state of its own and is safe for concurrent use.
func New(table apis.Table) apis.Converter {
	return engine{table: table}
}

type engine struct {
	table apis.Table
}

// Factor returns src.Ratio / dst.Ratio. The quotient is formed before it
// touches a value, so Factor(u, u) is exactly 1.
func (e engine) Factor(src, dst apis.UnitID) (float64, error) {
	s, err := e.table.Lookup(src)
	if err != nil {
		return 0, err
	}
	d, err := e.table.Lookup(dst)
	if err != nil {
		return 0, err
	}
	if s.Dimension != d.Dimension {
		return 0, &apis.IncompatibleDimensionError{Src: s.Dimension, Dst: d.Dimension}
	}
	return s.Ratio / d.Ratio, nil
}

// Convert scales value from src into dst.
func (e engine) Convert(value float64, src, dst apis.UnitID) (float64, error) {
	f, err := e.Factor(src, dst)
	if err != nil {
		return 0, err
	}
	return value * f, nil
}

// Compatible reports whether src and dst share a dimension.
func (e engine) Compatible(src, dst apis.UnitID) (bool, error) {
	s, err := e.table.DimensionOf(src)
	if err != nil {
		return false, err
	}
	d, err := e.table.DimensionOf(dst)
	if err != nil {
		return false, err
	}
	return s == d, nil
}
