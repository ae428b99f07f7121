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

// Package abi is the stable, status-code surface of qtty for callers
// outside Go's type system. It is the layer exported to C by cmd/libqtty.
//
// Every operation writes its result through an explicit output pointer and
// returns a Status; a nil output pointer yields StatusNullOutput and the
// pointer is never dereferenced. No operation panics on malformed input.
//
// The Quantity record layout, the Status values and every published unit
// code are frozen for a given Version.
package abi

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"dirpx.dev/qtty"
	"dirpx.dev/qtty/apis"
)

// Version is the boundary version. It only ever increases.
const Version uint32 = 1

// Status is the result of every boundary operation.
type Status int32

const (
	// StatusOK means the outputs were written.
	StatusOK Status = 0
	// StatusUnknownUnit means a unit code is absent from the table.
	StatusUnknownUnit Status = -1
	// StatusIncompatibleDimension means two valid units have different dimensions.
	StatusIncompatibleDimension Status = -2
	// StatusNullOutput means a required output pointer was nil.
	StatusNullOutput Status = -3
	// StatusInvalidValue is reserved by the core operations, which accept
	// every float64 including NaN and infinities. Only the JSON decoders
	// return it, for malformed input.
	StatusInvalidValue Status = -4
)

// String returns the C-style name of s.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "QTTY_OK"
	case StatusUnknownUnit:
		return "QTTY_ERR_UNKNOWN_UNIT"
	case StatusIncompatibleDimension:
		return "QTTY_ERR_INCOMPATIBLE_DIM"
	case StatusNullOutput:
		return "QTTY_ERR_NULL_OUT"
	case StatusInvalidValue:
		return "QTTY_ERR_INVALID_VALUE"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// StatusOf maps an engine error to its status. Errors outside the
// taxonomy map to StatusInvalidValue.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, apis.ErrUnknownUnit):
		return StatusUnknownUnit
	case errors.Is(err, apis.ErrIncompatibleDimension):
		return StatusIncompatibleDimension
	default:
		return StatusInvalidValue
	}
}

// Quantity is the fixed boundary record: an IEEE-754 double followed by a
// 32-bit unit code, padded to the alignment of float64 (16 bytes on 64-bit
// platforms). Field order and size never change within a Version.
type Quantity struct {
	Value float64
	Unit  uint32
}

// UnitIsValid reports whether unit is in the table.
func UnitIsValid(unit uint32) bool {
	return qtty.IsValid(qtty.UnitID(unit))
}

// UnitDimension writes the dimension code of unit to out.
func UnitDimension(unit uint32, out *uint32) Status {
	if out == nil {
		return StatusNullOutput
	}
	d, err := qtty.DimensionOf(qtty.UnitID(unit))
	if err != nil {
		return StatusOf(err)
	}
	*out = uint32(d)
	return StatusOK
}

// UnitsCompatible writes whether a and b share a dimension to out.
func UnitsCompatible(a, b uint32, out *bool) Status {
	if out == nil {
		return StatusNullOutput
	}
	ok, err := qtty.Compatible(qtty.UnitID(a), qtty.UnitID(b))
	if err != nil {
		return StatusOf(err)
	}
	*out = ok
	return StatusOK
}

// UnitName returns the display name of unit, or "" if it is unknown.
func UnitName(unit uint32) string {
	name, err := qtty.NameOf(qtty.UnitID(unit))
	if err != nil {
		return ""
	}
	return name
}

// UnitSymbol returns the display symbol of unit, or "" if it is unknown.
func UnitSymbol(unit uint32) string {
	sym, err := qtty.SymbolOf(qtty.UnitID(unit))
	if err != nil {
		return ""
	}
	return sym
}

// QuantityMake writes {value, unit} to out after checking unit.
func QuantityMake(value float64, unit uint32, out *Quantity) Status {
	if out == nil {
		return StatusNullOutput
	}
	if !UnitIsValid(unit) {
		return StatusUnknownUnit
	}
	*out = Quantity{Value: value, Unit: unit}
	return StatusOK
}

// QuantityConvert writes src expressed in dst to out.
func QuantityConvert(src Quantity, dst uint32, out *Quantity) Status {
	if out == nil {
		return StatusNullOutput
	}
	v, err := qtty.Convert(src.Value, qtty.UnitID(src.Unit), qtty.UnitID(dst))
	if err != nil {
		return StatusOf(err)
	}
	*out = Quantity{Value: v, Unit: dst}
	return StatusOK
}

// QuantityConvertValue writes value, given in src, expressed in dst to out.
func QuantityConvertValue(value float64, src, dst uint32, out *float64) Status {
	if out == nil {
		return StatusNullOutput
	}
	v, err := qtty.Convert(value, qtty.UnitID(src), qtty.UnitID(dst))
	if err != nil {
		return StatusOf(err)
	}
	*out = v
	return StatusOK
}

// Measurement returns q as a qtty.Measurement.
func (q Quantity) Measurement() qtty.Measurement {
	return qtty.Measurement{Value: q.Value, Unit: qtty.UnitID(q.Unit)}
}

// FromMeasurement returns the boundary record of m.
func FromMeasurement(m qtty.Measurement) Quantity {
	return Quantity{Value: m.Value, Unit: uint32(m.Unit)}
}
