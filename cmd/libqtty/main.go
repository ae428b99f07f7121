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

//go:build cgo

// Command libqtty builds the C shared library:
//
//	go build -buildmode=c-shared -o libqtty.so ./cmd/libqtty
//
// The generated libqtty.h carries the QTTY_* status codes and the
// DimensionId and UnitId enums. Every exported function returns a status
// code and writes through an out pointer, or returns a value with a
// documented sentinel. Strings returned by the JSON encoders are owned by
// the caller and released with qtty_string_free. Strings returned by qtty_unit_name and
// qtty_unit_symbol are static and must not be freed.
package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>

#define QTTY_FFI_VERSION 1

#define QTTY_OK 0
#define QTTY_ERR_UNKNOWN_UNIT (-1)
#define QTTY_ERR_INCOMPATIBLE_DIM (-2)
#define QTTY_ERR_NULL_OUT (-3)
#define QTTY_ERR_INVALID_VALUE (-4)

typedef enum DimensionId {
	DIMENSION_ID_LENGTH = 1,
	DIMENSION_ID_TIME = 2,
	DIMENSION_ID_ANGLE = 3,
	DIMENSION_ID_MASS = 4,
	DIMENSION_ID_POWER = 5,
} DimensionId;

// Unit codes are uint32_t on the wire; the enum only names them.
typedef enum UnitId {
	UNIT_ID_METER = 100,
	UNIT_ID_KILOMETER = 101,
	UNIT_ID_ASTRONOMICAL_UNIT = 102,
	UNIT_ID_LIGHT_YEAR = 103,
	UNIT_ID_SOLAR_RADIUS = 104,
	UNIT_ID_PARSEC = 105,
	UNIT_ID_CENTIMETER = 106,
	UNIT_ID_MILLIMETER = 107,
	UNIT_ID_SECOND = 200,
	UNIT_ID_MINUTE = 201,
	UNIT_ID_HOUR = 202,
	UNIT_ID_DAY = 203,
	UNIT_ID_WEEK = 204,
	UNIT_ID_YEAR = 205,
	UNIT_ID_JULIAN_YEAR = 206,
	UNIT_ID_CENTURY = 207,
	UNIT_ID_JULIAN_CENTURY = 208,
	UNIT_ID_MILLISECOND = 209,
	UNIT_ID_RADIAN = 300,
	UNIT_ID_DEGREE = 301,
	UNIT_ID_ARCSECOND = 302,
	UNIT_ID_MILLI_ARCSECOND = 303,
	UNIT_ID_HOUR_ANGLE = 304,
	UNIT_ID_ARCMINUTE = 305,
	UNIT_ID_GRAM = 400,
	UNIT_ID_KILOGRAM = 401,
	UNIT_ID_SOLAR_MASS = 402,
	UNIT_ID_WATT = 500,
	UNIT_ID_SOLAR_LUMINOSITY = 501,
	UNIT_ID_KILOWATT = 502,
} UnitId;

typedef struct {
	double value;
	uint32_t unit;
} qtty_quantity_t;
*/
import "C"

import (
	"unsafe"

	"dirpx.dev/qtty"
	"dirpx.dev/qtty/abi"
)

// names and symbols hold one C string per unit for the process lifetime.
// The table is immutable, so they are filled once.
var names, symbols = func() (map[uint32]*C.char, map[uint32]*C.char) {
	n := make(map[uint32]*C.char)
	s := make(map[uint32]*C.char)
	for _, d := range qtty.Default().Table().Descriptors() {
		n[uint32(d.ID)] = C.CString(d.Name)
		s[uint32(d.ID)] = C.CString(d.Symbol)
	}
	return n, s
}()

// goString copies s, keeping NULL as nil.
func goString(s *C.char) *string {
	if s == nil {
		return nil
	}
	g := C.GoString(s)
	return &g
}

func goQuantity(q C.qtty_quantity_t) abi.Quantity {
	return abi.Quantity{Value: float64(q.value), Unit: uint32(q.unit)}
}

func cQuantity(q abi.Quantity) C.qtty_quantity_t {
	return C.qtty_quantity_t{value: C.double(q.Value), unit: C.uint32_t(q.Unit)}
}

//export qtty_ffi_version
func qtty_ffi_version() C.uint32_t {
	return C.uint32_t(abi.Version)
}

//export qtty_unit_is_valid
func qtty_unit_is_valid(unit C.uint32_t) C.bool {
	return C.bool(abi.UnitIsValid(uint32(unit)))
}

//export qtty_unit_dimension
func qtty_unit_dimension(unit C.uint32_t, out *C.uint32_t) C.int32_t {
	if out == nil {
		return C.int32_t(abi.StatusNullOutput)
	}
	var d uint32
	st := abi.UnitDimension(uint32(unit), &d)
	if st == abi.StatusOK {
		*out = C.uint32_t(d)
	}
	return C.int32_t(st)
}

//export qtty_units_compatible
func qtty_units_compatible(a, b C.uint32_t, out *C.bool) C.int32_t {
	if out == nil {
		return C.int32_t(abi.StatusNullOutput)
	}
	var ok bool
	st := abi.UnitsCompatible(uint32(a), uint32(b), &ok)
	if st == abi.StatusOK {
		*out = C.bool(ok)
	}
	return C.int32_t(st)
}

// NULL for unknown units.
//
//export qtty_unit_name
func qtty_unit_name(unit C.uint32_t) *C.char {
	return names[uint32(unit)]
}

// NULL for unknown units.
//
//export qtty_unit_symbol
func qtty_unit_symbol(unit C.uint32_t) *C.char {
	return symbols[uint32(unit)]
}

//export qtty_quantity_make
func qtty_quantity_make(value C.double, unit C.uint32_t, out *C.qtty_quantity_t) C.int32_t {
	if out == nil {
		return C.int32_t(abi.StatusNullOutput)
	}
	var q abi.Quantity
	st := abi.QuantityMake(float64(value), uint32(unit), &q)
	if st == abi.StatusOK {
		*out = cQuantity(q)
	}
	return C.int32_t(st)
}

//export qtty_quantity_convert
func qtty_quantity_convert(src C.qtty_quantity_t, dst C.uint32_t, out *C.qtty_quantity_t) C.int32_t {
	if out == nil {
		return C.int32_t(abi.StatusNullOutput)
	}
	var q abi.Quantity
	st := abi.QuantityConvert(goQuantity(src), uint32(dst), &q)
	if st == abi.StatusOK {
		*out = cQuantity(q)
	}
	return C.int32_t(st)
}

//export qtty_quantity_convert_value
func qtty_quantity_convert_value(value C.double, src, dst C.uint32_t, out *C.double) C.int32_t {
	if out == nil {
		return C.int32_t(abi.StatusNullOutput)
	}
	var v float64
	st := abi.QuantityConvertValue(float64(value), uint32(src), uint32(dst), &v)
	if st == abi.StatusOK {
		*out = C.double(v)
	}
	return C.int32_t(st)
}

//export qtty_quantity_to_json
func qtty_quantity_to_json(src C.qtty_quantity_t, out **C.char) C.int32_t {
	if out == nil {
		return C.int32_t(abi.StatusNullOutput)
	}
	var s string
	st := abi.QuantityToJSON(goQuantity(src), &s)
	if st == abi.StatusOK {
		*out = C.CString(s)
	}
	return C.int32_t(st)
}

//export qtty_quantity_from_json
func qtty_quantity_from_json(data *C.char, out *C.qtty_quantity_t) C.int32_t {
	if out == nil {
		return C.int32_t(abi.StatusNullOutput)
	}
	var q abi.Quantity
	st := abi.QuantityFromJSON(goString(data), &q)
	if st == abi.StatusOK {
		*out = cQuantity(q)
	}
	return C.int32_t(st)
}

//export qtty_quantity_to_json_value
func qtty_quantity_to_json_value(src C.qtty_quantity_t, out **C.char) C.int32_t {
	if out == nil {
		return C.int32_t(abi.StatusNullOutput)
	}
	var s string
	st := abi.QuantityToJSONValue(goQuantity(src), &s)
	if st == abi.StatusOK {
		*out = C.CString(s)
	}
	return C.int32_t(st)
}

//export qtty_quantity_from_json_value
func qtty_quantity_from_json_value(unit C.uint32_t, data *C.char, out *C.qtty_quantity_t) C.int32_t {
	if out == nil {
		return C.int32_t(abi.StatusNullOutput)
	}
	var q abi.Quantity
	st := abi.QuantityFromJSONValue(uint32(unit), goString(data), &q)
	if st == abi.StatusOK {
		*out = cQuantity(q)
	}
	return C.int32_t(st)
}

// Accepts NULL.
//
//export qtty_string_free
func qtty_string_free(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

func main() {}
