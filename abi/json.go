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

package abi

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// record is the JSON object form of a Quantity written by QuantityToJSON.
// Non-finite values, which JSON cannot carry, are written as null.
type record struct {
	Value *float64 `json:"value"`
	Unit  *uint32  `json:"unit_id"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// QuantityToJSON writes src as {"value": v, "unit_id": u} to out.
func QuantityToJSON(src Quantity, out *string) Status {
	if out == nil {
		return StatusNullOutput
	}
	b, err := json.Marshal(record{Value: finite(src.Value), Unit: &src.Unit})
	if err != nil {
		return StatusInvalidValue
	}
	*out = string(b)
	return StatusOK
}

// QuantityFromJSON parses {"value": v, "unit_id": u} into out. Keys match
// exactly and extra keys are ignored. Malformed text, or a value that is
// missing or not a number, yields StatusInvalidValue. Once the value is
// present, a unit_id that is missing, not a uint32 or absent from the
// table yields StatusUnknownUnit. A nil data is StatusInvalidValue.
func QuantityFromJSON(data *string, out *Quantity) Status {
	if out == nil {
		return StatusNullOutput
	}
	if data == nil {
		return StatusInvalidValue
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(*data), &fields); err != nil || fields == nil {
		return StatusInvalidValue
	}
	var value *float64
	if raw, ok := fields["value"]; !ok || json.Unmarshal(raw, &value) != nil || value == nil {
		return StatusInvalidValue
	}
	unit, ok := unitID(fields["unit_id"])
	if !ok || !UnitIsValid(unit) {
		return StatusUnknownUnit
	}
	*out = Quantity{Value: *value, Unit: unit}
	return StatusOK
}

// unitID accepts only a plain non-negative integer literal that fits in
// uint32.
func unitID(raw json.RawMessage) (uint32, bool) {
	if raw == nil {
		return 0, false
	}
	u, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(u), true
}

// QuantityToJSONValue writes only the value of src, as a bare JSON number.
func QuantityToJSONValue(src Quantity, out *string) Status {
	if out == nil {
		return StatusNullOutput
	}
	b, err := json.Marshal(finite(src.Value))
	if err != nil {
		return StatusInvalidValue
	}
	*out = string(b)
	return StatusOK
}

// QuantityFromJSONValue parses a bare JSON number as a value in unit. The
// unit is checked before data, so an unknown unit wins over a nil data.
func QuantityFromJSONValue(unit uint32, data *string, out *Quantity) Status {
	if out == nil {
		return StatusNullOutput
	}
	if !UnitIsValid(unit) {
		return StatusUnknownUnit
	}
	if data == nil {
		return StatusInvalidValue
	}
	var v *float64
	if err := json.Unmarshal([]byte(*data), &v); err != nil || v == nil {
		return StatusInvalidValue
	}
	*out = Quantity{Value: *v, Unit: unit}
	return StatusOK
}
