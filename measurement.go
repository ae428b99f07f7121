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

// Measurement is a quantity whose unit is only known at run time. It is the
// dynamic counterpart of Quantity and encodes to JSON as
// {"value": 1000, "unit_id": 100}.
//
// A Measurement may carry a unit code absent from the table; every
// operation that consumes it detects that and fails with ErrUnknownUnit.
type Measurement struct {
	Value float64 `json:"value"`
	Unit  UnitID  `json:"unit_id"`
}

// Measure builds a Measurement after checking unit against the default table.
func Measure(value float64, unit UnitID) (Measurement, error) {
	return Default().Measure(value, unit)
}

// Measure builds a Measurement after checking unit against s.
func (s *System) Measure(value float64, unit UnitID) (Measurement, error) {
	if !s.table.IsValid(unit) {
		return Measurement{}, &UnknownUnitError{ID: unit}
	}
	return Measurement{Value: value, Unit: unit}, nil
}

// ConvertMeasurement returns m expressed in dst.
func (s *System) ConvertMeasurement(m Measurement, dst UnitID) (Measurement, error) {
	v, err := s.conv.Convert(m.Value, m.Unit, dst)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: v, Unit: dst}, nil
}

// To returns m expressed in dst using the default table.
func (m Measurement) To(dst UnitID) (Measurement, error) {
	return Default().ConvertMeasurement(m, dst)
}

// Valid reports whether m's unit is in the default table.
func (m Measurement) Valid() bool {
	return Default().table.IsValid(m.Unit)
}

// String formats m as "<value> <symbol>"; unknown units print as "unit(N)".
func (m Measurement) String() string {
	return formatValue(m.Value) + " " + symbolOrCode(m.Unit)
}

// FromMeasurement converts a dynamic measurement into the static unit U.
// It fails with *UnknownUnitError or *IncompatibleDimensionError.
//
//	km, err := qtty.FromMeasurement[units.Kilometer](m)
func FromMeasurement[U Unit[D], D Dimension](m Measurement) (Quantity[U, D], error) {
	v, err := Default().conv.Convert(m.Value, m.Unit, idOf[U]())
	if err != nil {
		return Quantity[U, D]{}, err
	}
	return Quantity[U, D]{value: v}, nil
}
