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
	"encoding/json"
	"math"
)

// Rate is a derived quantity: a value in unit N of dimension DN per unit D
// of dimension DD, e.g. meters per second. The rate keeps both units in its
// type; nothing is converted when it is formed.
type Rate[N Unit[DN], DN Dimension, D Unit[DD], DD Dimension] struct {
	value float64
}

// NewRate returns v expressed in N per D:
//
//	v := qtty.NewRate[units.Kilometer, units.Hour](90)
func NewRate[N Unit[DN], D Unit[DD], DN, DD Dimension](v float64) Rate[N, DN, D, DD] {
	return Rate[N, DN, D, DD]{value: v}
}

// Per divides two quantities into a Rate without converting either side.
//
// Per is meant for different dimensions. Nothing stops N and D from sharing
// one, but the result then stays a unit-tagged rate such as km per m and is
// not reduced. Ratio is the division of two same-dimension quantities that
// decays to a plain number.
func Per[N Unit[DN], D Unit[DD], DN, DD Dimension](n Quantity[N, DN], d Quantity[D, DD]) Rate[N, DN, D, DD] {
	return Rate[N, DN, D, DD]{value: n.value / d.value}
}

// ToRate converts numerator and denominator independently and recombines:
//
//	ms := qtty.ToRate[units.Meter, units.Second](kmh)
func ToRate[N2 Unit[DN], D2 Unit[DD], N Unit[DN], D Unit[DD], DN, DD Dimension](r Rate[N, DN, D, DD]) Rate[N2, DN, D2, DD] {
	conv := Default().conv
	nf, err := conv.Factor(idOf[N](), idOf[N2]())
	if err != nil {
		panic(err)
	}
	df, err := conv.Factor(idOf[D](), idOf[D2]())
	if err != nil {
		panic(err)
	}
	return Rate[N2, DN, D2, DD]{value: r.value * nf / df}
}

// Value returns the numeric value in N per D.
func (r Rate[N, DN, D, DD]) Value() float64 { return r.value }

// Numerator returns the code of N.
func (r Rate[N, DN, D, DD]) Numerator() UnitID { return idOf[N]() }

// Denominator returns the code of D.
func (r Rate[N, DN, D, DD]) Denominator() UnitID { return idOf[D]() }

// Times multiplies the rate by a quantity in its denominator unit:
// (m/s) × s = m.
func (r Rate[N, DN, D, DD]) Times(d Quantity[D, DD]) Quantity[N, DN] {
	return Quantity[N, DN]{value: r.value * d.value}
}

// Add returns r + o.
func (r Rate[N, DN, D, DD]) Add(o Rate[N, DN, D, DD]) Rate[N, DN, D, DD] {
	return Rate[N, DN, D, DD]{value: r.value + o.value}
}

// Sub returns r - o.
func (r Rate[N, DN, D, DD]) Sub(o Rate[N, DN, D, DD]) Rate[N, DN, D, DD] {
	return Rate[N, DN, D, DD]{value: r.value - o.value}
}

// Mul scales r by a dimensionless factor.
func (r Rate[N, DN, D, DD]) Mul(f float64) Rate[N, DN, D, DD] {
	return Rate[N, DN, D, DD]{value: r.value * f}
}

// Div divides r by a dimensionless divisor.
func (r Rate[N, DN, D, DD]) Div(f float64) Rate[N, DN, D, DD] {
	return Rate[N, DN, D, DD]{value: r.value / f}
}

// Neg returns -r.
func (r Rate[N, DN, D, DD]) Neg() Rate[N, DN, D, DD] { return Rate[N, DN, D, DD]{value: -r.value} }

// Abs returns |r|.
func (r Rate[N, DN, D, DD]) Abs() Rate[N, DN, D, DD] {
	return Rate[N, DN, D, DD]{value: math.Abs(r.value)}
}

// String formats r as "<value> <num>/<den>", e.g. "3 m/s".
func (r Rate[N, DN, D, DD]) String() string {
	return formatValue(r.value) + " " + symbolOrCode(idOf[N]()) + "/" + symbolOrCode(idOf[D]())
}

// MarshalJSON encodes r as a bare number.
func (r Rate[N, DN, D, DD]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

// UnmarshalJSON decodes a bare number.
func (r *Rate[N, DN, D, DD]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.value)
}
