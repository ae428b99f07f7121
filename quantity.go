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
	"cmp"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"dirpx.dev/qtty/dimension"
)

// Dimension is implemented by zero-size dimension tags such as
// units.Length.
type Dimension interface {
	DimensionID() dimension.ID
}

// Unit is implemented by zero-size unit tags of dimension D. A tag is a
// struct with a single Dim field of its dimension tag:
//
//	type Meter struct{ Dim Length }
//	func (Meter) UnitID() qtty.UnitID { return 100 }
//
// The field lets the compiler infer D from a unit tag alone, so mixing
// dimensions in To or Ratio is a type error.
type Unit[D Dimension] interface {
	~struct{ Dim D }
	UnitID() UnitID
}

// Quantity is a value in the statically known unit U of dimension D.
// The unit lives in the type; a Quantity is a single float64 at run time.
type Quantity[U Unit[D], D Dimension] struct {
	value float64
}

// ErrScanNull is returned when scanning SQL NULL into a Quantity.
var ErrScanNull = errors.New("qtty: cannot scan NULL into a quantity")

// New returns v expressed in U:
//
//	d := qtty.New[units.Meter](1000)
func New[U Unit[D], D Dimension](v float64) Quantity[U, D] {
	return Quantity[U, D]{value: v}
}

// To converts q into unit V of the same dimension. Converting to another
// dimension does not compile:
//
//	km := qtty.To[units.Kilometer](d) // ok
//	s := qtty.To[units.Second](d)     // type error
//
// To panics only if a unit tag is missing from the default table, which
// CheckUnit detects at startup for every tag in package units.
func To[V Unit[D], U Unit[D], D Dimension](q Quantity[U, D]) Quantity[V, D] {
	r, err := TryTo[V](q)
	if err != nil {
		panic(err)
	}
	return r
}

// TryTo is To returning the table error instead of panicking.
func TryTo[V Unit[D], U Unit[D], D Dimension](q Quantity[U, D]) (Quantity[V, D], error) {
	f, err := Default().conv.Factor(idOf[U](), idOf[V]())
	if err != nil {
		return Quantity[V, D]{}, err
	}
	return Quantity[V, D]{value: q.value * f}, nil
}

// Ratio divides two quantities of one dimension. b is first converted into
// a's unit, so the result is a plain number:
//
//	qtty.Ratio(qtty.New[units.Kilometer](1), qtty.New[units.Meter](250)) == 4
func Ratio[U, V Unit[D], D Dimension](a Quantity[U, D], b Quantity[V, D]) float64 {
	return a.value / To[U](b).value
}

// CheckUnit verifies that tag U exists in the default table and belongs to
// dimension D.
func CheckUnit[U Unit[D], D Dimension]() error {
	var d D
	id := idOf[U]()
	desc, err := Default().table.Lookup(id)
	if err != nil {
		return errors.Wrapf(err, "unit tag %T", *new(U))
	}
	if desc.Dimension != d.DimensionID() {
		return errors.Wrapf(
			&IncompatibleDimensionError{Src: d.DimensionID(), Dst: desc.Dimension},
			"unit tag %T declares %s but unit %d is %s", *new(U), d.DimensionID(), id, desc.Dimension,
		)
	}
	return nil
}

func idOf[U interface{ UnitID() UnitID }]() UnitID {
	var u U
	return u.UnitID()
}

// Value returns the numeric value in U.
func (q Quantity[U, D]) Value() float64 { return q.value }

// Unit returns the code of U.
func (q Quantity[U, D]) Unit() UnitID { return idOf[U]() }

// Add returns q + o. Both operands must already be in U.
func (q Quantity[U, D]) Add(o Quantity[U, D]) Quantity[U, D] {
	return Quantity[U, D]{value: q.value + o.value}
}

// Sub returns q - o.
func (q Quantity[U, D]) Sub(o Quantity[U, D]) Quantity[U, D] {
	return Quantity[U, D]{value: q.value - o.value}
}

// Mul scales q by a dimensionless factor.
func (q Quantity[U, D]) Mul(f float64) Quantity[U, D] {
	return Quantity[U, D]{value: q.value * f}
}

// Div divides q by a dimensionless divisor.
func (q Quantity[U, D]) Div(f float64) Quantity[U, D] {
	return Quantity[U, D]{value: q.value / f}
}

// Neg returns -q.
func (q Quantity[U, D]) Neg() Quantity[U, D] { return Quantity[U, D]{value: -q.value} }

// Abs returns |q|.
func (q Quantity[U, D]) Abs() Quantity[U, D] { return Quantity[U, D]{value: math.Abs(q.value)} }

// Min returns the smaller of q and o.
func (q Quantity[U, D]) Min(o Quantity[U, D]) Quantity[U, D] {
	return Quantity[U, D]{value: min(q.value, o.value)}
}

// Max returns the larger of q and o.
func (q Quantity[U, D]) Max(o Quantity[U, D]) Quantity[U, D] {
	return Quantity[U, D]{value: max(q.value, o.value)}
}

// Compare returns -1, 0 or +1 like cmp.Compare.
func (q Quantity[U, D]) Compare(o Quantity[U, D]) int { return cmp.Compare(q.value, o.value) }

// Measurement erases the static unit.
func (q Quantity[U, D]) Measurement() Measurement {
	return Measurement{Value: q.value, Unit: idOf[U]()}
}

// String formats q as "<value> <symbol>", e.g. "1000 m".
func (q Quantity[U, D]) String() string {
	return formatValue(q.value) + " " + symbolOrCode(idOf[U]())
}

// MarshalJSON encodes q as a bare number; the unit is implied by the type.
func (q Quantity[U, D]) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.value)
}

// UnmarshalJSON decodes a bare number.
func (q *Quantity[U, D]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &q.value)
}

// Scan implements sql.Scanner for numeric columns holding values in U.
// Write a quantity with its Value.
func (q *Quantity[U, D]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return ErrScanNull
	case float64:
		q.value = v
	case float32:
		q.value = float64(v)
	case int64:
		q.value = float64(v)
	case []byte:
		return q.parse(string(v))
	case string:
		return q.parse(v)
	default:
		return errors.Newf("qtty: cannot scan %T into a quantity", src)
	}
	return nil
}

func (q *Quantity[U, D]) parse(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.Wrap(err, "qtty: scan quantity")
	}
	q.value = f
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func symbolOrCode(id UnitID) string {
	if s, err := Default().table.SymbolOf(id); err == nil {
		return s
	}
	return "unit(" + strconv.FormatUint(uint64(id), 10) + ")"
}
