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

package abi_test

import (
	"math"
	"runtime"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"dirpx.dev/qtty"
	"dirpx.dev/qtty/abi"
	"dirpx.dev/qtty/dimension"
	"dirpx.dev/qtty/units"
)

const (
	meter     = uint32(units.MeterID)
	kilometer = uint32(units.KilometerID)
	second    = uint32(units.SecondID)
	minute    = uint32(units.MinuteID)
	hour      = uint32(units.HourID)
	day       = uint32(units.DayID)
	radian    = uint32(units.RadianID)
	degree    = uint32(units.DegreeID)
)

func TestStatusCodesAreFrozen(t *testing.T) {
	assert.Equal(t, abi.Status(0), abi.StatusOK)
	assert.Equal(t, abi.Status(-1), abi.StatusUnknownUnit)
	assert.Equal(t, abi.Status(-2), abi.StatusIncompatibleDimension)
	assert.Equal(t, abi.Status(-3), abi.StatusNullOutput)
	assert.Equal(t, abi.Status(-4), abi.StatusInvalidValue)
	assert.Equal(t, "QTTY_ERR_NULL_OUT", abi.StatusNullOutput.String())
	assert.Equal(t, "Status(7)", abi.Status(7).String())
	assert.Equal(t, uint32(1), abi.Version)
}

func TestRecordLayout(t *testing.T) {
	var q abi.Quantity
	assert.Equal(t, uintptr(0), unsafe.Offsetof(q.Value))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(q.Unit))
	if unsafe.Sizeof(uintptr(0)) == 8 {
		assert.Equal(t, uintptr(16), unsafe.Sizeof(q))
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, abi.StatusOK, abi.StatusOf(nil))
	assert.Equal(t, abi.StatusUnknownUnit, abi.StatusOf(&qtty.UnknownUnitError{ID: 1}))
	assert.Equal(t, abi.StatusIncompatibleDimension, abi.StatusOf(errors.Wrap(&qtty.IncompatibleDimensionError{}, "ctx")))
	assert.Equal(t, abi.StatusInvalidValue, abi.StatusOf(errors.New("other")))
}

func TestUnitQueries(t *testing.T) {
	assert.True(t, abi.UnitIsValid(meter))
	assert.False(t, abi.UnitIsValid(9999))

	var dim uint32
	require.Equal(t, abi.StatusOK, abi.UnitDimension(degree, &dim))
	assert.Equal(t, uint32(dimension.Angle), dim)

	dim = 77
	assert.Equal(t, abi.StatusUnknownUnit, abi.UnitDimension(9999, &dim))
	assert.Equal(t, uint32(77), dim)
	assert.Equal(t, abi.StatusNullOutput, abi.UnitDimension(meter, nil))

	var ok bool
	require.Equal(t, abi.StatusOK, abi.UnitsCompatible(meter, kilometer, &ok))
	assert.True(t, ok)
	require.Equal(t, abi.StatusOK, abi.UnitsCompatible(meter, second, &ok))
	assert.False(t, ok)
	assert.Equal(t, abi.StatusUnknownUnit, abi.UnitsCompatible(9999, second, &ok))
	assert.Equal(t, abi.StatusNullOutput, abi.UnitsCompatible(meter, second, nil))

	assert.Equal(t, "Meter", abi.UnitName(meter))
	assert.Equal(t, "Kilometer", abi.UnitName(kilometer))
	assert.Equal(t, "", abi.UnitName(9999))
	assert.Equal(t, "km", abi.UnitSymbol(kilometer))
	assert.Equal(t, "", abi.UnitSymbol(9999))
}

func TestQuantityMake(t *testing.T) {
	var q abi.Quantity
	require.Equal(t, abi.StatusOK, abi.QuantityMake(1000, meter, &q))
	assert.Equal(t, abi.Quantity{Value: 1000, Unit: meter}, q)

	require.Equal(t, abi.StatusOK, abi.QuantityMake(math.NaN(), meter, &q))
	assert.True(t, math.IsNaN(q.Value))

	q = abi.Quantity{Value: 5, Unit: second}
	assert.Equal(t, abi.StatusUnknownUnit, abi.QuantityMake(1, 9999, &q))
	assert.Equal(t, abi.Quantity{Value: 5, Unit: second}, q)
	assert.Equal(t, abi.StatusNullOutput, abi.QuantityMake(1, meter, nil))
}

func TestQuantityConvertScenarios(t *testing.T) {
	var out abi.Quantity
	require.Equal(t, abi.StatusOK, abi.QuantityConvert(abi.Quantity{Value: 1000, Unit: meter}, kilometer, &out))
	assert.Equal(t, abi.Quantity{Value: 1, Unit: kilometer}, out)

	require.Equal(t, abi.StatusOK, abi.QuantityConvert(abi.Quantity{Value: 1, Unit: hour}, minute, &out))
	assert.Equal(t, 60.0, out.Value)

	require.Equal(t, abi.StatusOK, abi.QuantityConvert(abi.Quantity{Value: 1, Unit: day}, second, &out))
	assert.Equal(t, 86400.0, out.Value)

	require.Equal(t, abi.StatusOK, abi.QuantityConvert(abi.Quantity{Value: 180, Unit: degree}, radian, &out))
	assert.InDelta(t, math.Pi, out.Value, 1e-12)
	assert.Equal(t, radian, out.Unit)

	before := out
	assert.Equal(t, abi.StatusIncompatibleDimension, abi.QuantityConvert(abi.Quantity{Value: 1, Unit: meter}, second, &out))
	assert.Equal(t, abi.StatusUnknownUnit, abi.QuantityConvert(abi.Quantity{Value: 1, Unit: 9999}, second, &out))
	assert.Equal(t, before, out)

	assert.Equal(t, abi.StatusNullOutput, abi.QuantityConvert(abi.Quantity{Value: 1, Unit: meter}, kilometer, nil))
}

func TestQuantityConvertValue(t *testing.T) {
	var v float64
	require.Equal(t, abi.StatusOK, abi.QuantityConvertValue(1000, meter, kilometer, &v))
	assert.Equal(t, 1.0, v)

	require.Equal(t, abi.StatusOK, abi.QuantityConvertValue(math.Inf(1), hour, second, &v))
	assert.True(t, math.IsInf(v, 1))

	assert.Equal(t, abi.StatusIncompatibleDimension, abi.QuantityConvertValue(1, meter, second, &v))
	assert.Equal(t, abi.StatusUnknownUnit, abi.QuantityConvertValue(1, meter, 9999, &v))
	assert.Equal(t, abi.StatusNullOutput, abi.QuantityConvertValue(1, meter, kilometer, nil))
}

func TestUnknownUnitRejectedEverywhere(t *testing.T) {
	const bad = 9999
	var (
		dim uint32
		ok  bool
		q   abi.Quantity
		v   float64
	)
	assert.False(t, abi.UnitIsValid(bad))
	assert.Equal(t, abi.StatusUnknownUnit, abi.UnitDimension(bad, &dim))
	assert.Equal(t, abi.StatusUnknownUnit, abi.UnitsCompatible(meter, bad, &ok))
	assert.Equal(t, abi.StatusUnknownUnit, abi.QuantityMake(1, bad, &q))
	assert.Equal(t, abi.StatusUnknownUnit, abi.QuantityConvert(abi.Quantity{Value: 1, Unit: meter}, bad, &q))
	assert.Equal(t, abi.StatusUnknownUnit, abi.QuantityConvertValue(1, bad, meter, &v))
	assert.Equal(t, abi.StatusUnknownUnit, abi.QuantityFromJSONValue(bad, text("1"), &q))
}

func TestMeasurementBridge(t *testing.T) {
	q := abi.Quantity{Value: 2, Unit: hour}
	m := q.Measurement()
	assert.Equal(t, qtty.Measurement{Value: 2, Unit: units.HourID}, m)
	assert.Equal(t, q, abi.FromMeasurement(m))
}

func TestConcurrentCalls(t *testing.T) {
	var g errgroup.Group
	for w := 0; w < runtime.GOMAXPROCS(0)*4; w++ {
		g.Go(func() error {
			var out abi.Quantity
			for i := 0; i < 2000; i++ {
				if st := abi.QuantityConvert(abi.Quantity{Value: 1, Unit: day}, second, &out); st != abi.StatusOK || out.Value != 86400 {
					t.Errorf("convert = (%v, %+v)", st, out)
				}
				if st := abi.QuantityConvert(abi.Quantity{Value: 1, Unit: meter}, second, &out); st != abi.StatusIncompatibleDimension {
					t.Errorf("incompatible convert = %v", st)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
