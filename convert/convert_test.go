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

package convert_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/qtty/apis"
	"dirpx.dev/qtty/config"
	"dirpx.dev/qtty/convert"
	"dirpx.dev/qtty/definition"
	"dirpx.dev/qtty/dimension"
	"dirpx.dev/qtty/registry"
)

const (
	meter     apis.UnitID = 100
	kilometer apis.UnitID = 101
	second    apis.UnitID = 200
	minute    apis.UnitID = 201
	hour      apis.UnitID = 202
	day       apis.UnitID = 203
	radian    apis.UnitID = 300
	degree    apis.UnitID = 301
)

func newTable(t *testing.T) apis.Table {
	t.Helper()
	cfg := config.DefaultConfig()
	defs, err := definition.Default(cfg)
	require.NoError(t, err)
	tab, err := registry.New(cfg, defs)
	require.NoError(t, err)
	return tab
}

func TestScenarios(t *testing.T) {
	c := convert.New(newTable(t))

	got, err := c.Convert(1000, meter, kilometer)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = c.Convert(1, hour, minute)
	require.NoError(t, err)
	assert.Equal(t, 60.0, got)

	got, err = c.Convert(1, day, second)
	require.NoError(t, err)
	assert.Equal(t, 86400.0, got)

	got, err = c.Convert(180, degree, radian)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, got, 1e-12)
}

func TestIncompatibleDimension(t *testing.T) {
	c := convert.New(newTable(t))

	_, err := c.Convert(1, meter, second)
	var ide *apis.IncompatibleDimensionError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, dimension.Length, ide.Src)
	assert.Equal(t, dimension.Time, ide.Dst)
	assert.ErrorIs(t, err, apis.ErrIncompatibleDimension)
}

func TestUnknownUnit(t *testing.T) {
	c := convert.New(newTable(t))

	_, err := c.Convert(1, 9999, second)
	var uu *apis.UnknownUnitError
	require.ErrorAs(t, err, &uu)
	assert.Equal(t, apis.UnitID(9999), uu.ID)

	_, err = c.Convert(1, second, 9999)
	require.ErrorAs(t, err, &uu)
	assert.Equal(t, apis.UnitID(9999), uu.ID)

	_, err = c.Factor(0, second)
	assert.ErrorIs(t, err, apis.ErrUnknownUnit)

	_, err = c.Compatible(second, 9999)
	assert.ErrorIs(t, err, apis.ErrUnknownUnit)
}

func TestCompatible(t *testing.T) {
	c := convert.New(newTable(t))

	ok, err := c.Compatible(meter, kilometer)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Compatible(degree, hour)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSpecialValuesPassThrough(t *testing.T) {
	c := convert.New(newTable(t))

	got, err := c.Convert(math.NaN(), meter, kilometer)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	got, err = c.Convert(math.Inf(1), hour, second)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = c.Convert(math.Inf(-1), degree, radian)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, -1))
}
