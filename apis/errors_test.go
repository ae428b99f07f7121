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

package apis_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"dirpx.dev/qtty/apis"
	"dirpx.dev/qtty/dimension"
)

func TestUnknownUnitError(t *testing.T) {
	err := error(&apis.UnknownUnitError{ID: 42})
	assert.EqualError(t, err, "qtty: unknown unit 42")
	assert.True(t, errors.Is(err, apis.ErrUnknownUnit))
	assert.False(t, errors.Is(err, apis.ErrIncompatibleDimension))

	wrapped := errors.Wrap(err, "lookup")
	assert.True(t, errors.Is(wrapped, apis.ErrUnknownUnit))
	var target *apis.UnknownUnitError
	if assert.True(t, errors.As(wrapped, &target)) {
		assert.Equal(t, apis.UnitID(42), target.ID)
	}
}

func TestIncompatibleDimensionError(t *testing.T) {
	err := error(&apis.IncompatibleDimensionError{Src: dimension.Length, Dst: dimension.Time})
	assert.EqualError(t, err, "qtty: incompatible dimension length -> time")
	assert.True(t, errors.Is(err, apis.ErrIncompatibleDimension))
	assert.False(t, errors.Is(err, apis.ErrUnknownUnit))
}
