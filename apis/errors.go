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

package apis

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"dirpx.dev/qtty/dimension"
)

var (
	// ErrUnknownUnit matches every *UnknownUnitError.
	ErrUnknownUnit = errors.New("qtty: unknown unit")
	// ErrIncompatibleDimension matches every *IncompatibleDimensionError.
	ErrIncompatibleDimension = errors.New("qtty: incompatible dimension")
)

// UnknownUnitError reports a unit code absent from the table.
type UnknownUnitError struct {
	ID UnitID
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("qtty: unknown unit %d", e.ID)
}

// Is makes errors.Is(err, ErrUnknownUnit) hold.
func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}

// IncompatibleDimensionError reports a conversion between two valid units
// of different dimensions.
type IncompatibleDimensionError struct {
	Src dimension.ID
	Dst dimension.ID
}

func (e *IncompatibleDimensionError) Error() string {
	return fmt.Sprintf("qtty: incompatible dimension %s -> %s", e.Src, e.Dst)
}

// Is makes errors.Is(err, ErrIncompatibleDimension) hold.
func (e *IncompatibleDimensionError) Is(target error) bool {
	return target == ErrIncompatibleDimension
}
