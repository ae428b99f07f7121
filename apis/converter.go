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

// Converter is the dynamic conversion engine over a Table.
type Converter interface {
	// Convert returns value expressed in dst, given it is expressed in src.
	// Fails with *UnknownUnitError or *IncompatibleDimensionError.
	// NaN and infinities pass through unchanged.
	Convert(value float64, src, dst UnitID) (float64, error)
	// Factor returns the multiplier that converts src values into dst values.
	Factor(src, dst UnitID) (float64, error)
	// Compatible reports whether src and dst share a dimension.
	// It fails only when one of the units is unknown.
	Compatible(src, dst UnitID) (bool, error)
}
