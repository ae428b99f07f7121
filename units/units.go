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

// Package units declares the static unit tags used with qtty.Quantity and
// the common quantity aliases:
//
//	var d units.Meters = qtty.New[units.Meter](42)
//
// Every tag is checked against the default unit table during package
// initialization; a tag whose code is missing or belongs to another
// dimension stops the program before any conversion runs.
package units

import (
	"github.com/cockroachdb/errors"

	"dirpx.dev/qtty"
)

func init() {
	if err := Check(); err != nil {
		panic(err)
	}
}

// Check verifies every tag of this package against the default table.
func Check() error {
	for _, err := range []error{
		qtty.CheckUnit[Meter](),
		qtty.CheckUnit[Kilometer](),
		qtty.CheckUnit[AstronomicalUnit](),
		qtty.CheckUnit[LightYear](),
		qtty.CheckUnit[SolarRadius](),
		qtty.CheckUnit[Parsec](),
		qtty.CheckUnit[Centimeter](),
		qtty.CheckUnit[Millimeter](),
		qtty.CheckUnit[Second](),
		qtty.CheckUnit[Minute](),
		qtty.CheckUnit[Hour](),
		qtty.CheckUnit[Day](),
		qtty.CheckUnit[Week](),
		qtty.CheckUnit[Year](),
		qtty.CheckUnit[JulianYear](),
		qtty.CheckUnit[Century](),
		qtty.CheckUnit[JulianCentury](),
		qtty.CheckUnit[Millisecond](),
		qtty.CheckUnit[Radian](),
		qtty.CheckUnit[Degree](),
		qtty.CheckUnit[Arcsecond](),
		qtty.CheckUnit[MilliArcsecond](),
		qtty.CheckUnit[HourAngle](),
		qtty.CheckUnit[Arcminute](),
		qtty.CheckUnit[Gram](),
		qtty.CheckUnit[Kilogram](),
		qtty.CheckUnit[SolarMass](),
		qtty.CheckUnit[Watt](),
		qtty.CheckUnit[SolarLuminosity](),
		qtty.CheckUnit[Kilowatt](),
	} {
		if err != nil {
			return errors.Wrap(err, "units")
		}
	}
	return nil
}
