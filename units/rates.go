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

package units

import "dirpx.dev/qtty"

// Common rates.
type (
	MetersPerSecond         = qtty.Rate[Meter, Length, Second, Time]
	KilometersPerSecond     = qtty.Rate[Kilometer, Length, Second, Time]
	KilometersPerHour       = qtty.Rate[Kilometer, Length, Hour, Time]
	AstronomicalUnitsPerDay = qtty.Rate[AstronomicalUnit, Length, Day, Time]
	RadiansPerSecond        = qtty.Rate[Radian, Angle, Second, Time]
	DegreesPerDay           = qtty.Rate[Degree, Angle, Day, Time]
	// MilliArcsecondsPerYear is the usual unit of stellar proper motion.
	MilliArcsecondsPerYear = qtty.Rate[MilliArcsecond, Angle, JulianYear, Time]
)
