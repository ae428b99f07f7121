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

import (
	"dirpx.dev/qtty"
	"dirpx.dev/qtty/dimension"
)

// Time is the dimension tag of durations.
type Time struct{}

// DimensionID implements qtty.Dimension.
func (Time) DimensionID() dimension.ID { return dimension.Time }

// Unit codes.
const (
	SecondID        qtty.UnitID = 200
	MinuteID        qtty.UnitID = 201
	HourID          qtty.UnitID = 202
	DayID           qtty.UnitID = 203
	WeekID          qtty.UnitID = 204
	YearID          qtty.UnitID = 205
	JulianYearID    qtty.UnitID = 206
	CenturyID       qtty.UnitID = 207
	JulianCenturyID qtty.UnitID = 208
	MillisecondID   qtty.UnitID = 209
)

// Second is the base unit of time.
type Second struct{ Dim Time }

func (Second) UnitID() qtty.UnitID { return SecondID }

type Minute struct{ Dim Time }

func (Minute) UnitID() qtty.UnitID { return MinuteID }

type Hour struct{ Dim Time }

func (Hour) UnitID() qtty.UnitID { return HourID }

// Day is 86400 seconds.
type Day struct{ Dim Time }

func (Day) UnitID() qtty.UnitID { return DayID }

type Week struct{ Dim Time }

func (Week) UnitID() qtty.UnitID { return WeekID }

// Year is the mean Gregorian year of 365.2425 days.
type Year struct{ Dim Time }

func (Year) UnitID() qtty.UnitID { return YearID }

// JulianYear is 365.25 days.
type JulianYear struct{ Dim Time }

func (JulianYear) UnitID() qtty.UnitID { return JulianYearID }

type Century struct{ Dim Time }

func (Century) UnitID() qtty.UnitID { return CenturyID }

// JulianCentury is 36525 days.
type JulianCentury struct{ Dim Time }

func (JulianCentury) UnitID() qtty.UnitID { return JulianCenturyID }

type Millisecond struct{ Dim Time }

func (Millisecond) UnitID() qtty.UnitID { return MillisecondID }

type (
	Seconds         = qtty.Quantity[Second, Time]
	Minutes         = qtty.Quantity[Minute, Time]
	Hours           = qtty.Quantity[Hour, Time]
	Days            = qtty.Quantity[Day, Time]
	Weeks           = qtty.Quantity[Week, Time]
	Years           = qtty.Quantity[Year, Time]
	JulianYears     = qtty.Quantity[JulianYear, Time]
	Centuries       = qtty.Quantity[Century, Time]
	JulianCenturies = qtty.Quantity[JulianCentury, Time]
	Milliseconds    = qtty.Quantity[Millisecond, Time]
)
