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

// Angle is the dimension tag of plane angles.
type Angle struct{}

// DimensionID implements qtty.Dimension.
func (Angle) DimensionID() dimension.ID { return dimension.Angle }

// Unit codes.
const (
	RadianID         qtty.UnitID = 300
	DegreeID         qtty.UnitID = 301
	ArcsecondID      qtty.UnitID = 302
	MilliArcsecondID qtty.UnitID = 303
	HourAngleID      qtty.UnitID = 304
	ArcminuteID      qtty.UnitID = 305
)

// Radian is the base unit of angle.
type Radian struct{ Dim Angle }

func (Radian) UnitID() qtty.UnitID { return RadianID }

type Degree struct{ Dim Angle }

func (Degree) UnitID() qtty.UnitID { return DegreeID }

type Arcsecond struct{ Dim Angle }

func (Arcsecond) UnitID() qtty.UnitID { return ArcsecondID }

type MilliArcsecond struct{ Dim Angle }

func (MilliArcsecond) UnitID() qtty.UnitID { return MilliArcsecondID }

// HourAngle is 15 degrees, one hour of right ascension.
type HourAngle struct{ Dim Angle }

func (HourAngle) UnitID() qtty.UnitID { return HourAngleID }

type Arcminute struct{ Dim Angle }

func (Arcminute) UnitID() qtty.UnitID { return ArcminuteID }

type (
	Radians         = qtty.Quantity[Radian, Angle]
	Degrees         = qtty.Quantity[Degree, Angle]
	Arcseconds      = qtty.Quantity[Arcsecond, Angle]
	MilliArcseconds = qtty.Quantity[MilliArcsecond, Angle]
	HourAngles      = qtty.Quantity[HourAngle, Angle]
	Arcminutes      = qtty.Quantity[Arcminute, Angle]
)
