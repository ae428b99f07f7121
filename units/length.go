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

// Length is the dimension tag of distances.
type Length struct{}

// DimensionID implements qtty.Dimension.
func (Length) DimensionID() dimension.ID { return dimension.Length }

// Unit codes.
const (
	MeterID            qtty.UnitID = 100
	KilometerID        qtty.UnitID = 101
	AstronomicalUnitID qtty.UnitID = 102
	LightYearID        qtty.UnitID = 103
	SolarRadiusID      qtty.UnitID = 104
	ParsecID           qtty.UnitID = 105
	CentimeterID       qtty.UnitID = 106
	MillimeterID       qtty.UnitID = 107
)

// Meter is the base unit of length.
type Meter struct{ Dim Length }

func (Meter) UnitID() qtty.UnitID { return MeterID }

type Kilometer struct{ Dim Length }

func (Kilometer) UnitID() qtty.UnitID { return KilometerID }

// AstronomicalUnit is the IAU 2012 astronomical unit.
type AstronomicalUnit struct{ Dim Length }

func (AstronomicalUnit) UnitID() qtty.UnitID { return AstronomicalUnitID }

// LightYear is the distance light travels in one Julian year.
type LightYear struct{ Dim Length }

func (LightYear) UnitID() qtty.UnitID { return LightYearID }

// SolarRadius is the IAU nominal solar radius.
type SolarRadius struct{ Dim Length }

func (SolarRadius) UnitID() qtty.UnitID { return SolarRadiusID }

type Parsec struct{ Dim Length }

func (Parsec) UnitID() qtty.UnitID { return ParsecID }

type Centimeter struct{ Dim Length }

func (Centimeter) UnitID() qtty.UnitID { return CentimeterID }

type Millimeter struct{ Dim Length }

func (Millimeter) UnitID() qtty.UnitID { return MillimeterID }

type (
	Meters            = qtty.Quantity[Meter, Length]
	Kilometers        = qtty.Quantity[Kilometer, Length]
	AstronomicalUnits = qtty.Quantity[AstronomicalUnit, Length]
	LightYears        = qtty.Quantity[LightYear, Length]
	SolarRadii        = qtty.Quantity[SolarRadius, Length]
	Parsecs           = qtty.Quantity[Parsec, Length]
	Centimeters       = qtty.Quantity[Centimeter, Length]
	Millimeters       = qtty.Quantity[Millimeter, Length]
)
