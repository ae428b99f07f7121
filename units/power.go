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

// Power is the dimension tag of power.
type Power struct{}

// DimensionID implements qtty.Dimension.
func (Power) DimensionID() dimension.ID { return dimension.Power }

// Unit codes.
const (
	WattID            qtty.UnitID = 500
	SolarLuminosityID qtty.UnitID = 501
	KilowattID        qtty.UnitID = 502
)

// Watt is the base unit of power.
type Watt struct{ Dim Power }

func (Watt) UnitID() qtty.UnitID { return WattID }

// SolarLuminosity is the IAU nominal solar luminosity.
type SolarLuminosity struct{ Dim Power }

func (SolarLuminosity) UnitID() qtty.UnitID { return SolarLuminosityID }

type Kilowatt struct{ Dim Power }

func (Kilowatt) UnitID() qtty.UnitID { return KilowattID }

type (
	Watts             = qtty.Quantity[Watt, Power]
	SolarLuminosities = qtty.Quantity[SolarLuminosity, Power]
	Kilowatts         = qtty.Quantity[Kilowatt, Power]
)
