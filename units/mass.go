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

// Mass is the dimension tag of masses.
type Mass struct{}

// DimensionID implements qtty.Dimension.
func (Mass) DimensionID() dimension.ID { return dimension.Mass }

// Unit codes.
const (
	GramID      qtty.UnitID = 400
	KilogramID  qtty.UnitID = 401
	SolarMassID qtty.UnitID = 402
)

// Gram is the base unit of mass.
type Gram struct{ Dim Mass }

func (Gram) UnitID() qtty.UnitID { return GramID }

type Kilogram struct{ Dim Mass }

func (Kilogram) UnitID() qtty.UnitID { return KilogramID }

// SolarMass is the nominal mass of the Sun.
type SolarMass struct{ Dim Mass }

func (SolarMass) UnitID() qtty.UnitID { return SolarMassID }

type (
	Grams       = qtty.Quantity[Gram, Mass]
	Kilograms   = qtty.Quantity[Kilogram, Mass]
	SolarMasses = qtty.Quantity[SolarMass, Mass]
)
