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
	"math"

	"dirpx.dev/qtty"
)

// turn returns one full revolution expressed in U. A single division keeps
// it exact for the listed units (360°, 24 hᵃ, 1296000″).
func turn[U qtty.Unit[Angle]]() float64 {
	var u U
	d, err := qtty.Lookup(u.UnitID())
	if err != nil {
		panic(err)
	}
	return 2 * math.Pi / d.Ratio
}

// Sin returns the sine of a.
func Sin[U qtty.Unit[Angle]](a qtty.Quantity[U, Angle]) float64 {
	return math.Sin(qtty.To[Radian](a).Value())
}

// Cos returns the cosine of a.
func Cos[U qtty.Unit[Angle]](a qtty.Quantity[U, Angle]) float64 {
	return math.Cos(qtty.To[Radian](a).Value())
}

// Tan returns the tangent of a.
func Tan[U qtty.Unit[Angle]](a qtty.Quantity[U, Angle]) float64 {
	return math.Tan(qtty.To[Radian](a).Value())
}

// WrapPos normalizes a into [0, turn).
func WrapPos[U qtty.Unit[Angle]](a qtty.Quantity[U, Angle]) qtty.Quantity[U, Angle] {
	t := turn[U]()
	v := math.Mod(a.Value(), t)
	if v < 0 {
		v += t
	}
	// -tiny + t can round up to t.
	if v >= t {
		v = 0
	}
	return qtty.New[U](v)
}

// WrapSigned normalizes a into (-turn/2, turn/2].
func WrapSigned[U qtty.Unit[Angle]](a qtty.Quantity[U, Angle]) qtty.Quantity[U, Angle] {
	t := turn[U]()
	v := WrapPos(a).Value()
	if v > t/2 {
		v -= t
	}
	return qtty.New[U](v)
}

// WrapQuarterFold folds a into [-turn/4, turn/4], the range of a latitude:
// 100° folds to 80° and -100° to -80°.
func WrapQuarterFold[U qtty.Unit[Angle]](a qtty.Quantity[U, Angle]) qtty.Quantity[U, Angle] {
	t := turn[U]()
	half, quarter := t/2, t/4
	v := WrapSigned(a).Value()
	switch {
	case v > quarter:
		v = half - v
	case v < -quarter:
		v = -half - v
	}
	return qtty.New[U](v)
}

// Separation returns a - b wrapped into (-turn/2, turn/2].
func Separation[U qtty.Unit[Angle]](a, b qtty.Quantity[U, Angle]) qtty.Quantity[U, Angle] {
	return WrapSigned(a.Sub(b))
}

// AbsSeparation returns the smallest unsigned angle between a and b.
func AbsSeparation[U qtty.Unit[Angle]](a, b qtty.Quantity[U, Angle]) qtty.Quantity[U, Angle] {
	return Separation(a, b).Abs()
}

// FromDMS builds an angle from degrees, arcminutes and arcseconds. The sign
// of deg applies to the whole angle; use a negative sec with deg == 0 and
// arcmin == 0 for small negative angles.
func FromDMS(deg, arcmin int, sec float64) Degrees {
	sign := 1.0
	if deg < 0 {
		sign = -1
		deg = -deg
	}
	return qtty.New[Degree](sign * (float64(deg) + float64(arcmin)/60 + sec/3600))
}

// FromHMS builds an hour angle from hours, minutes and seconds, with the
// sign of h applied to the whole angle.
func FromHMS(h, m int, s float64) HourAngles {
	sign := 1.0
	if h < 0 {
		sign = -1
		h = -h
	}
	return qtty.New[HourAngle](sign * (float64(h) + float64(m)/60 + s/3600))
}
