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

// Package qtty provides strongly typed physical quantities backed by a
// frozen, process-wide unit table.
//
// A unit is an opaque permanent code (101 is the kilometer) described by a
// table row: dimension, display name, symbol and a ratio to the dimension's
// base unit. Every conversion is value * src.Ratio / dst.Ratio; there are no
// pairwise factors.
//
// # Design
//
// The package is built from small layers, each behind an interface in apis:
//
//   - Table: the unit descriptor table, validated once and then frozen.
//     Duplicate codes, ratios that are not positive and finite, and
//     conflicting labels reject the whole table.
//
//   - Converter: the dynamic conversion engine. Unknown codes fail with
//     *UnknownUnitError and cross-dimension conversions with
//     *IncompatibleDimensionError. NaN and infinities pass through.
//
//   - Resolver: turns labels ("km", "kilometres", "101") into codes by
//     chaining strategies.
//
//   - Builder: wires the three from a Config and a unit listing.
//
// A System owns one Table, Converter and Resolver. Default returns the
// System built during package initialization from the embedded listing; a
// listing that fails validation panics in init, so no caller can reach a
// corrupt table. Nothing in the package mutates a System after NewSystem
// returns, so every read is safe for concurrent use without locks.
//
// # Static quantities
//
// Quantity[U, D] carries its unit in the type. Unit tags live in package
// units:
//
//	d := qtty.New[units.Meter](1000)
//	km := qtty.To[units.Kilometer](d) // 1 km
//	_ = d.Add(qtty.To[units.Meter](km))
//
// To only compiles when the target shares the dimension of the source.
// Add and Sub require identical units; Mul and Div take plain numbers.
// Ratio divides two quantities of one dimension into a number, and Per
// forms a Rate such as meters per second without converting either side.
//
// # Dynamic quantities
//
// Measurement carries its unit as a code for callers that only learn units
// at run time. FromMeasurement lifts a Measurement into a static Quantity,
// failing with the same errors as Convert. Package abi exposes the same
// operations with status codes for foreign callers.
package qtty
