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

// Package dimension enumerates the physical dimensions known to qtty.
//
// Identifiers are permanent: a published ID is never reassigned and a
// dimension is never removed. New dimensions are appended with new IDs.
package dimension

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ID identifies a physical dimension.
type ID uint32

const (
	// Length is the dimension of distances (base: meter).
	Length ID = 1
	// Time is the dimension of durations (base: second).
	Time ID = 2
	// Angle is the dimension of plane angles (base: radian).
	Angle ID = 3
	// Mass is the dimension of masses (base: gram).
	Mass ID = 4
	// Power is the dimension of radiant or mechanical power (base: watt).
	Power ID = 5
)

// ErrUnknownDimension is returned by Parse for names outside the catalog.
var ErrUnknownDimension = errors.New("qtty(dimension): unknown dimension")

// names is indexed by ID; index 0 is unused.
var names = [...]string{
	Length: "length",
	Time:   "time",
	Angle:  "angle",
	Mass:   "mass",
	Power:  "power",
}

// IsKnown reports whether id belongs to the catalog.
func IsKnown(id ID) bool {
	return id != 0 && int(id) < len(names)
}

// All returns every known dimension in ascending ID order.
func All() []ID {
	out := make([]ID, 0, len(names)-1)
	for i := 1; i < len(names); i++ {
		out = append(out, ID(i))
	}
	return out
}

// Parse maps a dimension name (case-insensitive) to its ID.
func Parse(name string) (ID, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := 1; i < len(names); i++ {
		if names[i] == n {
			return ID(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownDimension, "%q", name)
}

// String returns the lower-case dimension name, or "dimension(N)" for
// identifiers outside the catalog.
func (id ID) String() string {
	if IsKnown(id) {
		return names[id]
	}
	return "dimension(" + strconv.FormatUint(uint64(id), 10) + ")"
}
