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

package label

import (
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyLabel is returned when a label is empty after trimming.
var ErrEmptyLabel = errors.New("label: empty unit label")

// Normalize canonicalizes a unit label for index lookups.
//
// Normalization policy:
//   - surrounding white space is removed and inner runs collapse to one space;
//   - without fold the label is put in NFC, so precomposed and decomposed
//     spellings of the same symbol compare equal;
//   - with fold the label is put in NFKC and Unicode case-folded, so
//     "KILOMETRE", "kilometre" and "ｋｉｌｏｍｅｔｒｅ" compare equal.
func Normalize(s string, fold bool) (string, error) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "", ErrEmptyLabel
	}
	if !fold {
		return norm.NFC.String(s), nil
	}
	// A Caser is stateful; build one per call.
	return cases.Fold().String(norm.NFKC.String(s)), nil
}
