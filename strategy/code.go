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

package strategy

import (
	"strconv"
	"strings"

	"dirpx.dev/qtty/apis"
)

// NewCodeStrategy creates an apis.Strategy that accepts a unit's numeric
// code ("101") when the code is present in table.
func NewCodeStrategy(table apis.Table) apis.Strategy {
	return &codeStrategy{table: table}
}

// codeStrategy is the last-resort strategy.
type codeStrategy struct {
	table apis.Table
}

// Ensure codeStrategy implements apis.Strategy.
var _ apis.Strategy = (*codeStrategy)(nil)

// TryResolve parses l as a decimal unit code.
func (s *codeStrategy) TryResolve(l string, _ apis.Config) (apis.UnitID, bool) {
	if s.table == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(strings.TrimSpace(l), 10, 32)
	if err != nil {
		return 0, false
	}
	id := apis.UnitID(n)
	return id, s.table.IsValid(id)
}
