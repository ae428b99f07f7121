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
	"dirpx.dev/qtty/apis"
	"dirpx.dev/qtty/utils/label"
)

// NewSymbolStrategy creates an apis.Strategy that matches display symbols
// exactly (after NFC), regardless of cfg.FoldCase.
func NewSymbolStrategy(table apis.Table) apis.Strategy {
	s := &symbolStrategy{bySymbol: map[string]apis.UnitID{}}
	if table == nil {
		return s
	}
	for _, d := range table.Descriptors() {
		if key, err := label.Normalize(d.Symbol, false); err == nil {
			s.bySymbol[key] = d.ID
		}
	}
	return s
}

// symbolStrategy resolves "km", "°", "M☉".
type symbolStrategy struct {
	bySymbol map[string]apis.UnitID
}

// Ensure symbolStrategy implements apis.Strategy.
var _ apis.Strategy = (*symbolStrategy)(nil)

// TryResolve looks l up among the symbols.
func (s *symbolStrategy) TryResolve(l string, _ apis.Config) (apis.UnitID, bool) {
	key, err := label.Normalize(l, false)
	if err != nil {
		return 0, false
	}
	id, ok := s.bySymbol[key]
	return id, ok
}
