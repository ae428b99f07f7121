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

// NewNameStrategy creates an apis.Strategy that matches display names and
// aliases. Both an exact and a case-folded index are built up front; the
// one consulted depends on cfg.FoldCase at resolve time.
//
// A folded key shared by two units is dropped from the folded index so
// that folding never picks a unit arbitrarily.
func NewNameStrategy(table apis.Table) apis.Strategy {
	s := &nameStrategy{
		exact:  map[string]apis.UnitID{},
		folded: map[string]apis.UnitID{},
	}
	if table == nil {
		return s
	}
	ambiguous := map[string]bool{}
	for _, d := range table.Descriptors() {
		for _, l := range append([]string{d.Name}, table.Aliases(d.ID)...) {
			if key, err := label.Normalize(l, false); err == nil {
				s.exact[key] = d.ID
			}
			key, err := label.Normalize(l, true)
			if err != nil {
				continue
			}
			if prev, ok := s.folded[key]; ok && prev != d.ID {
				ambiguous[key] = true
				continue
			}
			s.folded[key] = d.ID
		}
	}
	for key := range ambiguous {
		delete(s.folded, key)
	}
	return s
}

// nameStrategy resolves "Kilometer", "kilometres", "light year".
type nameStrategy struct {
	// exact maps NFC names and aliases to units.
	exact map[string]apis.UnitID
	// folded maps NFKC case-folded names and aliases to units.
	folded map[string]apis.UnitID
}

// Ensure nameStrategy implements apis.Strategy.
var _ apis.Strategy = (*nameStrategy)(nil)

// TryResolve looks l up among names and aliases.
func (s *nameStrategy) TryResolve(l string, cfg apis.Config) (apis.UnitID, bool) {
	key, err := label.Normalize(l, cfg.FoldCase)
	if err != nil {
		return 0, false
	}
	idx := s.exact
	if cfg.FoldCase {
		idx = s.folded
	}
	id, ok := idx[key]
	return id, ok
}
