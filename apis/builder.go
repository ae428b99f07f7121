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

package apis

// Builder composes a Table, Converter and Resolver from a Config.
type Builder interface {
	// BuildTable validates defs and freezes them into a Table.
	// A non-nil error means the table must not be used.
	BuildTable(cfg Config, defs []Definition) (Table, error)
	// BuildConverter constructs the conversion engine over table.
	BuildConverter(cfg Config, table Table) Converter
	// BuildResolver constructs a label resolver over table.
	BuildResolver(cfg Config, table Table) Resolver
}
