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

// Config carries read-only knobs for table building and label resolution.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// FoldCase makes name and alias matching case-insensitive.
	// Symbols always match exactly first, so "m" and "M" stay distinct.
	FoldCase bool

	// RequireBaseUnit rejects tables in which some dimension has no unit
	// with ratio exactly 1. Off by default: the base is a convention.
	RequireBaseUnit bool

	// SchemaConstraint is the semver constraint a definition listing's
	// schema version must satisfy.
	SchemaConstraint string
}
