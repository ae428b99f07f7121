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

package config

import (
	"strings"

	"dirpx.dev/qtty/apis"
)

const (
	// DefaultFoldCase represents the default for FoldCase.
	// When true, "kilometer" and "KILOMETER" both resolve to the same unit.
	DefaultFoldCase = true
	// DefaultRequireBaseUnit represents the default for RequireBaseUnit.
	DefaultRequireBaseUnit = false
	// DefaultSchemaConstraint accepts every 1.x definition listing.
	DefaultSchemaConstraint = "^1.0"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure SchemaConstraint is usable.
	if strings.TrimSpace(cfg.SchemaConstraint) == "" {
		cfg.SchemaConstraint = DefaultSchemaConstraint
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		FoldCase:         DefaultFoldCase,
		RequireBaseUnit:  DefaultRequireBaseUnit,
		SchemaConstraint: DefaultSchemaConstraint,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithFoldCase sets the FoldCase option.
func WithFoldCase(fold bool) Option {
	return func(c *apis.Config) {
		c.FoldCase = fold
	}
}

// WithRequireBaseUnit sets the RequireBaseUnit option.
func WithRequireBaseUnit(require bool) Option {
	return func(c *apis.Config) {
		c.RequireBaseUnit = require
	}
}

// WithSchemaConstraint sets the SchemaConstraint option.
// An empty constraint resets to the default.
func WithSchemaConstraint(constraint string) Option {
	return func(c *apis.Config) {
		c.SchemaConstraint = constraint
	}
}
