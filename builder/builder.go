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

package builder

import (
	"go.uber.org/zap"

	"dirpx.dev/qtty/apis"
	"dirpx.dev/qtty/convert"
	"dirpx.dev/qtty/dimension"
	"dirpx.dev/qtty/registry"
	"dirpx.dev/qtty/resolver"
	"dirpx.dev/qtty/strategy"
)

// Option configures a builder.
type Option func(*builder)

// WithLogger sets the logger used to report table construction.
// A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(b *builder) {
		if log != nil {
			b.log = log
		}
	}
}

// New creates and returns a new instance of an apis.Builder.
func New(opts ...Option) apis.Builder {
	b := &builder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// builder wires the registry, convert, strategy and resolver packages.
type builder struct {
	log *zap.Logger
}

// BuildTable validates defs and freezes them into an apis.Table.
func (b *builder) BuildTable(cfg apis.Config, defs []apis.Definition) (apis.Table, error) {
	t, err := registry.New(cfg, defs)
	if err != nil {
		b.log.Error("unit table rejected", zap.Int("definitions", len(defs)), zap.Error(err))
		return nil, err
	}
	dims := 0
	for _, d := range dimension.All() {
		if t.IsKnownDimension(d) {
			dims++
		}
	}
	b.log.Debug("unit table built",
		zap.Int("units", t.Count()),
		zap.Int("dimensions", dims),
		zap.Bool("require_base_unit", cfg.RequireBaseUnit),
	)
	return t, nil
}

// BuildConverter returns the ratio-composition engine over table.
func (b *builder) BuildConverter(_ apis.Config, table apis.Table) apis.Converter {
	return convert.New(table)
}

// BuildResolver chains the label strategies: exact symbols first, then
// names and aliases, then numeric codes.
func (b *builder) BuildResolver(_ apis.Config, table apis.Table) apis.Resolver {
	return resolver.New(
		strategy.NewSymbolStrategy(table),
		strategy.NewNameStrategy(table),
		strategy.NewCodeStrategy(table),
	)
}
