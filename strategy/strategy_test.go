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

package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/qtty/apis"
	"dirpx.dev/qtty/config"
	"dirpx.dev/qtty/definition"
	"dirpx.dev/qtty/registry"
	"dirpx.dev/qtty/strategy"
)

func defaultTable(t *testing.T) apis.Table {
	t.Helper()
	cfg := config.DefaultConfig()
	defs, err := definition.Default(cfg)
	require.NoError(t, err)
	tab, err := registry.New(cfg, defs)
	require.NoError(t, err)
	return tab
}

func TestSymbolStrategy(t *testing.T) {
	s := strategy.NewSymbolStrategy(defaultTable(t))
	conf := config.DefaultConfig()

	cases := []struct {
		label string
		want  apis.UnitID
		ok    bool
	}{
		{"km", 101, true},
		{" m ", 100, true},
		{"°", 301, true},
		{"M☉", 402, true},
		{"W", 500, true},
		{"KM", 0, false},
		{"w", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := s.TryResolve(tc.label, conf)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("TryResolve(%q) = (%d,%v), want (%d,%v)", tc.label, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNameStrategy(t *testing.T) {
	s := strategy.NewNameStrategy(defaultTable(t))
	fold := config.NewConfig(config.WithFoldCase(true))
	exact := config.NewConfig(config.WithFoldCase(false))

	cases := []struct {
		label string
		conf  apis.Config
		want  apis.UnitID
		ok    bool
	}{
		{"Kilometer", exact, 101, true},
		{"kilometer", exact, 0, false},
		{"kilometer", fold, 101, true},
		{"KILOMETRES", fold, 101, true},
		{"Light  Year", fold, 103, true},
		{"deg", exact, 301, true},
		{"Hour Angle", fold, 304, true},
		{"furlong", fold, 0, false},
	}
	for _, tc := range cases {
		got, ok := s.TryResolve(tc.label, tc.conf)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("TryResolve(%q, fold=%v) = (%d,%v), want (%d,%v)", tc.label, tc.conf.FoldCase, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNameStrategyDropsAmbiguousFoldedLabels(t *testing.T) {
	cfg := config.DefaultConfig()
	tab, err := registry.New(cfg, []apis.Definition{
		{Code: 1, Dimension: "length", Name: "Mm", Symbol: "Mm", Ratio: 1e6},
		{Code: 2, Dimension: "length", Name: "mm", Symbol: "mm", Ratio: 1e-3},
	})
	require.NoError(t, err)
	s := strategy.NewNameStrategy(tab)

	if _, ok := s.TryResolve("MM", cfg); ok {
		t.Fatalf("TryResolve(MM) resolved an ambiguous folded label")
	}
	got, ok := s.TryResolve("Mm", config.NewConfig(config.WithFoldCase(false)))
	if !ok || got != 1 {
		t.Fatalf("TryResolve(Mm, exact) = (%d,%v), want (1,true)", got, ok)
	}
}

func TestCodeStrategy(t *testing.T) {
	s := strategy.NewCodeStrategy(defaultTable(t))
	conf := config.DefaultConfig()

	if got, ok := s.TryResolve("101", conf); !ok || got != 101 {
		t.Fatalf("TryResolve(101) = (%d,%v), want (101,true)", got, ok)
	}
	for _, l := range []string{"9999", "-1", "km", "4294967296", ""} {
		if got, ok := s.TryResolve(l, conf); ok {
			t.Fatalf("TryResolve(%q) = (%d,true), want miss", l, got)
		}
	}
}

func TestNilTable(t *testing.T) {
	conf := config.DefaultConfig()
	for _, s := range []apis.Strategy{
		strategy.NewSymbolStrategy(nil),
		strategy.NewNameStrategy(nil),
		strategy.NewCodeStrategy(nil),
	} {
		if _, ok := s.TryResolve("1", conf); ok {
			t.Fatalf("%T resolved with a nil table", s)
		}
	}
}
