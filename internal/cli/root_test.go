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

package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "qtty", cmd.Use)

	for _, name := range []string{"convert", "units", "describe", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	schema := cmd.PersistentFlags().Lookup("schema")
	require.NotNil(t, schema)
	assert.Equal(t, "^1.0", schema.DefValue)
}

func TestConvertGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"convert_text", []string{"convert", "1000", "m", "km"}},
		{"convert_json", []string{"convert", "1000", "m", "km", "--format", "json"}},
		{"describe_meter_text", []string{"describe", "meter"}},
		{"describe_km_json", []string{"describe", "km", "--format", "json"}},
		{"units_mass_json", []string{"units", "--dimension", "mass", "--format", "json"}},
		{"version_json", []string{"version", "--format", "json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			golden(t).Assert(t, tt.name, []byte(out))
		})
	}
}

func TestConvertScenarios(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "1", "h", "min"}, "1 h = 60 min\n"},
		{[]string{"convert", "1", "day", "s"}, "1 d = 86400 s\n"},
		{[]string{"convert", "2", "Kilometer", "101"}, "2 km = 2 km\n"},
		{[]string{"convert", "1", "kilometres", "m"}, "1 km = 1000 m\n"},
	}
	for _, tt := range tests {
		out, err := run(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}
}

func TestConvertNonFinite(t *testing.T) {
	out, err := run(t, "convert", "NaN", "m", "km", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": null, "unit": "km", "unit_id": 101}`, out)

	out, err = run(t, "convert", "+Inf", "h", "s", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": null, "unit": "s", "unit_id": 200}`, out)

	out, err = run(t, "convert", "NaN", "m", "km")
	require.NoError(t, err)
	assert.Equal(t, "NaN m = NaN km\n", out)
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"incompatible", []string{"convert", "1", "m", "s"}, ExitFailure},
		{"unknown unit", []string{"convert", "1", "parsnip", "m"}, ExitFailure},
		{"bad value", []string{"convert", "abc", "m", "km"}, ExitFailure},
		{"bad format", []string{"convert", "1", "m", "km", "--format", "xml"}, ExitCommandError},
		{"bad dimension", []string{"units", "--dimension", "charge"}, ExitCommandError},
		{"missing listing", []string{"units", "--definitions", "does-not-exist.toml"}, ExitCommandError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, ExitCode(err))
		})
	}
}

func TestExecute(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, ExitSuccess, Execute([]string{"convert", "2", "hours", "min"}, &out, &errOut))
	assert.Equal(t, "2 h = 120 min\n", out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	assert.Equal(t, ExitFailure, Execute([]string{"convert", "1", "m", "s"}, &out, &errOut))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "incompatible dimension")
}

func TestUnitsText(t *testing.T) {
	out, err := run(t, "units")
	require.NoError(t, err)
	for _, want := range []string{"Code", "Symbol", "AstronomicalUnit", "1.495978707e+11", "SolarLuminosity"} {
		assert.Contains(t, out, want)
	}

	out, err = run(t, "units", "-d", "TIME")
	require.NoError(t, err)
	assert.Contains(t, out, "JulianCentury")
	assert.NotContains(t, out, "Meter")
}

const furlongListing = `
schema = "1.0.0"

[[units]]
code = 100
dimension = "length"
name = "Meter"
symbol = "m"
ratio = 1

[[units]]
code = 900
dimension = "length"
name = "Furlong"
symbol = "fur"
ratio = 201.168
aliases = ["furlongs"]
`

func TestCustomDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.toml")
	require.NoError(t, os.WriteFile(path, []byte(furlongListing), 0o644))

	out, err := run(t, "convert", "1", "furlongs", "m", "--definitions", path)
	require.NoError(t, err)
	assert.Equal(t, "1 fur = 201.168 m\n", out)

	_, err = run(t, "convert", "1", "km", "m", "--definitions", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))

	_, err = run(t, "units", "--definitions", path, "--schema", ">= 2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, ExitCode(err))
}

func TestSettingsSources(t *testing.T) {
	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "qtty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o644))

		out, err := run(t, "convert", "1000", "m", "km", "--config", path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"value": 1, "unit": "km", "unit_id": 101}`, out)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("QTTY_FORMAT", "json")
		out, err := run(t, "version")
		require.NoError(t, err)
		assert.JSONEq(t, `{"version": "dev", "abi": 1, "units": 30}`, out)
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		t.Setenv("QTTY_FORMAT", "json")
		out, err := run(t, "version", "--format", "text")
		require.NoError(t, err)
		assert.Equal(t, "qtty dev (abi 1, 30 units)\n", out)
	})

	t.Run("fold case off", func(t *testing.T) {
		_, err := run(t, "describe", "KILOMETER", "--fold-case=false")
		require.Error(t, err)
		assert.Equal(t, ExitFailure, ExitCode(err))

		out, err := run(t, "describe", "KILOMETER")
		require.NoError(t, err)
		assert.Contains(t, out, "name:      Kilometer")
	})
}
