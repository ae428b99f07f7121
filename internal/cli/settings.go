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
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dirpx.dev/qtty/apis"
	"dirpx.dev/qtty/config"
)

// Settings is the merged view of flags, QTTY_* environment variables and
// the optional config file.
type Settings struct {
	Definitions      string `mapstructure:"definitions"`
	Format           string `mapstructure:"format"`
	Verbose          bool   `mapstructure:"verbose"`
	FoldCase         bool   `mapstructure:"fold_case"`
	RequireBaseUnit  bool   `mapstructure:"require_base_unit"`
	SchemaConstraint string `mapstructure:"schema_constraint"`
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{formatText, formatJSON}

const (
	formatText = "text"
	formatJSON = "json"
)

// flagKeys maps persistent flag names to their settings keys.
var flagKeys = map[string]string{
	"definitions":       "definitions",
	"format":            "format",
	"verbose":           "verbose",
	"fold-case":         "fold_case",
	"require-base-unit": "require_base_unit",
	"schema":            "schema_constraint",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("QTTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("format", formatText)
	v.SetDefault("fold_case", config.DefaultFoldCase)
	v.SetDefault("require_base_unit", config.DefaultRequireBaseUnit)
	v.SetDefault("schema_constraint", config.DefaultSchemaConstraint)
	return v
}

// loadSettings binds the persistent flags of cmd, reads configFile when set
// and decodes the result.
func loadSettings(v *viper.Viper, cmd *cobra.Command, configFile string) (Settings, error) {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Settings{}, errors.Wrapf(err, "bind flag %q", name)
			}
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errors.Wrapf(err, "read config %s", configFile)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.Wrap(err, "decode settings")
	}
	if !isValidFormat(s.Format) {
		return Settings{}, errors.Newf("invalid format %q: must be one of %v", s.Format, ValidFormats)
	}
	return s, nil
}

// Config returns the table configuration described by s.
func (s Settings) Config() apis.Config {
	return config.NewConfig(
		config.WithFoldCase(s.FoldCase),
		config.WithRequireBaseUnit(s.RequireBaseUnit),
		config.WithSchemaConstraint(s.SchemaConstraint),
	)
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
