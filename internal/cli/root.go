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
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/qtty"
	"dirpx.dev/qtty/apis"
	"dirpx.dev/qtty/builder"
	"dirpx.dev/qtty/config"
	"dirpx.dev/qtty/definition"
)

// state is shared by the root command and its subcommands. It is filled
// by the root PersistentPreRunE.
type state struct {
	configFile string
	settings   Settings
	log        *zap.Logger
	sys        *qtty.System
}

// NewRootCommand creates the root command of the qtty CLI.
func NewRootCommand() *cobra.Command {
	st := &state{log: zap.NewNop()}
	v := newViper()

	cmd := &cobra.Command{
		Use:   "qtty",
		Short: "qtty - typed physical quantities",
		Long: `qtty converts values between units of length, time, angle, mass and power.

Units are named by symbol ("km"), name ("Kilometer"), alias ("kilometres")
or numeric code ("101").

Examples:
  qtty convert 1000 m km
  qtty convert 180 deg rad --format json
  qtty units --dimension angle
  qtty describe pc`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v, cmd, st.configFile)
			if err != nil {
				return usageError(err)
			}
			st.settings = s
			if s.Verbose {
				log, err := zap.NewDevelopment()
				if err != nil {
					return errors.Wrap(err, "init logger")
				}
				st.log = log
			}
			sys, err := st.system()
			if err != nil {
				return usageError(err)
			}
			st.sys = sys
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = st.log.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&st.configFile, "config", "", "config file (toml, yaml or json)")
	flags.String("definitions", "", "unit listing replacing the built-in table (.toml, .yaml)")
	flags.String("format", formatText, "output format (json|text)")
	flags.BoolP("verbose", "v", false, "verbose logging on stderr")
	flags.Bool("fold-case", config.DefaultFoldCase, "resolve unit names case-insensitively")
	flags.Bool("require-base-unit", config.DefaultRequireBaseUnit, "reject listings without a ratio-1 unit per dimension")
	flags.String("schema", config.DefaultSchemaConstraint, "accepted listing schema versions (semver constraint)")

	cmd.AddCommand(newConvertCommand(st))
	cmd.AddCommand(newUnitsCommand(st))
	cmd.AddCommand(newDescribeCommand(st))
	cmd.AddCommand(newVersionCommand(st))

	return cmd
}

// system returns the process-wide System unless the settings ask for a
// different listing or configuration.
func (st *state) system() (*qtty.System, error) {
	cfg := st.settings.Config()
	if st.settings.Definitions == "" && cfg == config.DefaultConfig() {
		return qtty.Default(), nil
	}

	var (
		defs []apis.Definition
		err  error
	)
	if st.settings.Definitions != "" {
		defs, err = definition.Load(st.settings.Definitions, cfg)
	} else {
		defs, err = definition.Default(cfg)
	}
	if err != nil {
		return nil, err
	}
	st.log.Debug("loaded unit listing",
		zap.String("path", st.settings.Definitions),
		zap.Int("rows", len(defs)),
	)
	return qtty.NewSystem(cfg, defs, builder.WithLogger(st.log))
}
