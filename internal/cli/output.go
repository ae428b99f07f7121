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
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"dirpx.dev/qtty"
)

// Exit codes of the qtty binary.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Unknown unit, incompatible dimensions or a bad value
	ExitCommandError = 2 // Bad flags, config or unit listing
)

// errUsage marks errors that exit with ExitCommandError.
var errUsage = errors.New("usage")

func usageError(err error) error {
	return errors.Mark(err, errUsage)
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errUsage):
		return ExitCommandError
	default:
		return ExitFailure
	}
}

// Execute runs the CLI with args and returns the exit status. Errors are
// printed to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprint(stderr, pterm.Error.Sprintln(err))
	}
	return ExitCode(err)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// unitView is the JSON shape of one table row.
type unitView struct {
	Code      qtty.UnitID `json:"code"`
	Name      string      `json:"name"`
	Symbol    string      `json:"symbol"`
	Dimension string      `json:"dimension"`
	Ratio     float64     `json:"ratio"`
	Aliases   []string    `json:"aliases,omitempty"`
}

func viewOf(sys *qtty.System, d qtty.Descriptor) unitView {
	return unitView{
		Code:      d.ID,
		Name:      d.Name,
		Symbol:    d.Symbol,
		Dimension: d.Dimension.String(),
		Ratio:     d.Ratio,
		Aliases:   sys.Table().Aliases(d.ID),
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
