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
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/qtty"
)

// convertResult is the JSON form of a conversion. Value is null when the
// result is NaN or infinite.
type convertResult struct {
	Value  *float64    `json:"value"`
	Unit   string      `json:"unit"`
	UnitID qtty.UnitID `json:"unit_id"`
}

func newConvertCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between two units of the same dimension",
		Example: `  qtty convert 1000 m km
  qtty convert 1 day s
  qtty convert -- -90 deg rad`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(err, "value %q", args[0])
			}
			src, err := st.sys.Parse(args[1])
			if err != nil {
				return err
			}
			dst, err := st.sys.Parse(args[2])
			if err != nil {
				return err
			}
			out, err := st.sys.Convert(value, src, dst)
			if err != nil {
				return err
			}
			st.log.Debug("converted",
				zap.Float64("value", value),
				zap.Uint32("src", uint32(src)),
				zap.Uint32("dst", uint32(dst)),
				zap.Float64("result", out),
			)

			srcSym, _ := st.sys.SymbolOf(src)
			dstSym, _ := st.sys.SymbolOf(dst)
			w := cmd.OutOrStdout()
			if st.settings.Format == formatJSON {
				return writeJSON(w, convertResult{Value: finite(out), Unit: dstSym, UnitID: dst})
			}
			_, err = fmt.Fprintf(w, "%s %s = %s %s\n", formatFloat(value), srcSym, formatFloat(out), dstSym)
			return err
		},
	}
}
