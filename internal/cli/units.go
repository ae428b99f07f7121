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

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"dirpx.dev/qtty"
	"dirpx.dev/qtty/dimension"
)

func newUnitsCommand(st *state) *cobra.Command {
	var dim string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the units of the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter dimension.ID
			if dim != "" {
				d, err := dimension.Parse(dim)
				if err != nil {
					return usageError(err)
				}
				filter = d
			}

			var rows []qtty.Descriptor
			for _, d := range st.sys.Table().Descriptors() {
				if filter == 0 || d.Dimension == filter {
					rows = append(rows, d)
				}
			}

			w := cmd.OutOrStdout()
			if st.settings.Format == formatJSON {
				views := make([]unitView, 0, len(rows))
				for _, d := range rows {
					views = append(views, viewOf(st.sys, d))
				}
				return writeJSON(w, views)
			}

			data := pterm.TableData{{"Code", "Name", "Symbol", "Dimension", "Ratio"}}
			for _, d := range rows {
				data = append(data, []string{
					fmt.Sprint(uint32(d.ID)),
					d.Name,
					d.Symbol,
					d.Dimension.String(),
					formatFloat(d.Ratio),
				})
			}
			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, out)
			return err
		},
	}

	cmd.Flags().StringVarP(&dim, "dimension", "d", "", "only list units of this dimension")
	return cmd
}
