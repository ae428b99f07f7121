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
	"strings"

	"github.com/spf13/cobra"
)

func newDescribeCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <unit>",
		Short: "Show the descriptor of one unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := st.sys.Parse(args[0])
			if err != nil {
				return err
			}
			d, err := st.sys.Lookup(id)
			if err != nil {
				return err
			}
			v := viewOf(st.sys, d)

			w := cmd.OutOrStdout()
			if st.settings.Format == formatJSON {
				return writeJSON(w, v)
			}
			_, err = fmt.Fprintf(w, "code:      %d\nname:      %s\nsymbol:    %s\ndimension: %s\nratio:     %s\naliases:   %s\n",
				v.Code, v.Name, v.Symbol, v.Dimension, formatFloat(v.Ratio), strings.Join(v.Aliases, ", "))
			return err
		},
	}
}
