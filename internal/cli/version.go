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

	"github.com/spf13/cobra"

	"dirpx.dev/qtty/abi"
)

// Version is set at link time with -ldflags "-X dirpx.dev/qtty/internal/cli.Version=...".
var Version = "dev"

type versionInfo struct {
	Version string `json:"version"`
	ABI     uint32 `json:"abi"`
	Units   int    `json:"units"`
}

func newVersionCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{Version: Version, ABI: abi.Version, Units: st.sys.Table().Count()}
			w := cmd.OutOrStdout()
			if st.settings.Format == formatJSON {
				return writeJSON(w, info)
			}
			_, err := fmt.Fprintf(w, "qtty %s (abi %d, %d units)\n", info.Version, info.ABI, info.Units)
			return err
		},
	}
}
