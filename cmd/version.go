/*
   Copyright 2025-2026 The teemux authors

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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetReleaseInfo records build time release information injected by the
// linker, so the version command can report it.
func SetReleaseInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd *cobra.Command = &cobra.Command{
	Use:   "version",
	Short: "Print the teemux version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("teemux version %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	Root.AddCommand(versionCmd)
}
