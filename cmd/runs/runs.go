/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package runs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aabcompass/player/pkg/command"
	"github.com/aabcompass/player/pkg/config"
	"github.com/aabcompass/player/pkg/state"
)

const (
	RemoteOptionName = "remote"
)

func NewCommand() *cobra.Command {
	var remote bool
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List journaled replay runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			var all []*state.Run
			var err error
			if remote {
				apiClient := command.NewApiClient(cfg)
				all, err = apiClient.ListRuns()
			} else {
				var st *state.State
				st, err = state.NewState(cfg.StateDBPath())
				if err != nil {
					return err
				}
				defer st.Close()
				all, err = st.ListRuns()
			}
			if err != nil {
				return err
			}
			for _, run := range all {
				fmt.Fprint(cmd.OutOrStdout(), run)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, RemoteOptionName, false, "Query a running player api instead of the local journal")

	return cmd
}
