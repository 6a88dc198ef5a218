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

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aabcompass/player/cmd/api"
	"github.com/aabcompass/player/cmd/capture"
	"github.com/aabcompass/player/cmd/completion"
	"github.com/aabcompass/player/cmd/config"
	"github.com/aabcompass/player/cmd/inspect"
	"github.com/aabcompass/player/cmd/play"
	"github.com/aabcompass/player/cmd/runs"
	pkgconfig "github.com/aabcompass/player/pkg/config"
	"github.com/aabcompass/player/pkg/log"
)

const (
	LogLevelOptionName = "log-level"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	var logLevel string
	cfg := pkgconfig.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Tool to replay and inspect PDM record files",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log.Init(cmd.ErrOrStderr(), cfg.LogLevel)
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(config.NewCommand())
	cmd.AddCommand(play.NewCommand())
	cmd.AddCommand(inspect.NewCommand())
	cmd.AddCommand(capture.NewCommand())
	cmd.AddCommand(runs.NewCommand())
	cmd.AddCommand(api.NewCommand())
	cmd.AddCommand(completion.NewCommand())
	cmd.PersistentFlags().StringVar(&logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	return cmd
}
