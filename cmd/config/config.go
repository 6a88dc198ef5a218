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

package config

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgconfig "github.com/aabcompass/player/pkg/config"
)

const (
	OverwriteOptionName = "overwrite"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage player configuration",
	}
	cmd.AddCommand(newGenerateCommand())
	cmd.AddCommand(newShowCommand())
	return cmd
}

func newGenerateCommand() *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := pkgconfig.NewDefaultConfig()
			return cfg.Persist(overwrite)
		},
	}
	cmd.Flags().BoolVar(&overwrite, OverwriteOptionName, false, "Overwrite an existing config file")
	return cmd
}

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := pkgconfig.NewDefaultConfig()
			if err := cfg.Load(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logLevel: %s\n", cfg.LogLevel)
			fmt.Fprintf(cmd.OutOrStdout(), "player: destination: %s pause: %d channels: %s\n",
				cfg.PlayerConfig.Destination, cfg.PlayerConfig.Pause, cfg.PlayerConfig.Channels)
			fmt.Fprintf(cmd.OutOrStdout(), "capture: address: %s port: %d\n",
				cfg.CaptureConfig.Address, cfg.CaptureConfig.Port)
			fmt.Fprintf(cmd.OutOrStdout(), "api: address: %s port: %d\n",
				cfg.ApiConfig.Address, cfg.ApiConfig.Port)
			return nil
		},
	}
	return cmd
}
