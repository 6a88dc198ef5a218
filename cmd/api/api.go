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

package api

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aabcompass/player/pkg/config"
	"github.com/aabcompass/player/pkg/srv"
	"github.com/aabcompass/player/pkg/state"
)

const (
	AddressOptionName = "address"
	PortOptionName = "port"
)

func NewCommand() *cobra.Command {
	var address string
	var port int
	cfg := config.NewDefaultConfig()
	cfg.Load()
	apiConfig := cfg.ApiConfig
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Serve the run journal over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				apiConfig.Address = address
			}
			if cmd.Flags().Changed(PortOptionName) {
				apiConfig.Port = port
			}

			st, err := state.NewState(cfg.StateDBPath())
			if err != nil {
				return err
			}
			defer st.Close()

			server, err := srv.NewApiServer(context.Background(), cfg, st)
			if err != nil {
				return err
			}
			return server.Run()
		},
	}
	cmd.Flags().StringVar(&address, AddressOptionName, "", "Address to bind. E.g. 127.0.0.1")
	cmd.Flags().IntVar(&port, PortOptionName, config.DefaultApiPort, "Port number to bind")

	return cmd
}
