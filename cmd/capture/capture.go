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

package capture

import (
	"github.com/spf13/cobra"

	"github.com/aabcompass/player/pkg/config"
	"github.com/aabcompass/player/pkg/srv"
)

const (
	AddressOptionName = "address"
	PortOptionName = "port"
	DumpFileOptionName = "dump-file"
)

func NewCommand() *cobra.Command {
	var address, dumpFile string
	var port int
	cfg := config.NewDefaultConfig()
	cfg.Load()
	captureConfig := cfg.CaptureConfig
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Receive replayed frames, decode and count them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				captureConfig.Address = address
			}
			if cmd.Flags().Changed(PortOptionName) {
				captureConfig.Port = port
			}
			if dumpFile != "" {
				captureConfig.DumpFile = dumpFile
			}

			server, err := srv.NewCaptureServer(cfg)
			if err != nil {
				return err
			}
			return server.Run()
		},
	}
	cmd.Flags().StringVar(&address, AddressOptionName, "", "Address to bind. E.g. 0.0.0.0")
	cmd.Flags().IntVar(&port, PortOptionName, config.DefaultCapturePort, "Port number to bind")
	cmd.Flags().StringVar(&dumpFile, DumpFileOptionName, "", "Dump raw frame payloads to this file")

	return cmd
}
