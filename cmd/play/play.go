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

package play

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aabcompass/player/pkg/config"
	"github.com/aabcompass/player/pkg/log"
	"github.com/aabcompass/player/pkg/player"
	"github.com/aabcompass/player/pkg/state"
)

const (
	DestinationOptionName = "destination"
	PauseOptionName = "pause"
	ChannelsOptionName = "channels"
	VerboseOptionName = "verbose"
)

func NewCommand() *cobra.Command {
	var destination, channels string
	var pause int
	var verbose bool
	cfg := config.NewDefaultConfig()
	cfg.Load()
	playerConfig := cfg.PlayerConfig
	cmd := &cobra.Command{
		Use:   "play [filename]",
		Short: "Replay a PDM record file as UDP datagrams, one datagram per frame",
		Long: "Replay a PDM record file as UDP datagrams, one datagram per frame.\n" +
			"When no filename is given records are read from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel("debug")
			}
			if destination != "" {
				playerConfig.Destination = destination
			}
			if cmd.Flags().Changed(PauseOptionName) {
				playerConfig.Pause = pause
			}
			if channels != "" {
				playerConfig.Channels = channels
			}

			// both must be valid before any socket or file is opened
			addr, err := player.ParseDestination(playerConfig.Destination)
			if err != nil {
				return err
			}
			selection, err := player.ParseSelection(playerConfig.Channels)
			if err != nil {
				return err
			}

			var src io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				src = file
			} else {
				log.Info("Reading records from stdin")
			}

			emitter, err := player.NewUDPEmitter(addr)
			if err != nil {
				return err
			}
			defer emitter.Close()

			p := player.NewPlayer(selection, time.Duration(playerConfig.Pause)*time.Millisecond, emitter)
			startedAt := time.Now()
			runErr := p.Run(src)
			journal(cfg, p, startedAt, runErr)
			return runErr
		},
	}
	cmd.Flags().StringVar(&destination, DestinationOptionName, "", "Destination address, ip:port. E.g. 127.0.0.1:9090")
	cmd.Flags().IntVar(&pause, PauseOptionName, config.DefaultPause, "Pause between frame sends in milliseconds")
	cmd.Flags().StringVar(&channels, ChannelsOptionName, "", "Channels to forward. Either \"all\" or ranges like 12-17,30-35")
	cmd.Flags().BoolVarP(&verbose, VerboseOptionName, "v", false, "Log every sent frame")

	return cmd
}

// journal appends the finished run to the run journal. Best effort, a journal
// failure never fails the replay.
func journal(cfg *config.Config, p *player.Player, startedAt time.Time, runErr error) {
	st, err := state.NewState(cfg.StateDBPath())
	if err != nil {
		log.Warning("Error while opening run journal: %s", err)
		return
	}
	defer st.Close()

	run := &state.Run{
		StartedAt: startedAt,
		FinishedAt: time.Now(),
		Destination: cfg.PlayerConfig.Destination,
		Channels: cfg.PlayerConfig.Channels,
		PauseMs: cfg.PlayerConfig.Pause,
		Records: p.RecordsPlayed,
		Packets: p.PacketsSent,
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}
	if _, err := st.AppendRun(run); err != nil {
		log.Warning("Error while appending run to journal: %s", err)
	}
}
