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

package player

import (
	"io"
	"time"

	"github.com/aabcompass/player/pkg/layers"
	"github.com/aabcompass/player/pkg/log"
)

// Player replays records from an input stream as UDP datagrams, one datagram
// per frame, with a fixed pause between frames. The loop is fully sequential:
// read, extract, emit, sleep. The pause is the rate limiter.
type Player struct {
	Selection Selection
	Pause time.Duration
	Emitter Emitter

	// cumulative counters, diagnostics only
	RecordsPlayed int
	PacketsSent int
}

func NewPlayer(selection Selection, pause time.Duration, emitter Emitter) *Player {
	return &Player{
		Selection: selection,
		Pause: pause,
		Emitter: emitter,
	}
}

// Run plays the stream until a clean end of stream or a terminal error.
// On a truncated stream the packets already sent stand and the error is
// returned after the loop stops.
func (p *Player) Run(src io.Reader) error {
	reader := NewRecordReader(src)
	for {
		record, err := reader.Next()
		if err == io.EOF {
			log.Info("End of stream: records: %d packets: %d", p.RecordsPlayed, p.PacketsSent)
			return nil
		}
		if err != nil {
			return err
		}

		p.RecordsPlayed++
		log.Debug("Playing record %d", p.RecordsPlayed)

		for frame := 0; frame < layers.FramesPerRecord; frame++ {
			payload, err := FramePayload(record, frame, p.Selection)
			if err != nil {
				return err
			}
			// an empty payload is never sent
			if len(payload) > 0 {
				if err := p.Emitter.Emit(payload); err != nil {
					return err
				}
				p.PacketsSent++
				log.Debug("Sent packet %d: record: %d frame: %d size: %d",
					p.PacketsSent, p.RecordsPlayed, frame+1, len(payload))
			}
			time.Sleep(p.Pause)
		}
	}
}
