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
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/aabcompass/player/pkg/layers"
)

type fakeEmitter struct {
	payloads [][]byte
	sentAt []time.Time
	err error
}

func (e *fakeEmitter) Emit(payload []byte) error {
	if e.err != nil {
		return e.err
	}
	copied := make([]byte, len(payload))
	copy(copied, payload)
	e.payloads = append(e.payloads, copied)
	e.sentAt = append(e.sentAt, time.Now())
	return nil
}

func TestPlayerEmptyStream(t *testing.T) {
	emitter := &fakeEmitter{}
	p := NewPlayer(AllChannels(), 0, emitter)

	if err := p.Run(bytes.NewReader(nil)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(emitter.payloads) != 0 {
		t.Errorf("sent %d packets, want 0", len(emitter.payloads))
	}
	if p.RecordsPlayed != 0 || p.PacketsSent != 0 {
		t.Errorf("counters = %d/%d, want 0/0", p.RecordsPlayed, p.PacketsSent)
	}
}

func TestPlayerTwoRecords(t *testing.T) {
	record := makeRecord()
	stream := append(append([]byte{}, record...), record...)

	emitter := &fakeEmitter{}
	p := NewPlayer(AllChannels(), 0, emitter)
	if err := p.Run(bytes.NewReader(stream)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if p.RecordsPlayed != 2 {
		t.Errorf("RecordsPlayed = %d, want 2", p.RecordsPlayed)
	}
	if p.PacketsSent != 2*layers.FramesPerRecord {
		t.Errorf("PacketsSent = %d, want %d", p.PacketsSent, 2*layers.FramesPerRecord)
	}
	// strict record-then-frame order: packet i of a record carries frame i
	for i, payload := range emitter.payloads {
		frame := i % layers.FramesPerRecord
		if payload[0] != pmtByte(frame, 0) {
			t.Fatalf("packet %d does not carry frame %d", i, frame)
		}
		if len(payload) != layers.PMTsPerFrame*layers.PMTDataSize {
			t.Fatalf("packet %d length = %d, want %d", i, len(payload), layers.PMTsPerFrame*layers.PMTDataSize)
		}
	}
}

func TestPlayerTruncatedTail(t *testing.T) {
	record := makeRecord()
	stream := append(append([]byte{}, record...), make([]byte, 1000)...)

	emitter := &fakeEmitter{}
	p := NewPlayer(AllChannels(), 0, emitter)
	err := p.Run(bytes.NewReader(stream))
	if _, ok := err.(ErrTruncated); !ok {
		t.Fatalf("Run = %v, want ErrTruncated", err)
	}

	// the full first record was played before the truncation stopped the run
	if p.PacketsSent != layers.FramesPerRecord {
		t.Errorf("PacketsSent = %d, want %d", p.PacketsSent, layers.FramesPerRecord)
	}
	if p.RecordsPlayed != 1 {
		t.Errorf("RecordsPlayed = %d, want 1", p.RecordsPlayed)
	}
}

func TestPlayerTruncatedOnly(t *testing.T) {
	emitter := &fakeEmitter{}
	p := NewPlayer(AllChannels(), 0, emitter)
	err := p.Run(bytes.NewReader(make([]byte, layers.RecordSize-1)))
	if _, ok := err.(ErrTruncated); !ok {
		t.Fatalf("Run = %v, want ErrTruncated", err)
	}
	if p.PacketsSent != 0 {
		t.Errorf("PacketsSent = %d, want 0", p.PacketsSent)
	}
}

func TestPlayerPausesBetweenSends(t *testing.T) {
	record := makeRecord()
	pause := 5 * time.Millisecond

	emitter := &fakeEmitter{}
	p := NewPlayer(AllChannels(), pause, emitter)
	if err := p.Run(bytes.NewReader(record)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(emitter.sentAt) != layers.FramesPerRecord {
		t.Fatalf("sent %d packets, want %d", len(emitter.sentAt), layers.FramesPerRecord)
	}
	// time.Sleep guarantees at least the pause, so every inter-send gap must
	// reach it; no upper bound, the scheduler may stretch gaps arbitrarily
	for i := 1; i < len(emitter.sentAt); i++ {
		if gap := emitter.sentAt[i].Sub(emitter.sentAt[i-1]); gap < pause {
			t.Fatalf("gap between packets %d and %d = %v, want >= %v", i-1, i, gap, pause)
		}
	}
}

func TestPlayerEmptySelectionSendsNothing(t *testing.T) {
	record := makeRecord()
	pause := time.Millisecond

	emitter := &fakeEmitter{}
	p := NewPlayer(nil, pause, emitter)
	start := time.Now()
	if err := p.Run(bytes.NewReader(record)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	elapsed := time.Since(start)

	if len(emitter.payloads) != 0 {
		t.Errorf("sent %d packets, want 0", len(emitter.payloads))
	}
	if p.RecordsPlayed != 1 || p.PacketsSent != 0 {
		t.Errorf("counters = %d/%d, want 1/0", p.RecordsPlayed, p.PacketsSent)
	}
	// the pause is still taken for every frame, skipped or not
	if want := layers.FramesPerRecord * pause; elapsed < want {
		t.Errorf("run took %v, want >= %v", elapsed, want)
	}
}

func TestPlayerStopsOnEmitError(t *testing.T) {
	record := makeRecord()
	wantErr := errors.New("socket gone")
	emitter := &fakeEmitter{err: wantErr}
	p := NewPlayer(AllChannels(), 0, emitter)
	if err := p.Run(bytes.NewReader(record)); err != wantErr {
		t.Fatalf("Run = %v, want %v", err, wantErr)
	}
}
