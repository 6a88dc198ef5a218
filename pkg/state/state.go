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

package state

import (
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"sigs.k8s.io/yaml"

	"github.com/aabcompass/player/pkg/log"
)

const (
	RunsBucket = "runs"
)

// Run is one replay session as recorded in the run journal. The journal is
// written after the replay loop finishes, it never influences the replay.
type Run struct {
	Num uint64 `json:"Num,omitempty"`
	StartedAt time.Time `json:"StartedAt,omitempty"`
	FinishedAt time.Time `json:"FinishedAt,omitempty"`
	Destination string `json:"Destination,omitempty"`
	Channels string `json:"Channels,omitempty"`
	// PauseMs is the configured pause between frames in milliseconds
	PauseMs int `json:"PauseMs"`
	Records int `json:"Records"`
	Packets int `json:"Packets"`
	Error string `json:"Error,omitempty"`
}

func (r *Run) String() string {
	result, err := yaml.Marshal(r)
	if err != nil {
		log.Info("Error occured while marshaling run, %s", err)
		return ""
	}
	return fmt.Sprintf("---\n%s", string(result))
}

type State struct {
	DB *bbolt.DB
}

func NewState(path string) (*State, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(RunsBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &State{
		DB: db,
	}, nil
}

// Close ...
func (s *State) Close() {
	s.DB.Close()
}

// AppendRun stores a finished run under the next sequence number
func (s *State) AppendRun(run *Run) (uint64, error) {
	log.Debug("Appending run to journal: destination: %s packets: %d", run.Destination, run.Packets)
	var num uint64
	if err := s.DB.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(RunsBucket))
		if b == nil {
			return ErrBucketNotFound{Name: RunsBucket}
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		run.Num = seq
		num = seq
		runBytes, err := yaml.Marshal(run)
		if err != nil {
			return err
		}
		return b.Put(uint64ToBytes(seq), runBytes)
	}); err != nil {
		return 0, err
	}
	return num, nil
}

// GetRun ...
func (s *State) GetRun(num uint64) (*Run, error) {
	run := &Run{}
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(RunsBucket))
		if b == nil {
			return ErrBucketNotFound{Name: RunsBucket}
		}
		runBytes := b.Get(uint64ToBytes(num))
		if runBytes == nil {
			return ErrRunNotFound{Num: num}
		}
		return yaml.Unmarshal(runBytes, run)
	}); err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns all journaled runs in sequence order
func (s *State) ListRuns() ([]*Run, error) {
	var runs []*Run
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(RunsBucket))
		if b == nil {
			return ErrBucketNotFound{Name: RunsBucket}
		}
		return b.ForEach(func(k, v []byte) error {
			run := &Run{}
			if err := yaml.Unmarshal(v, run); err != nil {
				return err
			}
			runs = append(runs, run)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return runs, nil
}

func uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
