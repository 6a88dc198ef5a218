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
	"path/filepath"
	"testing"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.filepath = filepath.Join(t.TempDir(), ConfigFile)
	return cfg
}

func TestPersistAndLoad(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.PlayerConfig.Destination = "192.168.1.10:5000"
	cfg.PlayerConfig.Channels = "12-17,30-35"
	if err := cfg.Persist(false); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	loaded := NewDefaultConfig()
	loaded.filepath = cfg.filepath
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.PlayerConfig.Destination != "192.168.1.10:5000" {
		t.Errorf("destination = %s, want 192.168.1.10:5000", loaded.PlayerConfig.Destination)
	}
	if loaded.PlayerConfig.Channels != "12-17,30-35" {
		t.Errorf("channels = %s, want 12-17,30-35", loaded.PlayerConfig.Channels)
	}
}

func TestPersistRefusesOverwrite(t *testing.T) {
	cfg := newTestConfig(t)
	if err := cfg.Persist(false); err != nil {
		t.Fatalf("first Persist failed: %v", err)
	}
	err := cfg.Persist(false)
	if _, ok := err.(ErrConfigFileExists); !ok {
		t.Fatalf("second Persist = %v, want ErrConfigFileExists", err)
	}
	if err := cfg.Persist(true); err != nil {
		t.Fatalf("Persist with overwrite failed: %v", err)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg := newTestConfig(t)
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PlayerConfig.Destination != DefaultDestination {
		t.Errorf("destination = %s, want %s", cfg.PlayerConfig.Destination, DefaultDestination)
	}
	if cfg.PlayerConfig.Pause != DefaultPause {
		t.Errorf("pause = %d, want %d", cfg.PlayerConfig.Pause, DefaultPause)
	}
}
