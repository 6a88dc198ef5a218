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
	"io/ioutil"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

type PlayerConfig struct {
	Destination string `json:"destination,omitempty"`
	// Pause between frame sends in milliseconds
	Pause int `json:"pause"`
	Channels string `json:"channels,omitempty"`
}

type CaptureConfig struct {
	Address string `json:"address,omitempty"`
	Port int `json:"port,omitempty"`
	DumpFile string `json:"dumpFile,omitempty"`
}

type ApiConfig struct {
	Address string `json:"address,omitempty"`
	Port int `json:"port,omitempty"`
}

type Config struct {
	LogLevel string `json:"logLevel,omitempty"`
	*PlayerConfig `json:"player,omitempty"`
	*CaptureConfig `json:"capture,omitempty"`
	*ApiConfig `json:"api,omitempty"`
	filepath string
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	err = ioutil.WriteFile(c.filepath, data, 0644)
	if err != nil {
		return err
	}

	return nil
}

// Load reads the config file if it exists. A missing file is not an error,
// the defaults stay in place.
func (c *Config) Load() error {
	data, err := ioutil.ReadFile(c.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

// StateDBPath returns the path of the run journal database
func (c *Config) StateDBPath() string {
	return filepath.Join(filepath.Dir(c.filepath), StateFile)
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		PlayerConfig: &PlayerConfig{
			Destination: DefaultDestination,
			Pause: DefaultPause,
			Channels: DefaultChannels,
		},
		CaptureConfig: &CaptureConfig{
			Address: DefaultCaptureAddress,
			Port: DefaultCapturePort,
		},
		ApiConfig: &ApiConfig{
			Address: DefaultApiAddress,
			Port: DefaultApiPort,
		},
		filepath: DefaultConfigPath(),
	}
}
