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

package command

import (
	"errors"
	"fmt"

	"github.com/imroc/req"

	"github.com/aabcompass/player/pkg/config"
	"github.com/aabcompass/player/pkg/state"
)

// ApiClient queries a running `player api` instance
type ApiClient struct {
	*config.Config
	ApiPrefix string
}

func NewApiClient(cfg *config.Config) *ApiClient {
	return &ApiClient{
		Config: cfg,
		ApiPrefix: fmt.Sprintf("http://%s:%d/api", cfg.ApiConfig.Address, cfg.ApiConfig.Port),
	}
}

func (c *ApiClient) runsUrl() string {
	return fmt.Sprintf("%s/runs", c.ApiPrefix)
}

func (c *ApiClient) runUrl(num uint64) string {
	return fmt.Sprintf("%s/runs/%d", c.ApiPrefix, num)
}

// ListRuns sends request to get all journaled runs
func (c *ApiClient) ListRuns() ([]*state.Run, error) {
	r, err := req.Get(c.runsUrl())
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	var runs []*state.Run
	err = r.ToJSON(&runs)
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// GetRun sends request to get one journaled run
func (c *ApiClient) GetRun(num uint64) (*state.Run, error) {
	r, err := req.Get(c.runUrl(num))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	run := &state.Run{}
	err = r.ToJSON(run)
	if err != nil {
		return nil, err
	}
	return run, nil
}
