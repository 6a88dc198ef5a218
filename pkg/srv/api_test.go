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

package srv

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/aabcompass/player/pkg/config"
	"github.com/aabcompass/player/pkg/state"
)

func newTestApiServer(t *testing.T) (*ApiServer, *state.State) {
	t.Helper()
	st, err := state.NewState(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	t.Cleanup(st.Close)

	server, err := NewApiServer(context.Background(), config.NewDefaultConfig(), st)
	if err != nil {
		t.Fatalf("NewApiServer failed: %v", err)
	}
	server.configureRouter()
	return server, st
}

func TestApiRunsList(t *testing.T) {
	server, st := newTestApiServer(t)
	if _, err := st.AppendRun(&state.Run{Destination: "127.0.0.1:9090", Packets: 100}); err != nil {
		t.Fatalf("AppendRun failed: %v", err)
	}

	httpServer := httptest.NewServer(server.Router)
	defer httpServer.Close()

	resp, err := http.Get(httpServer.URL + "/api/runs")
	if err != nil {
		t.Fatalf("GET /api/runs failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var runs []*state.Run
	if err := json.NewDecoder(resp.Body).Decode(&runs); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Packets != 100 {
		t.Errorf("runs = %+v, want one run with 100 packets", runs)
	}
}

func TestApiRunGet(t *testing.T) {
	server, st := newTestApiServer(t)
	num, err := st.AppendRun(&state.Run{Destination: "127.0.0.1:9090", Records: 2})
	if err != nil {
		t.Fatalf("AppendRun failed: %v", err)
	}

	httpServer := httptest.NewServer(server.Router)
	defer httpServer.Close()

	resp, err := http.Get(httpServer.URL + "/api/runs/1")
	if err != nil {
		t.Fatalf("GET /api/runs/1 failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	run := &state.Run{}
	if err := json.NewDecoder(resp.Body).Decode(run); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	if run.Num != num || run.Records != 2 {
		t.Errorf("run = %+v, want number %d with 2 records", run, num)
	}
}

func TestApiRunGetNotFound(t *testing.T) {
	server, _ := newTestApiServer(t)

	httpServer := httptest.NewServer(server.Router)
	defer httpServer.Close()

	resp, err := http.Get(httpServer.URL + "/api/runs/99")
	if err != nil {
		t.Fatalf("GET /api/runs/99 failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
