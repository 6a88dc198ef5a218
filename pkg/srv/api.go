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
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/aabcompass/player/pkg/config"
	"github.com/aabcompass/player/pkg/log"
	"github.com/aabcompass/player/pkg/state"
)

// ApiServer serves the run journal over HTTP
type ApiServer struct {
	context.Context
	*config.Config
	*mux.Router
	state *state.State
}

func NewApiServer(ctx context.Context, cfg *config.Config, st *state.State) (*ApiServer, error) {
	log.Info("Initializing API server with address: %s port: %d",
		cfg.ApiConfig.Address, cfg.ApiConfig.Port)

	s := &ApiServer{
		Context: ctx,
		Config:  cfg,
		state:   st,
	}
	return s, nil
}

// Start
func (s *ApiServer) Run() error {
	log.Debug("Starting API server: address: %s port: %d", s.Config.ApiConfig.Address, s.Config.ApiConfig.Port)
	s.configureRouter()
	httpServer := &http.Server{
		Handler: handlers.CombinedLoggingHandler(os.Stderr, s.Router),
		Addr:    fmt.Sprintf("%s:%d", s.Config.ApiConfig.Address, s.Config.ApiConfig.Port),
	}
	return httpServer.ListenAndServe()
}

func (s *ApiServer) configureRouter() {
	s.Router = mux.NewRouter()
	subRouter := s.Router.PathPrefix("/api").Subrouter()
	subRouter.HandleFunc("/runs", s.handleRunsList()).Methods("GET")
	subRouter.HandleFunc("/runs/{num:[0-9]+}", s.handleRunGet()).Methods("GET")
}

func (s *ApiServer) handleRunsList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runs, err := s.state.ListRuns()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(runs)
	}
}

func (s *ApiServer) handleRunGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		num, err := strconv.ParseUint(vars["num"], 10, 64)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		run, err := s.state.GetRun(num)
		if err != nil {
			if _, ok := err.(state.ErrRunNotFound); ok {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(run)
	}
}
