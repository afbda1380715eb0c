// Copyright (c) 2025, Zilly Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zillyinc/tellus-client-version/pkg/errors"
	"github.com/zillyinc/tellus-client-version/pkg/serializer"
)

const (
	pathRoot     = "/"
	pathHealth   = "/health"
	pathReady    = "/ready"
	pathMetrics  = "/metrics"
	pathClient   = "/v1/client"
	pathFeatures = "/v1/features"
)

var reservedPaths = map[string]bool{
	pathHealth:   true,
	pathReady:    true,
	pathMetrics:  true,
	pathClient:   true,
	pathFeatures: true,
}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc(pathHealth, s.handleHealth)
	mux.HandleFunc(pathReady, s.handleReady)
	mux.Handle(pathMetrics, promhttp.Handler())

	// API endpoints with middleware
	mux.HandleFunc(pathClient, s.withMiddleware(s.handleClient))
	mux.HandleFunc(pathFeatures, s.withMiddleware(s.handleFeatures))

	// Additional handlers, including the default root handler
	for path, h := range s.config.Handlers {
		if reservedPaths[path] {
			slog.Warn("ignoring handler for reserved path", "path", path)
			continue
		}
		mux.HandleFunc(path, s.withMiddleware(h))
	}

	return mux
}

// routes lists the paths served, for the index response.
func (s *Server) routes() []string {
	out := []string{
		"GET /v1/client",
		"GET /v1/features",
		"GET /health",
		"GET /ready",
		"GET /metrics",
	}
	extra := make([]string, 0, len(s.config.Handlers))
	for path := range s.config.Handlers {
		if path == pathRoot || reservedPaths[path] {
			continue
		}
		extra = append(extra, path)
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// handleDefault handles GET / with the server index.
func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != pathRoot {
		WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound, "Not found", false,
			map[string]any{"path": r.URL.Path})
		return
	}
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.IsReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
