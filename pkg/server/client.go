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
	"net/http"
	"strings"

	"k8s.io/utils/ptr"

	"github.com/zillyinc/tellus-client-version/pkg/clientversion"
	"github.com/zillyinc/tellus-client-version/pkg/errors"
	"github.com/zillyinc/tellus-client-version/pkg/gate"
	"github.com/zillyinc/tellus-client-version/pkg/serializer"
	"github.com/zillyinc/tellus-client-version/pkg/version"
)

// Query parameters accepted by /v1/client.
const (
	queryPlatform    = "platform"
	queryVersion     = "version"
	queryRequirement = "requirement"
)

// handleClient handles GET /v1/client.
//
// Without query parameters it describes the requesting client. With
// platform and version it adds lessThan/lessThanOrEqual, and with
// requirement it adds matches.
func (s *Server) handleClient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	current := clientversion.CurrentFromContext(r.Context())
	resp := newClientResponse(current)

	q := r.URL.Query()
	platformParam := strings.TrimSpace(q.Get(queryPlatform))
	versionParam := strings.TrimSpace(q.Get(queryVersion))

	if platformParam != "" || versionParam != "" {
		if platformParam == "" || versionParam == "" {
			WriteErrorFromErr(w, r, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"platform and version must be given together", map[string]any{
					queryPlatform: platformParam,
					queryVersion:  versionParam,
				}), "invalid request", nil)
			return
		}
		platform, err := clientversion.ParsePlatform(platformParam)
		if err != nil {
			badRequest(w, r, "unknown platform", err)
			return
		}

		if _, err := version.Parse(versionParam); err != nil {
			badRequest(w, r, "malformed version", err)
			return
		}

		lt, err := current.LessThan(platform, versionParam)
		if err != nil {
			badRequest(w, r, "malformed version", err)
			return
		}
		lte, err := current.LessThanOrEqual(platform, versionParam)
		if err != nil {
			badRequest(w, r, "malformed version", err)
			return
		}
		resp.LessThan = ptr.To(lt)
		resp.LessThanOrEqual = ptr.To(lte)
	}

	if q.Has(queryRequirement) {
		requirement := q.Get(queryRequirement)
		req, err := version.ParseRequirement(requirement)
		if err != nil {
			badRequest(w, r, "malformed requirement", err)
			return
		}
		matches, err := current.Satisfies(req)
		if err != nil {
			badRequest(w, r, "malformed client version", err)
			return
		}
		resp.Requirement = req.String()
		resp.Matches = ptr.To(matches)
	}

	serializer.Respond(w, r, http.StatusOK, resp)
}

// handleFeatures handles GET /v1/features.
func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	current := clientversion.CurrentFromContext(r.Context())
	gates := s.gates()

	decisions := gates.Evaluate(current)
	if decisions == nil {
		decisions = []gate.Decision{}
	}
	enabled := make([]string, 0, len(decisions))
	for _, d := range decisions {
		if d.Enabled {
			enabled = append(enabled, d.Feature)
		}
	}

	serializer.Respond(w, r, http.StatusOK, FeaturesResponse{
		Client:    newClientResponse(current),
		Enabled:   enabled,
		Decisions: decisions,
	})
}

func newClientResponse(rec clientversion.Record) ClientResponse {
	return ClientResponse{
		App:      string(rec.App()),
		Platform: string(rec.Platform()),
		Version:  rec.Version(),
		Label:    rec.FriendlyLabel(),
		Blank:    rec.IsBlank(),
	}
}

func badRequest(w http.ResponseWriter, r *http.Request, message string, err error) {
	WriteErrorFromErr(w, r, errors.Wrap(errors.ErrCodeInvalidRequest, message, err), message, nil)
}
