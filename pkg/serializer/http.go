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

package serializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ContentTypeJSON is the media type for JSON responses.
	ContentTypeJSON = "application/json"
	// ContentTypeYAML is the media type for YAML responses.
	ContentTypeYAML = "application/yaml"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	respond(w, statusCode, ContentTypeJSON, buf.Bytes())
}

// RespondYAML writes a YAML response with the given status code and data.
func RespondYAML(w http.ResponseWriter, statusCode int, data any) {
	content, err := yaml.Marshal(data)
	if err != nil {
		slog.Error("yaml encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	respond(w, statusCode, ContentTypeYAML, content)
}

// Respond picks JSON or YAML based on the request Accept header.
// JSON is used unless the client explicitly asks for YAML.
func Respond(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	if r != nil && AcceptsYAML(r.Header.Get("Accept")) {
		RespondYAML(w, statusCode, data)
		return
	}
	RespondJSON(w, statusCode, data)
}

// AcceptsYAML reports whether an Accept header value prefers YAML.
func AcceptsYAML(accept string) bool {
	return strings.Contains(strings.ToLower(accept), "yaml")
}

func respond(w http.ResponseWriter, statusCode int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}
