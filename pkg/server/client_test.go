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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zillyinc/tellus-client-version/pkg/gate"
)

func doClientRequest(t *testing.T, s *Server, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeClient(t *testing.T, w *httptest.ResponseRecorder) ClientResponse {
	t.Helper()
	var resp ClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestHandleClient_Describe(t *testing.T) {
	s := New()

	w := doClientRequest(t, s, "/v1/client", map[string]string{"X-Zilly-WebApp-Version": "2.1.0"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeClient(t, w)
	assert.Equal(t, "zilly", resp.App)
	assert.Equal(t, "web_app", resp.Platform)
	assert.Equal(t, "2.1.0", resp.Version)
	assert.Equal(t, "Zilly Web_app 2.1.0", resp.Label)
	assert.False(t, resp.Blank)
	assert.Nil(t, resp.LessThan)
	assert.Nil(t, resp.Matches)
}

func TestHandleClient_Blank(t *testing.T) {
	s := New()

	w := doClientRequest(t, s, "/v1/client?platform=ios&version=2.0.0&requirement=%3E%3D+1.0", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeClient(t, w)
	assert.True(t, resp.Blank)
	assert.Empty(t, resp.Label)
	require.NotNil(t, resp.LessThan)
	assert.False(t, *resp.LessThan)
	require.NotNil(t, resp.LessThanOrEqual)
	assert.False(t, *resp.LessThanOrEqual)
	require.NotNil(t, resp.Matches)
	assert.False(t, *resp.Matches)
}

func TestHandleClient_Comparisons(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		value    string
		platform string
		version  string
		wantLT   bool
		wantLTE  bool
	}{
		{"older ios", "X-Zilly-Ios-Version", "1.2.3", "ios", "1.2.4", true, true},
		{"equal ios", "X-Zilly-Ios-Version", "1.2.3", "ios", "1.2.3", false, true},
		{"zero padding equal", "X-Zilly-Ios-Version", "1.2.3", "ios", "1.2.3.0", false, true},
		{"extra component newer", "X-Zilly-Ios-Version", "1.2.3.1", "ios", "1.2.3", false, false},
		{"platform mismatch", "X-Zilly-Android-Version", "1.0", "ios", "9.0", false, false},
		{"platform case-insensitive", "X-Zilly-Ios-Version", "1.0", "IOS", "2.0", true, true},
		{"fix-up client version", "X-Zilly-Ios-Version", "V1.2.3", "ios", "1.2.4", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			q := url.Values{"platform": {tt.platform}, "version": {tt.version}}
			w := doClientRequest(t, s, "/v1/client?"+q.Encode(), map[string]string{tt.header: tt.value})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			resp := decodeClient(t, w)
			require.NotNil(t, resp.LessThan)
			require.NotNil(t, resp.LessThanOrEqual)
			assert.Equal(t, tt.wantLT, *resp.LessThan)
			assert.Equal(t, tt.wantLTE, *resp.LessThanOrEqual)
		})
	}
}

func TestHandleClient_Requirement(t *testing.T) {
	s := New()

	q := url.Values{"requirement": {"~> 3.1"}}
	w := doClientRequest(t, s, "/v1/client?"+q.Encode(), map[string]string{"X-Zilly-Android-Version": "3.4"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeClient(t, w)
	assert.Equal(t, "~> 3.1", resp.Requirement)
	require.NotNil(t, resp.Matches)
	assert.True(t, *resp.Matches)
}

func TestHandleClient_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		query   url.Values
		headers map[string]string
	}{
		{"platform without version", url.Values{"platform": {"ios"}}, nil},
		{"version without platform", url.Values{"version": {"1.0"}}, nil},
		{"unknown platform", url.Values{"platform": {"blackberry"}, "version": {"1.0"}}, nil},
		{"malformed version", url.Values{"platform": {"ios"}, "version": {"1..x"}}, nil},
		{"malformed requirement", url.Values{"requirement": {">>> 1"}}, nil},
		{"malformed client version", url.Values{"platform": {"ios"}, "version": {"1.0"}},
			map[string]string{"X-Zilly-Ios-Version": "garbage"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			w := doClientRequest(t, s, "/v1/client?"+tt.query.Encode(), tt.headers)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "INVALID_REQUEST", resp.Code)
			assert.NotEmpty(t, resp.RequestID)
			assert.False(t, resp.Retryable)
		})
	}
}

func TestHandleClient_YAML(t *testing.T) {
	s := New()

	w := doClientRequest(t, s, "/v1/client", map[string]string{
		"X-Zilly-Web-Version": "4.0",
		"Accept":              "application/yaml",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))

	var resp ClientResponse
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "web", resp.Platform)
}

func TestHandleClient_MethodNotAllowed(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/client", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleFeatures(t *testing.T) {
	set, err := gate.Parse([]byte(`
features:
  - name: new-checkout
    platforms:
      ios: ">= 2.0.0"
  - name: dark-mode
    default: true
`))
	require.NoError(t, err)

	s := New(WithGates(set))

	w := doClientRequest(t, s, "/v1/features", map[string]string{"X-Zilly-Ios-Version": "2.0.1"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp FeaturesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ios", resp.Client.Platform)
	assert.Equal(t, []string{"new-checkout", "dark-mode"}, resp.Enabled)
	require.Len(t, resp.Decisions, 2)
	assert.Equal(t, gate.ReasonSatisfied, resp.Decisions[0].Reason)

	w = doClientRequest(t, s, "/v1/features", map[string]string{"X-Zilly-Ios-Version": "1.0"})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"dark-mode"}, resp.Enabled)
}

func TestHandleFeatures_NoGates(t *testing.T) {
	s := New()

	w := doClientRequest(t, s, "/v1/features", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp FeaturesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Client.Blank)
	assert.Empty(t, resp.Enabled)
	assert.NotNil(t, resp.Decisions)
}
