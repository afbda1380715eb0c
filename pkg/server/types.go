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
	"time"

	"github.com/zillyinc/tellus-client-version/pkg/gate"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// ClientResponse describes the client that sent the request.
// Comparison fields are present only when the matching query was given.
type ClientResponse struct {
	App             string `json:"app,omitempty" yaml:"app,omitempty"`
	Platform        string `json:"platform,omitempty" yaml:"platform,omitempty"`
	Version         string `json:"version,omitempty" yaml:"version,omitempty"`
	Label           string `json:"label,omitempty" yaml:"label,omitempty"`
	Blank           bool   `json:"blank" yaml:"blank"`
	LessThan        *bool  `json:"lessThan,omitempty" yaml:"lessThan,omitempty"`
	LessThanOrEqual *bool  `json:"lessThanOrEqual,omitempty" yaml:"lessThanOrEqual,omitempty"`
	Requirement     string `json:"requirement,omitempty" yaml:"requirement,omitempty"`
	Matches         *bool  `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// FeaturesResponse lists gate decisions for the requesting client.
type FeaturesResponse struct {
	Client    ClientResponse  `json:"client" yaml:"client"`
	Enabled   []string        `json:"enabled" yaml:"enabled"`
	Decisions []gate.Decision `json:"decisions" yaml:"decisions"`
}
