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

// Package server implements the client version HTTP API.
//
// Every API request passes through a middleware chain that reads the
// client version headers (X-Zilly-Ios-Version, X-Zilly-Android-Version, ...)
// into a request-scoped clientversion.Store carried on the request context.
// Handlers read the requesting client with clientversion.CurrentFromContext.
//
// # Architecture
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Client version extraction per request, cleared when the handler returns
//   - Panic recovery for resilience
//   - Prometheus RED metrics plus client platform counters
//   - Graceful shutdown handling with errgroup
//   - Health and readiness probes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("tellusd"),
//	    server.WithVersion(version),
//	    server.WithGates(gates),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/checkout": handleCheckout,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Handlers added with WithHandler run behind the same middleware chain:
//
//	func handleCheckout(w http.ResponseWriter, r *http.Request) {
//	    client := clientversion.CurrentFromContext(r.Context())
//	    old, err := client.LessThan(clientversion.PlatformIOS, "2.0.0")
//	    ...
//	}
//
// # API Endpoints
//
// GET /v1/client - Describe the requesting client
//
//	Query parameters:
//	  - platform, version: add lessThan and lessThanOrEqual for that platform
//	  - requirement: add matches, e.g. ">= 2.0, < 3" or "~> 3.1"
//
//	Example:
//	  curl -H "X-Zilly-Ios-Version: 2.1.0" "http://localhost:8080/v1/client?platform=ios&version=2.0.0"
//
// GET /v1/features - Feature gate decisions for the requesting client
//
// GET /health - Liveness probe, always 200
//
// GET /ready - Readiness probe, 503 until the server is listening
//
// GET /metrics - Prometheus metrics
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, LOG_LEVEL, GATES_FILE,
// RATE_LIMIT and RATE_LIMIT_BURST. Invalid values keep the defaults.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "malformed version",
//	  "details": {"error": "..."},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
package server
