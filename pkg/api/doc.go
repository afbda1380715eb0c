// Package api provides the HTTP entrypoint for the tellus client version service.
//
// This package is a thin wrapper around the reusable pkg/server package. It
// configures structured logging, loads the feature gates file and hands
// lifecycle management to the server.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/zillyinc/tellus-client-version/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/client   - Client parsed from the X-Zilly-*-Version headers
//   - GET /v1/features - Feature gates evaluated for that client
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/client)
//
//   - platform, version: compare the client against version on platform and
//     report lessThan and lessThanOrEqual (both parameters are required together)
//   - requirement: check the client against a requirement such as ">= 2.0, < 3"
//
// Example:
//
//	curl -H "X-Zilly-Ios-Version: 2.1.0" \
//	  "http://localhost:8080/v1/client?platform=ios&version=2.2.0&requirement=~>2.0"
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - GATES_FILE: Feature gates YAML file
//   - RATE_LIMIT, RATE_LIMIT_BURST: Per-process request rate limit
//   - SHUTDOWN_TIMEOUT_SECONDS: Graceful shutdown timeout
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/zillyinc/tellus-client-version/pkg/api.version=1.0.0'"
package api
