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
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/zillyinc/tellus-client-version/pkg/defaults"
	"github.com/zillyinc/tellus-client-version/pkg/gate"
)

// Environment variables read by NewConfig.
const (
	EnvPort            = "PORT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvLogLevel        = "LOG_LEVEL"
	EnvGatesFile       = "GATES_FILE"
	EnvRateLimit       = "RATE_LIMIT"
	EnvRateLimitBurst  = "RATE_LIMIT_BURST"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional Handlers to be added to the server
	Handlers map[string]http.HandlerFunc

	// Feature gates evaluated by /v1/features, loaded from GatesFile when nil
	Gates     *gate.Set
	GatesFile string

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration

	// Logging
	LogLevel slog.Level
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig(os.Getenv)
}

// parseConfig returns defaults overridden by the environment
func parseConfig(getenv func(string) string) *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              defaults.ServerPort,
		RateLimit:         defaults.RateLimit,
		RateLimitBurst:    defaults.RateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
		LogLevel:          slog.LevelInfo,
	}

	if port, ok := envInt(getenv, EnvPort); ok && port > 0 && port < 65536 {
		cfg.Port = port
	}

	// Allow customization of shutdown timeout to match K8s eviction grace period
	if seconds, ok := envInt(getenv, EnvShutdownTimeout); ok && seconds > 0 {
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	if limit, ok := envInt(getenv, EnvRateLimit); ok && limit > 0 {
		cfg.RateLimit = rate.Limit(limit)
	}
	if burst, ok := envInt(getenv, EnvRateLimitBurst); ok && burst > 0 {
		cfg.RateLimitBurst = burst
	}

	if lvl := strings.TrimSpace(getenv(EnvLogLevel)); lvl != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(lvl)); err == nil {
			cfg.LogLevel = level
		}
	}

	cfg.GatesFile = strings.TrimSpace(getenv(EnvGatesFile))

	return cfg
}

func envInt(getenv func(string) string, key string) (int, bool) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("ignoring invalid integer environment variable", "key", key, "value", raw)
		return 0, false
	}
	return n, true
}
