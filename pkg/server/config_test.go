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
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := parseConfig(envMap(nil))

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}
		if cfg.RateLimit != 100 {
			t.Errorf("expected rate limit 100, got %v", cfg.RateLimit)
		}
		if cfg.RateLimitBurst != 200 {
			t.Errorf("expected rate limit burst 200, got %d", cfg.RateLimitBurst)
		}
		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("expected read timeout 10s, got %v", cfg.ReadTimeout)
		}
		if cfg.WriteTimeout != 30*time.Second {
			t.Errorf("expected write timeout 30s, got %v", cfg.WriteTimeout)
		}
		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("expected idle timeout 120s, got %v", cfg.IdleTimeout)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}
		if cfg.LogLevel != slog.LevelInfo {
			t.Errorf("expected info log level, got %v", cfg.LogLevel)
		}
		if cfg.GatesFile != "" {
			t.Errorf("expected no gates file, got %q", cfg.GatesFile)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		cfg := parseConfig(envMap(map[string]string{
			EnvPort:            "9090",
			EnvShutdownTimeout: "5",
			EnvRateLimit:       "10",
			EnvRateLimitBurst:  "20",
			EnvLogLevel:        "debug",
			EnvGatesFile:       " /etc/tellus/gates.yaml ",
		}))

		if cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
		if cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("expected shutdown timeout 5s, got %v", cfg.ShutdownTimeout)
		}
		if cfg.RateLimit != 10 || cfg.RateLimitBurst != 20 {
			t.Errorf("expected rate limit 10/20, got %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
		}
		if cfg.LogLevel != slog.LevelDebug {
			t.Errorf("expected debug log level, got %v", cfg.LogLevel)
		}
		if cfg.GatesFile != "/etc/tellus/gates.yaml" {
			t.Errorf("expected trimmed gates file, got %q", cfg.GatesFile)
		}
	})

	t.Run("invalid values use defaults", func(t *testing.T) {
		cfg := parseConfig(envMap(map[string]string{
			EnvPort:            "invalid",
			EnvShutdownTimeout: "-1",
			EnvRateLimit:       "0",
			EnvLogLevel:        "loud",
		}))

		if cfg.Port != 8080 {
			t.Errorf("expected default port 8080 for invalid env, got %d", cfg.Port)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
		}
		if cfg.RateLimit != 100 {
			t.Errorf("expected default rate limit, got %v", cfg.RateLimit)
		}
		if cfg.LogLevel != slog.LevelInfo {
			t.Errorf("expected default log level, got %v", cfg.LogLevel)
		}
	})
}

func TestNewConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv(EnvPort, "7070")

	if cfg := NewConfig(); cfg.Port != 7070 {
		t.Errorf("expected port 7070, got %d", cfg.Port)
	}
}
