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

package clientversion

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// Set records version as the current client's version for app/platform.
func Set(s *Store, app App, platform Platform, versionString string) {
	s.Set(KeyApp, string(app))
	s.Set(KeyPlatform, string(platform))
	s.Set(KeyVersion, versionString)
	s.Set(VersionKey(app, platform), versionString)
}

// SetFromRequest stores the client version headers of r in s.
// See SetFromHeaders.
func SetFromRequest(s *Store, r *http.Request) int {
	if r == nil {
		return 0
	}
	return SetFromHeaders(s, r.Header)
}

// SetFromHeaders scans the header table in declaration order and stores every
// present, non-empty version header. Each match overwrites the shared
// platform/version keys, so the last matching table entry becomes the current
// client. It returns the number of matching headers.
func SetFromHeaders(s *Store, h http.Header) int {
	matched := 0
	for _, b := range headerTable {
		value := strings.TrimSpace(h.Get(b.Header))
		if value == "" {
			continue
		}
		if matched > 0 {
			slog.Debug("multiple client version headers, later entry wins",
				"previous", s.Get(KeyPlatform),
				"platform", b.Platform,
				"header", b.Header,
			)
		}
		Set(s, b.App, b.Platform, value)
		matched++
	}
	return matched
}

// Lookup returns the record for app/platform from the per-binding key.
// The record is blank when no version was stored for that pair.
func Lookup(s *Store, app App, platform Platform) Record {
	return New(app, platform, s.Get(VersionKey(app, platform)))
}

// Current returns the record of the client that sent the current request.
// The header table is walked in declaration order and the first binding
// matching the stored platform (and app, when stored) with a non-blank
// version wins. It never returns nil; absent data yields the blank record.
func Current(s *Store) Record {
	platform := Platform(s.Get(KeyPlatform))
	app := App(s.Get(KeyApp))
	v := strings.TrimSpace(s.Get(KeyVersion))
	if platform.IsBlank() || v == "" {
		return Blank()
	}

	for _, b := range headerTable {
		if b.Platform != platform {
			continue
		}
		if app != "" && b.App != app {
			continue
		}
		return New(b.App, b.Platform, v)
	}
	return Blank()
}

// CurrentFromContext returns Current for the Store attached to ctx, or the
// blank record when there is none.
func CurrentFromContext(ctx context.Context) Record {
	s, ok := StoreFromContext(ctx)
	if !ok {
		return Blank()
	}
	return Current(s)
}

// AllForApp returns one record per platform of app, in declaration order.
// It can be used to check which app the request is for regardless of platform.
func AllForApp(s *Store, app App) []Record {
	platforms := Platforms(app)
	out := make([]Record, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, Lookup(s, app, p))
	}
	return out
}
