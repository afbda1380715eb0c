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

package echoadapter

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zillyinc/tellus-client-version/pkg/clientversion"
	"github.com/zillyinc/tellus-client-version/pkg/errors"
	"github.com/zillyinc/tellus-client-version/pkg/version"
)

// ContextKey is the echo.Context key holding the current clientversion.Record.
const ContextKey = "client_version"

// HeaderClientPlatform echoes the detected client platform.
const HeaderClientPlatform = "X-Client-Platform"

// Middleware reads the client version headers into a request-scoped store,
// exposes it on the request context and on the echo.Context, and clears it
// once the handler chain returns.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store := clientversion.NewStore()
			defer store.Clear()

			req := c.Request()
			clientversion.SetFromRequest(store, req)
			c.SetRequest(req.WithContext(clientversion.WithStore(req.Context(), store)))

			current := clientversion.Current(store)
			c.Set(ContextKey, current)
			if !current.IsBlank() {
				c.Response().Header().Set(HeaderClientPlatform, string(current.Platform()))
			}

			return next(c)
		}
	}
}

// Current returns the client record for c, or the blank record when
// Middleware did not run.
func Current(c echo.Context) clientversion.Record {
	if rec, ok := c.Get(ContextKey).(clientversion.Record); ok {
		return rec
	}
	return clientversion.CurrentFromContext(c.Request().Context())
}

// RequireVersion rejects clients on platform whose version does not satisfy
// requirement with 426 Upgrade Required. Clients on other platforms and
// requests without a client version pass through.
func RequireVersion(platform clientversion.Platform, requirement string) (echo.MiddlewareFunc, error) {
	req, err := version.ParseRequirement(requirement)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidConfig, "invalid version requirement", err,
			map[string]any{"platform": platform})
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rec := Current(c)
			if rec.IsBlank() || rec.Platform() != platform {
				return next(c)
			}

			ok, err := rec.Satisfies(req)
			if err != nil {
				slog.Debug("client version not comparable",
					"platform", rec.Platform(),
					"version", rec.Version(),
					"error", err,
				)
				return echo.NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("malformed client version %q", rec.Version()))
			}
			if !ok {
				return echo.NewHTTPError(errors.ErrCodeUpgradeRequired.HTTPStatus(), map[string]any{
					"code":        string(errors.ErrCodeUpgradeRequired),
					"message":     "client upgrade required",
					"platform":    string(platform),
					"version":     rec.Version(),
					"requirement": req.String(),
				})
			}
			return next(c)
		}
	}, nil
}
