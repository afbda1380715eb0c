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
	"strings"

	"github.com/zillyinc/tellus-client-version/pkg/version"
)

// Record is the platform and version of one client. It is immutable; the
// zero value is the blank record.
type Record struct {
	app      App
	platform Platform
	version  string
}

// New returns a record for an explicit app, platform and version string.
// The version is kept as sent and parsed when compared.
func New(app App, platform Platform, versionString string) Record {
	return Record{
		app:      app,
		platform: platform,
		version:  strings.TrimSpace(versionString),
	}
}

// Blank returns a record with no platform and no version.
func Blank() Record {
	return Record{}
}

// App returns the client app.
func (r Record) App() App {
	return r.app
}

// Platform returns the client platform.
func (r Record) Platform() Platform {
	return r.platform
}

// Version returns the raw version string.
func (r Record) Version() string {
	return r.version
}

// String returns the raw version string.
func (r Record) String() string {
	return r.version
}

// IsBlank reports whether the record carries no version.
func (r Record) IsBlank() bool {
	return r.version == ""
}

// ParsedVersion parses the record's version. A blank record yields the blank Version.
func (r Record) ParsedVersion() (version.Version, error) {
	return version.Parse(r.version)
}

// LessThan reports whether this client runs a version strictly before v on platform.
// It is false when the record, v or platform is blank, or when platform is not
// the record's platform. Malformed versions are returned as errors.
func (r Record) LessThan(platform Platform, v string) (bool, error) {
	mine, theirs, ok, err := r.comparable(platform, v)
	if !ok || err != nil {
		return false, err
	}
	return mine.LessThan(theirs), nil
}

// LessThanOrEqual is the non-strict form of LessThan.
func (r Record) LessThanOrEqual(platform Platform, v string) (bool, error) {
	mine, theirs, ok, err := r.comparable(platform, v)
	if !ok || err != nil {
		return false, err
	}
	return mine.LessThanOrEqual(theirs), nil
}

// Matches reports whether the record's version satisfies requirement,
// e.g. ">= 2.0" or "~> 3.1". A blank record never matches.
func (r Record) Matches(requirement string) (bool, error) {
	if r.IsBlank() {
		return false, nil
	}
	req, err := version.ParseRequirement(requirement)
	if err != nil {
		return false, err
	}
	return r.Satisfies(req)
}

// Satisfies is Matches for an already parsed requirement.
func (r Record) Satisfies(req version.Requirement) (bool, error) {
	v, err := r.ParsedVersion()
	if err != nil {
		return false, err
	}
	return req.Check(v), nil
}

func (r Record) comparable(platform Platform, v string) (version.Version, version.Version, bool, error) {
	if r.IsBlank() || strings.TrimSpace(v) == "" || platform.IsBlank() {
		return version.Version{}, version.Version{}, false, nil
	}
	if platform != r.platform {
		return version.Version{}, version.Version{}, false, nil
	}

	mine, err := r.ParsedVersion()
	if err != nil {
		return version.Version{}, version.Version{}, false, err
	}
	theirs, err := version.Parse(v)
	if err != nil {
		return version.Version{}, version.Version{}, false, err
	}
	return mine, theirs, true, nil
}
