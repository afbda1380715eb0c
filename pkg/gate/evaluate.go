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

package gate

import (
	"fmt"
	"log/slog"

	"github.com/zillyinc/tellus-client-version/pkg/clientversion"
)

// Reasons attached to a Decision.
const (
	ReasonNoClient     = "no client version"
	ReasonUngated      = "platform not gated"
	ReasonSatisfied    = "requirement satisfied"
	ReasonNotSatisfied = "requirement not satisfied"
	ReasonBadVersion   = "unparseable client version"
	ReasonBadRule      = "invalid requirement"
)

// Decision is the outcome of a feature for one client.
type Decision struct {
	Feature     string `json:"feature" yaml:"feature"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Requirement string `json:"requirement,omitempty" yaml:"requirement,omitempty"`
	Reason      string `json:"reason" yaml:"reason"`
}

// Decide evaluates f for record.
func (f Feature) Decide(record clientversion.Record) Decision {
	d := Decision{Feature: f.Name}
	if record.IsBlank() {
		d.Enabled = f.Default
		d.Reason = ReasonNoClient
		return d
	}

	req, expr, gated, err := f.requirement(record.Platform())
	if !gated {
		d.Enabled = f.Default
		d.Reason = ReasonUngated
		return d
	}
	d.Requirement = expr
	if err != nil {
		d.Reason = fmt.Sprintf("%s: %v", ReasonBadRule, err)
		return d
	}

	ok, err := record.Satisfies(req)
	if err != nil {
		slog.Debug("client version not comparable",
			"feature", f.Name,
			"platform", record.Platform(),
			"version", record.Version(),
			"error", err,
		)
		d.Reason = ReasonBadVersion
		return d
	}

	d.Enabled = ok
	if ok {
		d.Reason = ReasonSatisfied
	} else {
		d.Reason = ReasonNotSatisfied
	}
	return d
}

// Evaluate returns one decision per feature in declaration order.
func (s *Set) Evaluate(record clientversion.Record) []Decision {
	if s == nil {
		return nil
	}
	out := make([]Decision, 0, len(s.Features))
	for _, f := range s.Features {
		out = append(out, f.Decide(record))
	}
	return out
}

// Enabled returns the names of the features enabled for record.
func (s *Set) Enabled(record clientversion.Record) []string {
	var names []string
	for _, d := range s.Evaluate(record) {
		if d.Enabled {
			names = append(names, d.Feature)
		}
	}
	return names
}

// IsEnabled reports whether the named feature is enabled for record.
// Unknown features are disabled.
func (s *Set) IsEnabled(name string, record clientversion.Record) bool {
	f, ok := s.Lookup(name)
	if !ok {
		return false
	}
	return f.Decide(record).Enabled
}
