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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/zillyinc/tellus-client-version/pkg/clientversion"
	"github.com/zillyinc/tellus-client-version/pkg/version"
)

// ErrInvalidGates is wrapped by every validation failure.
var ErrInvalidGates = errors.New("invalid feature gates")

// Feature is a capability enabled for clients whose version satisfies the
// requirement of their platform.
type Feature struct {
	Name        string                            `json:"name" yaml:"name"`
	Description string                            `json:"description,omitempty" yaml:"description,omitempty"`
	Default     bool                              `json:"default" yaml:"default"`
	Platforms   map[clientversion.Platform]string `json:"platforms,omitempty" yaml:"platforms,omitempty"`

	requirements map[clientversion.Platform]version.Requirement
}

// Set is an ordered collection of features.
type Set struct {
	Features []Feature `json:"features" yaml:"features"`
}

// Load reads and validates a gates file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gates file %s: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a YAML gates document and validates it.
func Parse(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGates, err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Validate checks every feature and compiles its requirements.
// All problems are reported together.
func (s *Set) Validate() error {
	var result *multierror.Error
	seen := make(map[string]bool, len(s.Features))

	for i := range s.Features {
		f := &s.Features[i]
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" {
			result = multierror.Append(result, fmt.Errorf("%w: feature %d has no name", ErrInvalidGates, i))
		} else if seen[f.Name] {
			result = multierror.Append(result, fmt.Errorf("%w: duplicate feature %q", ErrInvalidGates, f.Name))
		}
		seen[f.Name] = true

		f.requirements = make(map[clientversion.Platform]version.Requirement, len(f.Platforms))
		dups := make(map[clientversion.Platform]struct{})
		for p, expr := range f.Platforms {
			platform, err := clientversion.ParsePlatform(string(p))
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%w: feature %q: %w", ErrInvalidGates, f.Name, err))
				continue
			}
			if keys := platformKeys(f.Platforms, platform); keys > 1 {
				if _, reported := dups[platform]; !reported {
					dups[platform] = struct{}{}
					result = multierror.Append(result, fmt.Errorf("%w: feature %q: platform %s listed %d times", ErrInvalidGates, f.Name, platform, keys))
				}
				continue
			}
			req, err := version.ParseRequirement(expr)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%w: feature %q platform %s: %w", ErrInvalidGates, f.Name, platform, err))
				continue
			}
			f.requirements[platform] = req
		}
	}

	return result.ErrorOrNil()
}

// platformKeys counts the keys that resolve to platform. Keys differing only
// in case or surrounding space would otherwise race on map order.
func platformKeys(platforms map[clientversion.Platform]string, platform clientversion.Platform) int {
	n := 0
	for p := range platforms {
		if parsed, err := clientversion.ParsePlatform(string(p)); err == nil && parsed == platform {
			n++
		}
	}
	return n
}

// Lookup returns the feature with name.
func (s *Set) Lookup(name string) (Feature, bool) {
	if s == nil {
		return Feature{}, false
	}
	for _, f := range s.Features {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// Len returns the number of features.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Features)
}

// requirement returns the compiled requirement and its source expression for
// platform. Features built in code without Validate are compiled lazily.
func (f Feature) requirement(platform clientversion.Platform) (version.Requirement, string, bool, error) {
	if req, ok := f.requirements[platform]; ok {
		return req, req.String(), true, nil
	}
	for p, expr := range f.Platforms {
		if parsed, err := clientversion.ParsePlatform(string(p)); err != nil || parsed != platform {
			continue
		}
		req, err := version.ParseRequirement(expr)
		return req, expr, true, err
	}
	return version.Requirement{}, "", false, nil
}
