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

package version

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Error types for version parsing failures
var (
	ErrInvalidVersion     = errors.New("malformed version number string")
	ErrInvalidRequirement = errors.New("malformed version requirement")
)

// letterDigit matches a run of letters glued to the digit that follows it,
// e.g. the "v" in "v1.2.3" or the "b" in "1.2.b3".
var letterDigit = regexp.MustCompile(`[A-Za-z]+([0-9])`)

// ParseError is returned when a version string cannot be parsed, even after
// letters attached to digits have been stripped.
type ParseError struct {
	// Original is the string as received.
	Original string
	// FixedUp is the string after the letter/digit fix-up was applied.
	FixedUp string
	// Cause is the error returned by the underlying parser for FixedUp.
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q (also tried fixed-up %q)", ErrInvalidVersion, e.Original, e.FixedUp)
}

// Unwrap supports errors.Is(err, ErrInvalidVersion) and access to the cause.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidVersion}
	}
	return []error{ErrInvalidVersion, e.Cause}
}

// Version is an ordered client version. The zero value is the blank version,
// which stands for "no version was sent" and never orders before or after anything.
type Version struct {
	original string
	v        *goversion.Version
}

// Parse parses a loosely formatted version string.
// Supported formats: "1", "1.2", "1.2.3", "1.2.3.4", "v1.2.3", "1.2.3-beta1", "1.2.3rc2".
// Strings that fail to parse get one fix-up attempt where letters glued to a
// following digit are removed ("V1.2.3" -> "1.2.3", "1.2.b3" -> "1.2.3").
// An empty string yields the blank Version and no error.
func Parse(raw string) (Version, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Version{}, nil
	}

	if v, err := goversion.NewVersion(trimmed); err == nil {
		return Version{original: raw, v: v}, nil
	}

	fixed := fixUp(trimmed)
	v, err := goversion.NewVersion(fixed)
	if err != nil {
		return Version{}, &ParseError{Original: raw, FixedUp: fixed, Cause: err}
	}
	return Version{original: raw, v: v}, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

func fixUp(s string) string {
	return letterDigit.ReplaceAllString(s, "$1")
}

// IsBlank reports whether v holds no version.
func (v Version) IsBlank() bool {
	return v.v == nil
}

// Original returns the string the version was parsed from.
func (v Version) Original() string {
	return v.original
}

// String returns the normalized dotted form, e.g. "1.2.3" for "v1.2.3".
// The blank version renders as "".
func (v Version) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.String()
}

// Segments returns the numeric components of the version.
func (v Version) Segments() []int {
	if v.v == nil {
		return nil
	}
	return v.v.Segments()
}

// Prerelease returns the pre-release part, if any ("beta1" for "1.2.3-beta1").
func (v Version) Prerelease() string {
	if v.v == nil {
		return ""
	}
	return v.v.Prerelease()
}

// Compare returns -1 if v < other, 0 if equal, 1 if v > other.
// Missing trailing components compare as zero. The blank version sorts
// before every non-blank version and equal to itself; use LessThan for
// gating decisions, which treats blank conservatively.
func (v Version) Compare(other Version) int {
	switch {
	case v.v == nil && other.v == nil:
		return 0
	case v.v == nil:
		return -1
	case other.v == nil:
		return 1
	}
	return v.v.Compare(other.v)
}

// LessThan reports whether v orders strictly before other.
// It is false when either side is blank.
func (v Version) LessThan(other Version) bool {
	if v.IsBlank() || other.IsBlank() {
		return false
	}
	return v.v.Compare(other.v) < 0
}

// LessThanOrEqual reports whether v orders before or equal to other.
// It is false when either side is blank.
func (v Version) LessThanOrEqual(other Version) bool {
	if v.IsBlank() || other.IsBlank() {
		return false
	}
	return v.v.Compare(other.v) <= 0
}

// Equal reports whether both versions are present and order equally.
func (v Version) Equal(other Version) bool {
	if v.IsBlank() || other.IsBlank() {
		return false
	}
	return v.v.Compare(other.v) == 0
}

// MarshalText renders the normalized form.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses text with Parse.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
