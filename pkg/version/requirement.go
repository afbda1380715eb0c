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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// defaultRequirement is what an empty requirement expression means.
const defaultRequirement = ">= 0"

// singleSegmentPessimistic matches "~> N" clauses, which go-version leaves
// without an upper bound.
var singleSegmentPessimistic = regexp.MustCompile(`^~>\s*[vV]?(\d+)$`)

// Requirement is a parsed version requirement such as ">= 2.0.0" or
// "~> 3.1, != 3.1.4". Clauses are comma separated and must all hold.
type Requirement struct {
	expr        string
	constraints goversion.Constraints
}

// ParseRequirement parses a requirement expression.
// Supported operators: "=", "!=", ">", "<", ">=", "<=", "~>" and a bare
// version for an exact match. "~>" is pessimistic: "~> 1.2" allows 1.x from
// 1.2 on, "~> 1.2.3" allows 1.2.x from 1.2.3 on, "~> 2" allows 2.x.
// An empty expression is equivalent to ">= 0".
func ParseRequirement(expr string) (Requirement, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		trimmed = defaultRequirement
	}

	c, err := goversion.NewConstraint(expandPessimistic(trimmed))
	if err != nil {
		return Requirement{}, fmt.Errorf("%w: %q: %v", ErrInvalidRequirement, expr, err)
	}
	return Requirement{expr: trimmed, constraints: c}, nil
}

// expandPessimistic rewrites "~> N" into ">= N, < N+1".
func expandPessimistic(expr string) string {
	clauses := strings.Split(expr, ",")
	for i, clause := range clauses {
		m := singleSegmentPessimistic.FindStringSubmatch(strings.TrimSpace(clause))
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		clauses[i] = fmt.Sprintf(">= %d, < %d", n, n+1)
	}
	return strings.Join(clauses, ",")
}

// MustParseRequirement parses a requirement and panics if parsing fails.
func MustParseRequirement(expr string) Requirement {
	r, err := ParseRequirement(expr)
	if err != nil {
		panic(fmt.Sprintf("MustParseRequirement: %v", err))
	}
	return r
}

// Check reports whether v satisfies the requirement. A blank version never does.
func (r Requirement) Check(v Version) bool {
	if v.IsBlank() || r.constraints == nil {
		return false
	}
	return r.constraints.Check(v.v)
}

// String returns the requirement expression.
func (r Requirement) String() string {
	return r.expr
}
