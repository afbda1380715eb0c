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
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// labelTokens is the number of whitespace separated tokens in a friendly label.
const labelTokens = 3

// FriendlyLabel renders the record for humans as "<App> <Platform> <version>",
// e.g. "Zilly Web_app 2.1.0". The blank record renders as "".
func (r Record) FriendlyLabel() string {
	if r.IsBlank() {
		return ""
	}
	return strings.Join([]string{
		capitalize(string(r.app)),
		capitalize(string(r.platform)),
		r.version,
	}, " ")
}

// ParseFriendlyLabel is the inverse of FriendlyLabel. Labels that do not have
// exactly three tokens, or name an app/platform outside the header table,
// yield the blank record.
func ParseFriendlyLabel(label string) Record {
	tokens := strings.Fields(label)
	if len(tokens) != labelTokens {
		return Blank()
	}

	app, err := ParseApp(tokens[0])
	if err != nil {
		return Blank()
	}
	platform, err := ParsePlatform(tokens[1])
	if err != nil {
		return Blank()
	}
	if _, ok := lookupBinding(app, platform); !ok {
		return Blank()
	}

	return New(app, platform, tokens[2])
}

// capitalize upper-cases the first letter and lower-cases the rest, keeping
// underscores in place ("web_app" -> "Web_app").
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
