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
	"testing"
)

func TestFriendlyLabel(t *testing.T) {
	tests := []struct {
		record Record
		want   string
	}{
		{New(AppZilly, PlatformIOS, "1.2.3"), "Zilly Ios 1.2.3"},
		{New(AppZilly, PlatformAndroid, "2.1.0"), "Zilly Android 2.1.0"},
		{New(AppZilly, PlatformWebApp, "2.1.0"), "Zilly Web_app 2.1.0"},
		{New(AppZilly, PlatformResourceGuide, "0.4.2"), "Zilly Resource_guide 0.4.2"},
		{Blank(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.record.FriendlyLabel(); got != tt.want {
				t.Errorf("FriendlyLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFriendlyLabel(t *testing.T) {
	tests := []struct {
		label        string
		wantPlatform Platform
		wantVersion  string
	}{
		{"Zilly Ios 1.2.3", PlatformIOS, "1.2.3"},
		{"Zilly Android 2.1.0", PlatformAndroid, "2.1.0"},
		{"Zilly Web 3.0.1", PlatformWeb, "3.0.1"},
		{"Zilly Web_app 1.5.2", PlatformWebApp, "1.5.2"},
		{"  zilly   IOS   1.2.3 ", PlatformIOS, "1.2.3"},
		{"foo", "", ""},
		{"", "", ""},
		{"Zilly Ios", "", ""},
		{"Zilly Ios 1.2.3 extra", "", ""},
		{"Acme Ios 1.2.3", "", ""},
		{"Zilly Tv 1.2.3", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := ParseFriendlyLabel(tt.label)
			if got.Platform() != tt.wantPlatform {
				t.Errorf("platform = %q, want %q", got.Platform(), tt.wantPlatform)
			}
			if got.Version() != tt.wantVersion {
				t.Errorf("version = %q, want %q", got.Version(), tt.wantVersion)
			}
			if tt.wantVersion == "" && !got.IsBlank() {
				t.Error("expected blank record")
			}
		})
	}
}

func TestFriendlyLabelRoundTrip(t *testing.T) {
	for _, b := range Headers() {
		for _, v := range []string{"1.2.3", "v2.0", "10.4.1.7", "3rc1"} {
			r := New(b.App, b.Platform, v)
			got := ParseFriendlyLabel(r.FriendlyLabel())
			if got != r {
				t.Errorf("round trip of %q produced %+v, want %+v", r.FriendlyLabel(), got, r)
			}
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":          "",
		"ios":       "Ios",
		"web_app":   "Web_app",
		"chrome_wo": "Chrome_wo",
		"ZILLY":     "Zilly",
	}
	for in, want := range tests {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
