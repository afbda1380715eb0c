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
	"fmt"
	"strings"
)

// App identifies the client application family sending version headers.
type App string

// App constants for supported applications.
const (
	AppZilly App = "zilly"
)

// String returns the string representation of the App.
func (a App) String() string {
	return string(a)
}

// Platform identifies the client channel (iOS, Android, Web, ...).
type Platform string

// Platform constants for supported client platforms.
const (
	PlatformIOS           Platform = "ios"
	PlatformAndroid       Platform = "android"
	PlatformWeb           Platform = "web"
	PlatformWebApp        Platform = "web_app"
	PlatformChromeWO      Platform = "chrome_wo"      // Chrome extension for work orders
	PlatformResourceGuide Platform = "resource_guide" // resource guides
)

// String returns the string representation of the Platform.
func (p Platform) String() string {
	return string(p)
}

// IsBlank reports whether no platform is set.
func (p Platform) IsBlank() bool {
	return strings.TrimSpace(string(p)) == ""
}

// HeaderBinding ties an app/platform pair to the request header carrying its version.
type HeaderBinding struct {
	App      App      `json:"app" yaml:"app"`
	Platform Platform `json:"platform" yaml:"platform"`
	Header   string   `json:"header" yaml:"header"`
}

// headerTable is scanned in declaration order. When a request carries
// several of these headers, the later entry wins.
var headerTable = []HeaderBinding{
	{App: AppZilly, Platform: PlatformIOS, Header: "X-Zilly-Ios-Version"},
	{App: AppZilly, Platform: PlatformAndroid, Header: "X-Zilly-Android-Version"},
	{App: AppZilly, Platform: PlatformWeb, Header: "X-Zilly-Web-Version"},
	{App: AppZilly, Platform: PlatformWebApp, Header: "X-Zilly-WebApp-Version"},
	{App: AppZilly, Platform: PlatformChromeWO, Header: "X-Zilly-Chrome-Wo-Version"},
	{App: AppZilly, Platform: PlatformResourceGuide, Header: "X-Zilly-Resource-Guide-Version"},
}

// Headers returns a copy of the header table in declaration order.
func Headers() []HeaderBinding {
	out := make([]HeaderBinding, len(headerTable))
	copy(out, headerTable)
	return out
}

// HeaderFor returns the header name for the app/platform pair.
func HeaderFor(app App, platform Platform) (string, bool) {
	b, ok := lookupBinding(app, platform)
	return b.Header, ok
}

// Apps returns all supported apps in declaration order.
func Apps() []App {
	var out []App
	seen := make(map[App]bool)
	for _, b := range headerTable {
		if !seen[b.App] {
			seen[b.App] = true
			out = append(out, b.App)
		}
	}
	return out
}

// Platforms returns the platforms of app in declaration order.
func Platforms(app App) []Platform {
	var out []Platform
	for _, b := range headerTable {
		if b.App == app {
			out = append(out, b.Platform)
		}
	}
	return out
}

// ParseApp parses a string into an App. Matching is case-insensitive.
func ParseApp(s string) (App, error) {
	candidate := App(strings.ToLower(strings.TrimSpace(s)))
	for _, a := range Apps() {
		if a == candidate {
			return a, nil
		}
	}
	return "", fmt.Errorf("invalid app: %q", s)
}

// ParsePlatform parses a string into a Platform known to any app.
// Matching is case-insensitive.
func ParsePlatform(s string) (Platform, error) {
	candidate := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, b := range headerTable {
		if b.Platform == candidate {
			return b.Platform, nil
		}
	}
	return "", fmt.Errorf("invalid platform: %q", s)
}

func lookupBinding(app App, platform Platform) (HeaderBinding, bool) {
	for _, b := range headerTable {
		if b.App == app && b.Platform == platform {
			return b, true
		}
	}
	return HeaderBinding{}, false
}
