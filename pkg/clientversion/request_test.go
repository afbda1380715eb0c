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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestSetFromRequest(t *testing.T) {
	tests := []struct {
		name         string
		headers      map[string]string
		wantPlatform Platform
		wantVersion  string
		wantMatched  int
	}{
		{
			name:    "no version header",
			headers: map[string]string{"User-Agent": "curl"},
		},
		{
			name:         "ios header",
			headers:      map[string]string{"X-Zilly-Ios-Version": "1.2.3"},
			wantPlatform: PlatformIOS,
			wantVersion:  "1.2.3",
			wantMatched:  1,
		},
		{
			name:         "android header",
			headers:      map[string]string{"X-Zilly-Android-Version": "2.1.0"},
			wantPlatform: PlatformAndroid,
			wantVersion:  "2.1.0",
			wantMatched:  1,
		},
		{
			name:         "web header",
			headers:      map[string]string{"X-Zilly-Web-Version": "3.0.1"},
			wantPlatform: PlatformWeb,
			wantVersion:  "3.0.1",
			wantMatched:  1,
		},
		{
			name:         "web app header",
			headers:      map[string]string{"X-Zilly-WebApp-Version": "1.5.2"},
			wantPlatform: PlatformWebApp,
			wantVersion:  "1.5.2",
			wantMatched:  1,
		},
		{
			name:         "chrome work order extension header",
			headers:      map[string]string{"X-Zilly-Chrome-Wo-Version": "0.9.1"},
			wantPlatform: PlatformChromeWO,
			wantVersion:  "0.9.1",
			wantMatched:  1,
		},
		{
			name:         "lowercase header name",
			headers:      map[string]string{"x-zilly-resource-guide-version": "4.0"},
			wantPlatform: PlatformResourceGuide,
			wantVersion:  "4.0",
			wantMatched:  1,
		},
		{
			name:    "empty header ignored",
			headers: map[string]string{"X-Zilly-Ios-Version": "   "},
		},
		{
			name: "later table entry wins",
			headers: map[string]string{
				"X-Zilly-Ios-Version":    "1.2.3",
				"X-Zilly-WebApp-Version": "1.5.2",
			},
			wantPlatform: PlatformWebApp,
			wantVersion:  "1.5.2",
			wantMatched:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			matched := SetFromRequest(store, newRequest(tt.headers))

			assert.Equal(t, tt.wantMatched, matched)
			assert.Equal(t, string(tt.wantPlatform), store.Get(KeyPlatform))
			assert.Equal(t, tt.wantVersion, store.Get(KeyVersion))
			if tt.wantMatched > 0 {
				assert.Equal(t, string(AppZilly), store.Get(KeyApp))
			}
		})
	}
}

func TestSetFromRequestKeepsEveryBinding(t *testing.T) {
	store := NewStore()
	SetFromRequest(store, newRequest(map[string]string{
		"X-Zilly-Ios-Version":     "1.2.3",
		"X-Zilly-Android-Version": "2.0.0",
	}))

	assert.Equal(t, "1.2.3", Lookup(store, AppZilly, PlatformIOS).Version())
	assert.Equal(t, "2.0.0", Lookup(store, AppZilly, PlatformAndroid).Version())
	assert.True(t, Lookup(store, AppZilly, PlatformWeb).IsBlank())
}

func TestSetFromRequestNil(t *testing.T) {
	store := NewStore()
	assert.Equal(t, 0, SetFromRequest(store, nil))
	assert.Equal(t, 0, store.Len())
}

func TestCurrentScenario(t *testing.T) {
	store := NewStore()
	defer store.Clear()
	store.Set(KeyPlatform, string(PlatformIOS))
	store.Set(KeyVersion, "1.2.3")

	client := Current(store)
	require.False(t, client.IsBlank())
	assert.Equal(t, PlatformIOS, client.Platform())
	assert.Equal(t, AppZilly, client.App())

	lt, err := client.LessThan(PlatformIOS, "1.2.4")
	require.NoError(t, err)
	assert.True(t, lt)

	lt, err = client.LessThan(PlatformIOS, "1.2.2")
	require.NoError(t, err)
	assert.False(t, lt)

	lt, err = client.LessThan(PlatformAndroid, "9.9.9")
	require.NoError(t, err)
	assert.False(t, lt)
}

func TestCurrent(t *testing.T) {
	t.Run("web app platform", func(t *testing.T) {
		store := NewStore()
		store.Set(KeyPlatform, string(PlatformWebApp))
		store.Set(KeyVersion, "1.5.0")

		current := Current(store)
		assert.Equal(t, PlatformWebApp, current.Platform())
		assert.Equal(t, "1.5.0", current.Version())
	})

	t.Run("nothing stored", func(t *testing.T) {
		current := Current(NewStore())
		assert.True(t, current.IsBlank())
		assert.Equal(t, Platform(""), current.Platform())
		assert.Equal(t, "", current.Version())
	})

	t.Run("nil store", func(t *testing.T) {
		assert.Equal(t, Blank(), Current(nil))
	})

	t.Run("platform without version", func(t *testing.T) {
		store := NewStore()
		store.Set(KeyPlatform, string(PlatformIOS))
		assert.True(t, Current(store).IsBlank())
	})

	t.Run("unknown platform", func(t *testing.T) {
		store := NewStore()
		store.Set(KeyPlatform, "tv")
		store.Set(KeyVersion, "1.0.0")
		assert.True(t, Current(store).IsBlank())
	})

	t.Run("unknown app", func(t *testing.T) {
		store := NewStore()
		Set(store, App("acme"), PlatformIOS, "1.0.0")
		assert.True(t, Current(store).IsBlank())
	})

	t.Run("from request", func(t *testing.T) {
		store := NewStore()
		SetFromRequest(store, newRequest(map[string]string{"X-Zilly-Ios-Version": "1.2.3"}))
		current := Current(store)
		assert.Equal(t, "Zilly Ios 1.2.3", current.FriendlyLabel())
	})
}

func TestCurrentFromContext(t *testing.T) {
	assert.True(t, CurrentFromContext(context.Background()).IsBlank())

	store := NewStore()
	Set(store, AppZilly, PlatformAndroid, "3.1.0")
	ctx := WithStore(context.Background(), store)

	current := CurrentFromContext(ctx)
	assert.Equal(t, PlatformAndroid, current.Platform())
	assert.Equal(t, "3.1.0", current.Version())
}

func TestAllForApp(t *testing.T) {
	store := NewStore()
	SetFromRequest(store, newRequest(map[string]string{"X-Zilly-Web-Version": "3.0.1"}))

	all := AllForApp(store, AppZilly)
	require.Len(t, all, len(Platforms(AppZilly)))

	var present []Platform
	for _, r := range all {
		if !r.IsBlank() {
			present = append(present, r.Platform())
		}
	}
	assert.Equal(t, []Platform{PlatformWeb}, present)
	assert.Empty(t, AllForApp(store, App("acme")))
}
