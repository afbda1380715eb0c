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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	s := NewStore()
	assert.Equal(t, "", s.Get(KeyVersion))

	s.Set(KeyVersion, "0.4.2")
	assert.Equal(t, "0.4.2", s.Get(KeyVersion))
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Equal(t, "", s.Get(KeyVersion))
	assert.Equal(t, 0, s.Len())
}

func TestStoreNil(t *testing.T) {
	var s *Store
	assert.Equal(t, "", s.Get(KeyPlatform))
	assert.Equal(t, 0, s.Len())
	assert.NotPanics(t, func() {
		s.Set(KeyPlatform, "ios")
		s.Clear()
	})
}

func TestStoreZeroValue(t *testing.T) {
	var s Store
	s.Set(KeyApp, "zilly")
	assert.Equal(t, "zilly", s.Get(KeyApp))
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Set(s, AppZilly, PlatformIOS, "1.2.3")
		}()
		go func() {
			defer wg.Done()
			_ = Current(s)
		}()
	}
	wg.Wait()
	assert.Equal(t, "1.2.3", Current(s).Version())
}

func TestStoreContext(t *testing.T) {
	_, ok := StoreFromContext(context.Background())
	assert.False(t, ok)

	s := NewStore()
	got, ok := StoreFromContext(WithStore(context.Background(), s))
	assert.True(t, ok)
	assert.Same(t, s, got)

	_, ok = StoreFromContext(WithStore(context.Background(), nil))
	assert.False(t, ok)
}

func TestVersionKey(t *testing.T) {
	assert.Equal(t, Key("ios_zilly_version"), VersionKey(AppZilly, PlatformIOS))
	assert.Equal(t, Key("web_app_zilly_version"), VersionKey(AppZilly, PlatformWebApp))
}
