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
	"fmt"
	"sync"
)

// Key names a value held in a Store.
type Key string

// Shared keys written for the client of the current request.
const (
	KeyApp      Key = "app"
	KeyPlatform Key = "platform"
	KeyVersion  Key = "version"
)

// VersionKey returns the per-binding key holding the version sent for app/platform,
// e.g. "ios_zilly_version".
func VersionKey(app App, platform Platform) Key {
	return Key(fmt.Sprintf("%s_%s_version", platform, app))
}

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const contextKeyStore contextKey = "clientVersionStore"

// Store is request-scoped key/value storage. Create one per request,
// attach it with WithStore and Clear it when the request is done.
type Store struct {
	mu     sync.RWMutex
	values map[Key]string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[Key]string)}
}

// Get returns the value for key, or "" when unset. A nil Store is empty.
func (s *Store) Get(key Key) string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores value under key. Setting on a nil Store is a no-op.
func (s *Store) Set(key Key, value string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[Key]string)
	}
	s.values[key] = value
}

// Clear removes all values.
func (s *Store) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.values)
}

// Len returns the number of stored values.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// WithStore returns a copy of ctx carrying s.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKeyStore, s)
}

// StoreFromContext returns the Store attached to ctx, if any.
func StoreFromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(contextKeyStore).(*Store)
	return s, ok && s != nil
}
