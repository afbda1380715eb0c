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

// Package defaults provides centralized configuration constants for the
// client version service.
//
// Timeouts are organized by component:
//
//   - Server timeouts: For HTTP server configuration
//   - Rate limiting: Token bucket defaults for API endpoints
//
// Values here are defaults only; pkg/server overrides some of them from the
// environment (PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT, RATE_LIMIT_BURST).
package defaults
