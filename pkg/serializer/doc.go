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

// Package serializer renders values as JSON, YAML, or tables for the CLI
// and encodes HTTP responses for the server.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented output
//   - Default for API responses and unknown formats
//
// YAML:
//   - Human-readable, gopkg.in/yaml.v3
//
// Table:
//   - Terminal output through text/tabwriter
//   - Values implementing Tabular render as columns
//   - Anything else is flattened to FIELD/VALUE rows keyed by json tag
//
// # Usage
//
//	w := serializer.NewStdoutWriter(serializer.FormatTable)
//	defer w.Close()
//	if err := w.Serialize(ctx, rows); err != nil {
//	    return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//	serializer.Respond(w, r, http.StatusOK, data) // honors Accept: application/yaml
//
// RespondJSON buffers the encoding before writing headers so a marshal
// failure never produces a partial 200 response.
package serializer
