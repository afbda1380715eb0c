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

package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zillyinc/tellus-client-version/pkg/errors"
	"github.com/zillyinc/tellus-client-version/pkg/serializer"
)

// WriteError writes the standard error response. The request ID is taken
// from the request context, or generated when the middleware did not run.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes err as an error response. A StructuredError
// decides the status, message and details; any other error is reported as
// INTERNAL_ERROR with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	code := errors.ErrCodeInternal
	message := fallbackMessage
	var details map[string]any

	var se *errors.StructuredError
	if stderrors.As(err, &se) {
		code = se.Code
		if se.Message != "" {
			message = se.Message
		}
		details = mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
	} else {
		details = mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	}

	WriteError(w, r, HTTPStatusFromCode(code), code, message, retryableFromCode(code), details)
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code errors.ErrorCode) int {
	return code.HTTPStatus()
}

func retryableFromCode(code errors.ErrorCode) bool {
	switch code {
	case errors.ErrCodeRateLimitExceeded, errors.ErrCodeUnavailable, errors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries over a's, or nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
