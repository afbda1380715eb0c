// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidVersion,
//	    "client sent a malformed version",
//	    parseErr,
//	    map[string]interface{}{
//	        "platform": "ios",
//	        "header":   "X-Zilly-Ios-Version",
//	    },
//	)
package errors
