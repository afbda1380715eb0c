// Package logging configures log/slog for tellus binaries.
//
// Loggers write JSON to stderr and carry "module" and "version" attributes.
// At debug level the source location is added as well.
//
//	logging.SetDefaultStructuredLogger("tellusd", version)
//
// SetDefaultStructuredLogger reads the level from the environment variable
// named by EnvLogLevel (LOG_LEVEL). The CLI passes its --log-level flag to
// SetDefaultStructuredLoggerWithLevel instead. ParseLogLevel accepts debug,
// info, warn (or warning) and error; anything else is info.
//
// NewLogLogger adapts the default slog handler to a *log.Logger for APIs that
// still take one, such as http.Server.ErrorLog.
package logging
