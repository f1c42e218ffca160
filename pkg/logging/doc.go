// Package logging provides structured logging defaults shared by the
// cookbook CLI and server.
//
// It wraps the standard library slog package: JSON output to stderr, module
// and version attached to every record, log level taken from the LOG_LEVEL
// environment variable (DEBUG, INFO, WARN, ERROR; default INFO), and source
// location tracking when running at debug level.
//
// Set the default logger early in main():
//
//	logging.SetDefaultStructuredLogger("cookbook", version)
//	slog.Info("library opened", "recipes", n)
package logging
