// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package. Production mode emits
// JSON, development mode emits human readable text, and an optional log file
// always receives JSON. A request-scoped logger travels in the context.
package logger
