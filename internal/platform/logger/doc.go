// Package logger provides structured logging for the application: a
// slog-based JSON logger configured from the server settings, plus
// helpers for carrying a request-scoped logger through a context.
package logger
