// Package logger builds the application's slog loggers: JSON to
// stdout, optional Sentry fan-out, and context extractors that stamp
// request-scoped attributes onto every record.
package logger
