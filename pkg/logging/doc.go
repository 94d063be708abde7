// Package logging provides structured logging utilities for resep.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults.
// Logs go to stderr as JSON so they never interleave with the interactive
// screen written to stdout.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: catalog request URLs, request IDs, and source locations
//   - INFO: general informational messages
//   - WARN/WARNING: skipped recipes, degraded responses (CLI default)
//   - ERROR: failures requiring attention
//
// # Usage
//
//	logging.SetDefaultStructuredLoggerWithLevel("resep", version, "debug")
//	slog.Debug("catalog request", "endpoint", "search", "requestID", id)
//
// # Environment Configuration
//
// When no level is passed explicitly, LOG_LEVEL is consulted:
//
//	LOG_LEVEL=debug resep
package logging
