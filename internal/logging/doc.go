// Package logging provides structured logging utilities for the clickup-mcp server.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "get_spaces")
//	logger.Info("tool finished",
//	    logging.Status(logging.StatusSuccess),
//	    logging.Duration(time.Since(start)))
//
// Upstream requests are logged with the endpoint and status:
//
//	logger.Debug("clickup request",
//	    logging.Method("GET"),
//	    logging.Endpoint("/list/123/task"),
//	    logging.HTTPStatus(200))
//
// # Security Considerations
//
// The ClickUp API token is never logged. Use Token (or SanitizeToken) when a
// log line needs to prove a token was present.
package logging
