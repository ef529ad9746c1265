// Package instrumentation provides OpenTelemetry metrics, tracing and audit
// logging for the clickup-mcp server.
//
// # Metrics
//
// MCP HTTP listener:
//   - http_requests_total, http_request_duration_seconds by method, path and status
//   - mcp_active_sessions
//
// ClickUp API:
//   - clickup_api_requests_total, clickup_api_request_duration_seconds by
//     method, endpoint template and outcome (success or an error kind)
//
// MCP tools:
//   - mcp_tool_invocations_total, mcp_tool_duration_seconds by tool and status
//
// Endpoint labels never contain ClickUp identifiers; see EndpointTemplate.
//
// # Tracing
//
// Spans are created for tool invocations (tool.<name>, server kind) and for
// upstream calls (clickup.<METHOD> <template>, client kind).
//
// # Configuration
//
// DefaultConfig reads:
//   - INSTRUMENTATION_ENABLED (default: true)
//   - METRICS_EXPORTER: prometheus, otlp or stdout (default: prometheus)
//   - TRACING_EXPORTER: otlp, stdout or none (default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT, OTEL_EXPORTER_OTLP_INSECURE
//   - OTEL_TRACES_SAMPLER_ARG (default: 0.1)
//   - OTEL_SERVICE_NAME (default: clickup-mcp)
//   - METRICS_DETAILED_LABELS, AUDIT_LOGGING_ENABLED, AUDIT_LOGGING_INCLUDE_DETAILS
//
// # Example Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	provider.Metrics().RecordToolInvocationWithKind(ctx, "get_spaces", instrumentation.StatusSuccess, "", time.Since(start))
package instrumentation
