// Package server provides the MCP server context and the HTTP surface of
// clickup-mcp.
//
// # Key Components
//
// ServerContext owns the ClickUp client, the tool dispatcher and the
// optional instrumentation (metrics and audit logger). It is created once
// at startup and shared by every tool handler.
//
// HTTPServer serves the MCP streamable HTTP transport at /mcp together with
// the health endpoints /healthz, /readyz and /healthz/detailed.
//
// MetricsServer exposes Prometheus metrics on a dedicated port.
//
// There is no authentication layer: the ClickUp token comes from the
// environment of the process, so the HTTP transport should only be exposed
// to trusted clients.
package server
