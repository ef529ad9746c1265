package instrumentation

import "strings"

// Cardinality management helpers for metrics.
//
// ClickUp identifiers are unbounded, so they must never reach a metric label
// verbatim. The client labels requests by endpoint template; these helpers
// cover raw paths that bypass the template.

// EndpointTemplate reduces a ClickUp path to a low-cardinality label.
// Templates pass through unchanged. In raw paths every segment that follows
// a resource segment is replaced by {id}, which matches the
// /resource/id/sub-resource layout of the v2 API.
//
// Example:
//
//	EndpointTemplate("/list/{list_id}/task")  // "/list/{list_id}/task"
//	EndpointTemplate("/list/901/field")       // "/list/{id}/field"
//	EndpointTemplate("user")                  // "/user"
func EndpointTemplate(path string) string {
	path = strings.Trim(path, "/")
	if path == "" {
		return "/"
	}
	if strings.Contains(path, "{") {
		return "/" + path
	}

	segments := strings.Split(path, "/")
	for i := 1; i < len(segments); i += 2 {
		segments[i] = "{id}"
	}
	return "/" + strings.Join(segments, "/")
}

// knownHTTPPaths are the routes served by the MCP HTTP listener.
var knownHTTPPaths = map[string]bool{
	"/mcp":              true,
	"/healthz":          true,
	"/readyz":           true,
	"/healthz/detailed": true,
}

// NormalizeHTTPPath maps request paths of the HTTP listener to a fixed set,
// folding everything unknown into "other".
func NormalizeHTTPPath(path string) string {
	if knownHTTPPaths[path] {
		return path
	}
	return "other"
}
