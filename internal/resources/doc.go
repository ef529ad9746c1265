// Package resources provides read-only MCP resources. It currently serves a
// markdown reference of the ClickUp tool catalog.
package resources
