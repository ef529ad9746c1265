// Package clickup_tools exposes the ClickUp tool catalog over MCP.
//
// Every tool is read-only. Each call goes through the catalog dispatcher,
// so a failing tool still returns a text result starting with "Error".
package clickup_tools
