// Package common provides helpers shared by MCP tool registrations:
// instrumentation of tool handlers and extraction of the ClickUp resource
// a call targets.
package common
