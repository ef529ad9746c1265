package server

import (
	"context"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/clickup-mcp/internal/logging"
)

// ServerName is the implementation name announced to MCP clients.
const ServerName = "clickup-mcp"

// Instructions tells the model how to navigate the workspace hierarchy.
const Instructions = "Read-only access to a ClickUp workspace. " +
	"Start with get_authorized_user to find workspace (team) IDs, then get_spaces. " +
	"Use get_folders, get_folderless_lists or get_space_details to find list IDs, " +
	"and get_list_details, get_list_custom_fields or get_tasks to inspect a list. " +
	"Every tool returns markdown; failures are returned as a single line starting with \"Error\"."

// NewMCPServer creates the MCP server with tool and resource capabilities
// and session hooks. Tools are registered separately.
func NewMCPServer(version string, sc *ServerContext) *mcpserver.MCPServer {
	return mcpserver.NewMCPServer(ServerName, version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(Instructions),
		mcpserver.WithHooks(SessionHooks(sc)),
	)
}

// SessionHooks tracks active MCP sessions in the mcp_active_sessions gauge.
func SessionHooks(sc *ServerContext) *mcpserver.Hooks {
	hooks := &mcpserver.Hooks{}
	logger := logging.WithOperation(sc.Logger(), "session")

	hooks.AddOnRegisterSession(func(ctx context.Context, session mcpserver.ClientSession) {
		sc.Metrics().IncrementActiveSessions(ctx)
		logger.Debug("session registered", "session_id", session.SessionID())
	})
	hooks.AddOnUnregisterSession(func(ctx context.Context, session mcpserver.ClientSession) {
		sc.Metrics().DecrementActiveSessions(ctx)
		logger.Debug("session unregistered", "session_id", session.SessionID())
	})

	return hooks
}
