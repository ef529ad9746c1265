package resources

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/clickup-mcp/internal/server"
	"github.com/teemow/clickup-mcp/internal/tools/clickup_tools"
)

// ToolsReferenceURI identifies the tool reference resource.
const ToolsReferenceURI = "clickup://tools/reference"

// RegisterCatalogResources registers the tool reference resource. Clients
// can read it to learn the navigation order (user, spaces, folders, lists,
// tasks) without calling any tool.
func RegisterCatalogResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	reference := mcp.NewResource(
		ToolsReferenceURI,
		"ClickUp Tools Reference",
		mcp.WithResourceDescription("Arguments and endpoints of every ClickUp tool served here"),
		mcp.WithMIMEType("text/markdown"),
	)

	s.AddResource(reference, func(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/markdown",
				Text:     clickup_tools.GenerateMarkdown(sc.Catalog()),
			},
		}, nil
	})

	return nil
}
