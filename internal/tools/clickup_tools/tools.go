package clickup_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/clickup-mcp/internal/catalog"
	"github.com/teemow/clickup-mcp/internal/server"
	"github.com/teemow/clickup-mcp/internal/tools/common"
)

// RegisterClickUpTools registers every tool of the server catalog.
func RegisterClickUpTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	dispatcher := sc.Dispatcher()

	for _, desc := range sc.Catalog().Descriptors() {
		tool, err := NewTool(desc)
		if err != nil {
			return err
		}

		name := desc.Name
		call := func(ctx context.Context, args map[string]any) catalog.Result {
			return dispatcher.Call(ctx, name, args)
		}
		s.AddTool(tool, common.InstrumentedToolHandler(desc, sc, call))
	}

	return nil
}

// NewTool converts a descriptor into an MCP tool definition with a JSON
// schema for its parameters.
func NewTool(desc catalog.Descriptor) (mcp.Tool, error) {
	opts := []mcp.ToolOption{
		mcp.WithDescription(desc.Description),
		mcp.WithReadOnlyHintAnnotation(desc.ReadOnly),
		mcp.WithDestructiveHintAnnotation(!desc.ReadOnly),
		mcp.WithIdempotentHintAnnotation(desc.ReadOnly),
		mcp.WithOpenWorldHintAnnotation(true),
	}

	for _, p := range desc.Params {
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			props = append(props, mcp.Required())
		}

		switch p.Type {
		case catalog.TypeString:
			if def, ok := p.Default.(string); ok {
				props = append(props, mcp.DefaultString(def))
			}
			opts = append(opts, mcp.WithString(p.Name, props...))

		case catalog.TypeBool:
			if def, ok := p.Default.(bool); ok {
				props = append(props, mcp.DefaultBool(def))
			}
			opts = append(opts, mcp.WithBoolean(p.Name, props...))

		case catalog.TypeInteger:
			if def, ok := p.Default.(int); ok {
				props = append(props, mcp.DefaultNumber(float64(def)))
			}
			props = append(props, mcp.Min(float64(p.Min)))
			if p.Max > 0 {
				props = append(props, mcp.Max(float64(p.Max)))
			}
			opts = append(opts, mcp.WithNumber(p.Name, props...))

		default:
			return mcp.Tool{}, fmt.Errorf("tool %s: parameter %s has unsupported type %s", desc.Name, p.Name, p.Type)
		}
	}

	return mcp.NewTool(desc.Name, opts...), nil
}
