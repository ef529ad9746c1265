package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/clickup-mcp/internal/catalog"
	"github.com/teemow/clickup-mcp/internal/instrumentation"
	"github.com/teemow/clickup-mcp/internal/logging"
	"github.com/teemow/clickup-mcp/internal/server"
)

// CallFunc runs one tool invocation.
type CallFunc func(ctx context.Context, args map[string]any) catalog.Result

// InstrumentedToolHandler wraps call with a tool span, metrics and an
// audit record. Failures are returned as ordinary text results so the
// client sees the "Error ..." line, never a protocol error.
//
// Usage:
//
//	s.AddTool(tool, common.InstrumentedToolHandler(desc, sc, call))
func InstrumentedToolHandler(desc catalog.Descriptor, sc *server.ServerContext, call CallFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		invocation := instrumentation.NewToolInvocation(desc.Name).
			WithResource(ResourceIDFromArgs(args))

		attrs := instrumentation.NewSpanAttributeBuilder().
			WithInvocation(invocation.InvocationID).
			WithResourceID(invocation.ResourceID).
			WithReadOnly(desc.ReadOnly).
			Build()
		ctx, span := instrumentation.StartToolSpan(ctx, desc.Name, attrs...)
		defer span.End()
		invocation.WithSpanContext(ctx)

		start := time.Now()
		result := call(ctx, args)
		duration := time.Since(start)

		if result.Failed() {
			invocation.CompleteWithError(result.ErrorKind(), result.Err)
			instrumentation.SetSpanError(span, result.Err)
		} else {
			invocation.CompleteSuccess()
			instrumentation.SetSpanSuccess(span)
		}

		sc.Metrics().RecordToolInvocationWithKind(ctx, desc.Name, invocation.Status(), result.ErrorKind(), duration)
		sc.AuditLogger().LogToolInvocation(invocation)
		logging.WithTool(sc.Logger(), desc.Name).Debug("tool invoked",
			logging.Invocation(invocation.InvocationID),
			logging.Status(invocation.Status()),
			logging.Duration(duration))

		return mcp.NewToolResultText(result.Text), nil
	}
}
