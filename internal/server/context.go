package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/teemow/clickup-mcp/internal/catalog"
	"github.com/teemow/clickup-mcp/internal/clickup"
	"github.com/teemow/clickup-mcp/internal/instrumentation"
	"github.com/teemow/clickup-mcp/internal/logging"
)

// ServerContext holds the long-lived dependencies of the MCP server.
type ServerContext struct {
	ctx        context.Context
	cancel     context.CancelFunc
	client     *clickup.Client
	dispatcher *catalog.Dispatcher
	logger     *slog.Logger

	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	limit       int

	mu       sync.RWMutex
	shutdown bool
}

// Option configures a ServerContext.
type Option func(*ServerContext)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(sc *ServerContext) { sc.logger = l }
}

// WithMetrics enables tool metrics.
func WithMetrics(m *instrumentation.Metrics) Option {
	return func(sc *ServerContext) { sc.metrics = m }
}

// WithAuditLogger enables audit records for tool invocations.
func WithAuditLogger(al *instrumentation.AuditLogger) Option {
	return func(sc *ServerContext) { sc.auditLogger = al }
}

// WithCharacterLimit overrides the maximum length of a tool response.
func WithCharacterLimit(n int) Option {
	return func(sc *ServerContext) { sc.limit = n }
}

// NewServerContext creates a server context serving the built-in tool
// catalog through client.
func NewServerContext(ctx context.Context, client *clickup.Client, opts ...Option) (*ServerContext, error) {
	if client == nil {
		return nil, fmt.Errorf("clickup client is required")
	}

	shutdownCtx, cancel := context.WithCancel(ctx)
	sc := &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(sc)
	}

	dispatcherOpts := []catalog.DispatcherOption{
		catalog.WithLogger(logging.NewSlogAdapter(sc.logger)),
	}
	if sc.limit > 0 {
		dispatcherOpts = append(dispatcherOpts, catalog.WithCharacterLimit(sc.limit))
	}
	sc.dispatcher = catalog.NewDispatcher(catalog.Builtin(), client, dispatcherOpts...)

	return sc, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Client returns the ClickUp API client.
func (sc *ServerContext) Client() *clickup.Client {
	return sc.client
}

// Dispatcher returns the tool dispatcher.
func (sc *ServerContext) Dispatcher() *catalog.Dispatcher {
	return sc.dispatcher
}

// Catalog returns the served tool catalog.
func (sc *ServerContext) Catalog() *catalog.Catalog {
	return sc.dispatcher.Catalog()
}

// Logger returns the server logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// Metrics returns the metrics instance, or nil when metrics are disabled.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// AuditLogger returns the audit logger, or nil when auditing is disabled.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	return sc.auditLogger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
