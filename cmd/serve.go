package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/clickup-mcp/internal/clickup"
	"github.com/teemow/clickup-mcp/internal/instrumentation"
	"github.com/teemow/clickup-mcp/internal/logging"
	"github.com/teemow/clickup-mcp/internal/resources"
	"github.com/teemow/clickup-mcp/internal/server"
	"github.com/teemow/clickup-mcp/internal/tools/clickup_tools"
)

const (
	transportStdio          = "stdio"
	transportStreamableHTTP = "streamable-http"

	defaultHTTPAddr = ":8080"
	defaultEnvFile  = ".env"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

// ServeConfig holds the settings of the serve command.
type ServeConfig struct {
	Transport        string
	HTTPAddr         string
	Debug            bool
	EnvFile          string
	Yolo             bool
	DisableStreaming bool

	// BaseURL overrides the ClickUp API base URL.
	BaseURL string

	// CharacterLimit caps the length of every tool response.
	CharacterLimit int

	Metrics MetricsConfig
}

func newServeCmd() *cobra.Command {
	var config ServeConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP server to expose ClickUp workspace data to AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport at /mcp

The ClickUp personal API token is read from CLICKUP_API_KEY on every tool
call, so it may be set or rotated after the server has started. A .env file
in the working directory is loaded when present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadEnvFile(config.EnvFile, cmd.Flags().Changed("env-file")); err != nil {
				return err
			}
			loadServeEnvVars(cmd, &config)
			return runServe(config)
		},
	}

	cmd.Flags().BoolVar(&config.Debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&config.Transport, "transport", transportStdio, "Transport type: stdio or streamable-http. Can also use MCP_TRANSPORT env var.")
	cmd.Flags().StringVar(&config.HTTPAddr, "http-addr", defaultHTTPAddr, "HTTP server address (for streamable-http transport). Defaults to :$PORT when PORT is set.")
	cmd.Flags().StringVar(&config.EnvFile, "env-file", defaultEnvFile, "Load environment variables from this file. Existing variables are not overridden.")
	cmd.Flags().BoolVar(&config.Yolo, "yolo", false, "Accepted for compatibility. All ClickUp tools are read-only, so this flag changes nothing.")
	cmd.Flags().BoolVar(&config.DisableStreaming, "disable-streaming", false, "Disable streaming for HTTP transport (for compatibility with certain clients)")
	cmd.Flags().StringVar(&config.BaseURL, "base-url", clickup.DefaultBaseURL, "ClickUp API base URL. Can also use CLICKUP_API_BASE_URL env var.")
	cmd.Flags().IntVar(&config.CharacterLimit, "character-limit", 0, "Maximum characters per tool response (0 uses the default of 25000). Can also use CLICKUP_CHARACTER_LIMIT env var.")

	// Metrics server configuration
	cmd.Flags().BoolVar(&config.Metrics.Enabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port (HTTP transport only). Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&config.Metrics.Addr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

// loadEnvFile loads path with godotenv. A missing file is only an error when
// the path was given explicitly.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// loadServeEnvVars applies environment variables to settings whose flag was
// not explicitly set.
func loadServeEnvVars(cmd *cobra.Command, config *ServeConfig) {
	flags := cmd.Flags()

	if !flags.Changed("transport") {
		if v := os.Getenv("MCP_TRANSPORT"); v != "" {
			config.Transport = v
		}
	}
	if !flags.Changed("http-addr") {
		if port := os.Getenv("PORT"); port != "" {
			config.HTTPAddr = ":" + port
		}
	}
	if !flags.Changed("base-url") {
		if v := os.Getenv("CLICKUP_API_BASE_URL"); v != "" {
			config.BaseURL = v
		}
	}
	if !flags.Changed("character-limit") {
		if v := os.Getenv("CLICKUP_CHARACTER_LIMIT"); v != "" {
			if n, err := cast.ToIntE(v); err == nil && n > 0 {
				config.CharacterLimit = n
			}
		}
	}
	if !flags.Changed("metrics-enabled") {
		if v := os.Getenv("METRICS_ENABLED"); v != "" {
			if enabled, err := cast.ToBoolE(v); err == nil {
				config.Metrics.Enabled = enabled
			}
		}
	}
	if !flags.Changed("metrics-addr") {
		if v := os.Getenv("METRICS_ADDR"); v != "" {
			config.Metrics.Addr = v
		}
	}
}

func runServe(config ServeConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// stdout carries the protocol on stdio, so logs always go to stderr.
	logger := logging.NewLogger(os.Stderr, config.Debug)
	slog.SetDefault(logger)

	if config.Transport != transportStdio && config.Transport != transportStreamableHTTP {
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", config.Transport)
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version
	if err := instrConfig.Validate(); err != nil {
		return fmt.Errorf("invalid instrumentation config: %w", err)
	}

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			logger.Warn("instrumentation shutdown failed", logging.Err(err))
		}
	}()

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if config.Transport != transportStdio && config.Metrics.Enabled && provider.Enabled() && provider.PrometheusHandler() != nil {
		metricsServer, err = startMetricsServer(config.Metrics, provider)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(ctx); err != nil {
				logger.Warn("metrics server shutdown failed", logging.Err(err))
			}
		}()
	}

	client, err := clickup.NewClient(config.BaseURL, clickup.EnvCredentials{},
		clickup.WithLogger(logging.NewSlogAdapter(logger)),
		clickup.WithMetrics(provider.Metrics()),
		clickup.WithUserAgent("clickup-mcp/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create ClickUp client: %w", err)
	}
	if !client.HasCredential() {
		logger.Warn(clickup.APIKeyEnv + " is not set; tools will return an error until it is")
	}

	opts := []server.Option{
		server.WithLogger(logger),
		server.WithCharacterLimit(config.CharacterLimit),
	}
	if provider.Enabled() {
		opts = append(opts,
			server.WithMetrics(provider.Metrics()),
			server.WithAuditLogger(instrumentation.NewAuditLoggerWithConfig(logger, instrConfig.AuditLogging)),
		)
	}

	serverContext, err := server.NewServerContext(shutdownCtx, client, opts...)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			logger.Warn("server context shutdown failed", logging.Err(err))
		}
	}()

	if config.Yolo {
		logger.Info("--yolo has no effect: all ClickUp tools are read-only")
	}

	mcpSrv := server.NewMCPServer(version, serverContext)
	if err := registerAll(mcpSrv, serverContext); err != nil {
		return err
	}

	logger.Info("starting clickup-mcp",
		"version", version,
		"transport", config.Transport,
		"tools", serverContext.Catalog().Len(),
		"base_url", client.BaseURL())

	switch config.Transport {
	case transportStreamableHTTP:
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, serverContext, config, provider)
	default:
		return runStdioServer(mcpSrv)
	}
}

func startMetricsServer(config MetricsConfig, provider *instrumentation.Provider) (*server.MetricsServer, error) {
	metricsServer, err := server.NewMetricsServer(server.MetricsServerConfig{
		Addr:                    config.Addr,
		Enabled:                 true,
		InstrumentationProvider: provider,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics server: %w", err)
	}

	// Use ready channel to confirm metrics server started successfully
	metricsReady := make(chan struct{})
	metricsErr := make(chan error, 1)
	go func() {
		if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && !errors.Is(err, http.ErrServerClosed) {
			metricsErr <- err
		}
		close(metricsErr)
	}()

	select {
	case <-metricsReady:
		slog.Info("metrics server started", "addr", metricsServer.Addr())
		return metricsServer, nil
	case err := <-metricsErr:
		return nil, fmt.Errorf("metrics server failed to start: %w", err)
	case <-time.After(5 * time.Second):
		return nil, fmt.Errorf("metrics server startup timed out")
	}
}

// registerAll registers the ClickUp tools and the reference resource.
func registerAll(mcpSrv *mcpserver.MCPServer, sc *server.ServerContext) error {
	registrations := []struct {
		name     string
		register func() error
	}{
		{
			name: "ClickUp tools",
			register: func() error {
				return clickup_tools.RegisterClickUpTools(mcpSrv, sc)
			},
		},
		{
			name: "catalog resources",
			register: func() error {
				return resources.RegisterCatalogResources(mcpSrv, sc)
			},
		},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}
	return nil
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, sc *server.ServerContext, config ServeConfig, provider *instrumentation.Provider) error {
	httpServer := server.NewHTTPServer(mcpSrv, config.DisableStreaming)
	httpServer.SetHealthChecker(server.NewHealthChecker(sc))
	if provider.Enabled() {
		httpServer.SetMetrics(provider.Metrics())
	}

	slog.Info("streamable HTTP server starting",
		"addr", config.HTTPAddr,
		"endpoint", server.MCPEndpoint,
		"health", "/healthz, /readyz, /healthz/detailed")

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.Start(config.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
	}

	slog.Info("HTTP server gracefully stopped")
	return nil
}
