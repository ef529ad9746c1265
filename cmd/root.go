package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the clickup-mcp application
var rootCmd = &cobra.Command{
	Use:   "clickup-mcp",
	Short: "Read-only MCP server for ClickUp workspaces",
	Long: `clickup-mcp exposes a ClickUp workspace to AI assistants over the
Model Context Protocol. Its tools read the workspace hierarchy (workspaces,
spaces, folders, lists, tasks, custom fields and views) and return markdown.

The ClickUp personal API token is read from CLICKUP_API_KEY on every call.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "clickup-mcp version %s\n" .Version}}`)

	// Without a subcommand the MCP server is started on stdio.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
