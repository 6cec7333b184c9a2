package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"govreg/internal/config"
	"govreg/internal/mcptools"
	"govreg/internal/portal"
	"govreg/internal/table"
	"govreg/pkg/logging"
)

func newServeMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve-mcp",
		Short: "Serve the portal collections as read-only MCP tools over stdio",
		Long: `Starts an MCP server on stdin/stdout exposing domains_list,
requests_list and members_list, so AI assistants can query the registrar
portal with the same pagination, sorting, search and status filters as
the interactive views. No destructive portal actions are exposed.`,
		Args: cobra.NoArgs,
		RunE: runServeMCP,
	}
}

func runServeMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Stdout carries the MCP protocol, so logs go to the TUI log file.
	logPath := logging.InitForTUI(logging.ParseLevel(cfg.LogLevel))
	defer logging.Close()
	logging.Info("MCP", "Logs at %s", logPath)

	client, err := portal.New(cfg.Portal)
	if err != nil {
		return fmt.Errorf("failed to create portal client: %w", err)
	}

	scope := table.Scope{
		Portfolio: cfg.Defaults.Portfolio,
		Email:     cfg.Defaults.Email,
	}
	return mcptools.NewServer(client, scope, rootCmd.Version).ServeStdio()
}

func init() {
	rootCmd.AddCommand(newServeMCPCmd())
}
