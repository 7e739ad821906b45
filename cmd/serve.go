package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/ymsp/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing ymsp tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the ymsp
operations as tools. Mutating tools take the same lock as the yabai signal
handlers.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  ymsp serve
  ymsp serve --transport streamable-http --port 8080
  ymsp serve --cache-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Status cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
	}

	runner, err := newRunner(cmd)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return server.New(runner, cfg, loggerFromContext(cmd.Context())).Serve(cfg)
}
