// Package server exposes ymsp operations as Model Context Protocol tools.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/ymsp/internal/session"
	"github.com/mj1618/ymsp/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the session runner and status cache.
// Tool calls are serialised; mutating ones also take the exclusivity lock
// so they compose with yabai signal handlers.
type Server struct {
	runner *session.Runner
	cache  *StatusCache
	logger *log.Logger
	mu     sync.Mutex
	mcp    *mcpserver.MCPServer
}

// New creates an MCP server with every ymsp tool registered.
func New(runner *session.Runner, cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		cache:  NewStatusCache(cfg.CacheTTL),
		logger: logger,
	}
	s.mcp = mcpserver.NewMCPServer("ymsp", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	s.logger.Info("starting MCP server", "transport", cfg.Transport, "port", cfg.Port)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report the focused space: windows with their master/stack/middle role, dividing line, layout validity and master window count"),
		),
		s.handleStatus,
	)

	s.mcp.AddTool(
		mcp.NewTool("converge",
			mcp.WithDescription("Rearrange the focused space into the master/stack layout for its stored master window count"),
		),
		s.handleConverge,
	)

	s.mcp.AddTool(
		mcp.NewTool("increase_master_count",
			mcp.WithDescription("Move one more window into the master region of the focused space"),
		),
		s.handleIncrease,
	)

	s.mcp.AddTool(
		mcp.NewTool("decrease_master_count",
			mcp.WithDescription("Move one window out of the master region of the focused space"),
		),
		s.handleDecrease,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Move focus between windows, wrapping between the master and stack regions"),
			mcp.WithString("target", mcp.Description("Where to move focus: up, down, master"), mcp.Required(),
				mcp.Enum(focusUp, focusDown, focusMaster)),
		),
		s.handleFocus,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus_display",
			mcp.WithDescription("Focus the next or previous display, ordered left to right"),
			mcp.WithString("direction", mcp.Description("next or prev (default: next)"), mcp.Enum(dirNext, dirPrev)),
		),
		s.handleFocusDisplay,
	)

	s.mcp.AddTool(
		mcp.NewTool("move_window",
			mcp.WithDescription("Move the focused window to the master region or to another display"),
			mcp.WithString("to", mcp.Description("Destination: master, next-display, prev-display"), mcp.Required(),
				mcp.Enum(moveMaster, moveNextDisplay, movePrevDisplay)),
		),
		s.handleMoveWindow,
	)

	s.mcp.AddTool(
		mcp.NewTool("close_window",
			mcp.WithDescription("Close the focused window"),
		),
		s.handleCloseWindow,
	)
}
