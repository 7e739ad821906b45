package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/ymsp/internal/session"
	"gopkg.in/yaml.v3"
)

const (
	focusUp     = "up"
	focusDown   = "down"
	focusMaster = "master"

	dirNext = "next"
	dirPrev = "prev"

	moveMaster      = "master"
	moveNextDisplay = "next-display"
	movePrevDisplay = "prev-display"
)

// ToolResult is the YAML body of a mutating tool call.
type ToolResult struct {
	OK     bool   `yaml:"ok"              json:"ok"`
	Action string `yaml:"action"          json:"action"`
	Count  int    `yaml:"count,omitempty" json:"count,omitempty"`
	Error  string `yaml:"error,omitempty" json:"error,omitempty"`
}

// resultToText serializes a ToolResult to YAML for MCP response.
func resultToText(result ToolResult) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("ok: %v\naction: %s\nerror: %s", result.OK, result.Action, result.Error)
	}
	return string(b)
}

// stringParam reads a string argument, falling back to def.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

// operation is a session method; the int is the master count to report.
type operation func(*session.Session, context.Context) (int, error)

// writeActionHandler runs op in a locked session and invalidates the
// status cache.
func (s *Server) writeActionHandler(ctx context.Context, action string, op operation) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := ToolResult{Action: action}
	err := s.runner.Locked(ctx, func(ctx context.Context, sess *session.Session) error {
		n, err := op(sess, ctx)
		result.Count = n
		return err
	})
	s.cache.Invalidate()
	if err != nil {
		s.logger.Error("tool call failed", "action", action, "err", err)
		result.Error = err.Error()
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	result.OK = true
	return mcp.NewToolResultText(resultToText(result)), nil
}

// countless adapts an operation without a count result.
func countless(fn func(*session.Session, context.Context) error) operation {
	return func(sess *session.Session, ctx context.Context) (int, error) {
		return 0, fn(sess, ctx)
	}
}

func (s *Server) handleStatus(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.cache.Get(ctx, s.runner.Status)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := yaml.Marshal(st)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleConverge(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.writeActionHandler(ctx, "converge", func(sess *session.Session, ctx context.Context) (int, error) {
		return sess.Count(), sess.Converge(ctx)
	})
}

func (s *Server) handleIncrease(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.writeActionHandler(ctx, "increase_master_count", (*session.Session).IncreaseMasterCount)
}

func (s *Server) handleDecrease(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.writeActionHandler(ctx, "decrease_master_count", (*session.Session).DecreaseMasterCount)
}

func (s *Server) handleFocus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target := stringParam(request.GetArguments(), "target", "")
	var op func(*session.Session, context.Context) error
	switch target {
	case focusUp:
		op = (*session.Session).FocusUp
	case focusDown:
		op = (*session.Session).FocusDown
	case focusMaster:
		op = (*session.Session).FocusMaster
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown focus target: %q (use up, down, or master)", target)), nil
	}
	return s.writeActionHandler(ctx, "focus "+target, countless(op))
}

func (s *Server) handleFocusDisplay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir := stringParam(request.GetArguments(), "direction", dirNext)
	step, err := displayStep(dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.writeActionHandler(ctx, "focus_display "+dir, func(sess *session.Session, ctx context.Context) (int, error) {
		return 0, sess.FocusDisplay(ctx, step)
	})
}

func (s *Server) handleMoveWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	to := stringParam(request.GetArguments(), "to", "")
	var op operation
	switch to {
	case moveMaster:
		op = countless((*session.Session).MoveToMaster)
	case moveNextDisplay, movePrevDisplay:
		step := session.Next
		if to == movePrevDisplay {
			step = session.Previous
		}
		op = func(sess *session.Session, ctx context.Context) (int, error) {
			return 0, sess.MoveToDisplay(ctx, step)
		}
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown destination: %q (use master, next-display, or prev-display)", to)), nil
	}
	return s.writeActionHandler(ctx, "move_window "+to, op)
}

func (s *Server) handleCloseWindow(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.writeActionHandler(ctx, "close_window", countless((*session.Session).CloseFocused))
}

func displayStep(dir string) (int, error) {
	switch dir {
	case dirNext:
		return session.Next, nil
	case dirPrev:
		return session.Previous, nil
	default:
		return 0, fmt.Errorf("unknown direction: %q (use next or prev)", dir)
	}
}
