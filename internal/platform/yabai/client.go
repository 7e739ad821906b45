// Package yabai implements platform.Service by running the yabai binary.
package yabai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mj1618/ymsp/internal/model"
	"github.com/mj1618/ymsp/internal/platform"
)

// DefaultPath is where Homebrew installs yabai on Intel Macs.
const DefaultPath = "/usr/local/bin/yabai"

// CommandError is returned when yabai exits unsuccessfully.
type CommandError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("yabai %s: exit status %d: %s", strings.Join(e.Args, " "), e.ExitCode, msg)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Client runs yabai as a subprocess for every message.
type Client struct {
	path   string
	logger *log.Logger
}

var _ platform.Service = (*Client)(nil)

func New(path string, logger *log.Logger) *Client {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{path: path, logger: logger}
}

func (c *Client) run(ctx context.Context, msg platform.Message) ([]byte, error) {
	args := msg.Args()
	if args == nil {
		return nil, fmt.Errorf("yabai: no arguments for message kind %s", msg.Kind)
	}
	c.logger.Debug("yabai", "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, c.path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, &CommandError{
			Args:     args,
			ExitCode: exitCode,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			Err:      err,
		}
	}
	return stdout.Bytes(), nil
}

// Send runs msg and discards its output.
func (c *Client) Send(ctx context.Context, msg platform.Message) error {
	_, err := c.run(ctx, msg)
	return err
}

func query[T any](ctx context.Context, c *Client, msg platform.Message) (T, error) {
	var v T
	out, err := c.run(ctx, msg)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(out, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", msg.Kind, err)
	}
	return v, nil
}

func (c *Client) Windows(ctx context.Context) ([]model.Window, error) {
	return query[[]model.Window](ctx, c, platform.QueryWindows())
}

func (c *Client) Displays(ctx context.Context) ([]model.Display, error) {
	return query[[]model.Display](ctx, c, platform.QueryDisplays())
}

func (c *Client) FocusedDisplay(ctx context.Context) (model.Display, error) {
	return query[model.Display](ctx, c, platform.QueryFocusedDisplay())
}

func (c *Client) Spaces(ctx context.Context) ([]model.Space, error) {
	return query[[]model.Space](ctx, c, platform.QuerySpaces())
}

func (c *Client) FocusedSpace(ctx context.Context) (model.Space, error) {
	return query[model.Space](ctx, c, platform.QueryFocusedSpace())
}

func (c *Client) LeftPadding(ctx context.Context) (float64, error) {
	msg := platform.GetConfig("left_padding")
	out, err := c.run(ctx, msg)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse left_padding: %w", err)
	}
	return v, nil
}
