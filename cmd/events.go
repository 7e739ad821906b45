package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mj1618/ymsp/internal/session"
	"github.com/spf13/cobra"
)

// Environment variables yabai sets for window signals.
const (
	envProcessID = "YABAI_PROCESS_ID"
	envWindowID  = "YABAI_WINDOW_ID"
)

var onYabaiStartCmd = sessionCommand("on-yabai-start",
	"Arrange the focused space, for yabai's startup signal", (*session.Session).Converge)

var windowMovedCmd = sessionCommand("window-moved",
	"Re-arrange the focused space after a window moved", (*session.Session).Converge)

var windowCreatedCmd = &cobra.Command{
	Use:   "window-created",
	Short: "Place a new window into master or stack",
	Long: `Place a newly created window into the master or stack region and re-arrange
the focused space. Nothing happens when the layout is still valid.

The window is read from the YABAI_PROCESS_ID and YABAI_WINDOW_ID variables
yabai sets for window signals, unless --pid and --window-id are given.`,
	Args: cobra.NoArgs,
	RunE: runWindowCreated,
}

func init() {
	rootCmd.AddCommand(onYabaiStartCmd, windowMovedCmd, windowCreatedCmd)
	windowCreatedCmd.Flags().Int("pid", 0, "Process id of the new window (default: $"+envProcessID+")")
	windowCreatedCmd.Flags().Int("window-id", 0, "Id of the new window (default: $"+envWindowID+")")
}

func runWindowCreated(cmd *cobra.Command, args []string) error {
	pid, _ := cmd.Flags().GetInt("pid")
	id, _ := cmd.Flags().GetInt("window-id")
	pid, id, err := newWindow(pid, id, os.Getenv)
	if err != nil {
		return err
	}
	return runLocked(cmd, func(ctx context.Context, s *session.Session) error {
		return s.WindowCreated(ctx, pid, id)
	})
}

// newWindow fills unset ids from the yabai signal environment.
func newWindow(pid, id int, getenv func(string) string) (int, int, error) {
	var err error
	if pid == 0 {
		if pid, err = envInt(envProcessID, getenv); err != nil {
			return 0, 0, err
		}
	}
	if id == 0 {
		if id, err = envInt(envWindowID, getenv); err != nil {
			return 0, 0, err
		}
	}
	return pid, id, nil
}

func envInt(name string, getenv func(string) string) (int, error) {
	v := getenv(name)
	if v == "" {
		return 0, fmt.Errorf("%s is not set", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return n, nil
}
