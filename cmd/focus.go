package cmd

import (
	"context"

	"github.com/mj1618/ymsp/internal/session"
)

func focusDisplay(step int) func(*session.Session, context.Context) error {
	return func(s *session.Session, ctx context.Context) error {
		return s.FocusDisplay(ctx, step)
	}
}

func init() {
	rootCmd.AddCommand(
		sessionCommand("focus-up-window",
			"Focus the window above, wrapping between master and stack", (*session.Session).FocusUp),
		sessionCommand("focus-down-window",
			"Focus the window below, wrapping between master and stack", (*session.Session).FocusDown),
		sessionCommand("focus-master-window",
			"Focus the top master window", (*session.Session).FocusMaster),
		sessionCommand("focus-next-display",
			"Focus the display to the right, wrapping around", focusDisplay(session.Next)),
		sessionCommand("focus-previous-display",
			"Focus the display to the left, wrapping around", focusDisplay(session.Previous)),
	)
}
