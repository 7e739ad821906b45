package cmd

import (
	"context"

	"github.com/mj1618/ymsp/internal/session"
)

func moveToDisplay(step int) func(*session.Session, context.Context) error {
	return func(s *session.Session, ctx context.Context) error {
		return s.MoveToDisplay(ctx, step)
	}
}

func init() {
	rootCmd.AddCommand(
		sessionCommand("move-window-to-master",
			"Swap the focused window toward the master region", (*session.Session).MoveToMaster),
		sessionCommand("move-window-to-next-display",
			"Send the focused window to the display to the right", moveToDisplay(session.Next)),
		sessionCommand("move-window-to-previous-display",
			"Send the focused window to the display to the left", moveToDisplay(session.Previous)),
		sessionCommand("close-focused-window",
			"Close the focused window", (*session.Session).CloseFocused),
	)
}
