package cmd

import (
	"context"

	"github.com/mj1618/ymsp/internal/output"
	"github.com/mj1618/ymsp/internal/session"
	"github.com/spf13/cobra"
)

// CountResult is the output of a master count change.
type CountResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Count  int    `yaml:"count"  json:"count"`
}

var increaseCmd = &cobra.Command{
	Use:   "increase-master-window-count",
	Short: "Move one more window into the master region",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCountChange(cmd, "increase", (*session.Session).IncreaseMasterCount)
	},
}

var decreaseCmd = &cobra.Command{
	Use:   "decrease-master-window-count",
	Short: "Move one window out of the master region",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCountChange(cmd, "decrease", (*session.Session).DecreaseMasterCount)
	},
}

func init() {
	rootCmd.AddCommand(increaseCmd, decreaseCmd)
}

func runCountChange(cmd *cobra.Command, action string, change func(*session.Session, context.Context) (int, error)) error {
	var count int
	err := runLocked(cmd, func(ctx context.Context, s *session.Session) error {
		var err error
		count, err = change(s, ctx)
		return err
	})
	if err != nil {
		return err
	}
	return output.Print(CountResult{OK: true, Action: action, Count: count})
}
