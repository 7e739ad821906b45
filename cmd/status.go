package cmd

import (
	"github.com/mj1618/ymsp/internal/output"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how the focused space is classified",
	Long: `Show the managed windows of the focused space with their master, stack or
middle role, the dividing line, the stored master window count and whether
the layout is valid. Does not take the lock or change anything.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	runner, err := newRunner(cmd)
	if err != nil {
		return err
	}
	st, err := runner.Status(cmd.Context())
	if err != nil {
		return err
	}
	return output.Print(st)
}
