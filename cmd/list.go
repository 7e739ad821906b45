package cmd

import (
	"strings"

	"github.com/mj1618/ymsp/internal/model"
	"github.com/mj1618/ymsp/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List windows or applications",
	Long: `List the windows ymsp manages on the focused space with their app, title,
pid and frame. With --all, list every window yabai reports, including
floating, minimized and hidden ones on other spaces.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("all", false, "List every window yabai knows about")
	listCmd.Flags().Bool("apps", false, "List applications instead of windows")
	listCmd.Flags().Int("pid", 0, "Filter windows by PID")
	listCmd.Flags().String("app", "", "Filter windows by app name (case-insensitive substring)")
}

// appEntry is the output for --apps mode.
type appEntry struct {
	App string `yaml:"app" json:"app"`
	PID int    `yaml:"pid" json:"pid"`
}

func runList(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	apps, _ := cmd.Flags().GetBool("apps")
	pid, _ := cmd.Flags().GetInt("pid")
	appName, _ := cmd.Flags().GetString("app")

	runner, err := newRunner(cmd)
	if err != nil {
		return err
	}
	windows, err := runner.Windows(cmd.Context(), all)
	if err != nil {
		return err
	}
	windows = filterWindows(windows, pid, appName)

	if apps {
		return output.Print(uniqueApps(windows))
	}
	if windows == nil {
		windows = []model.Window{}
	}
	return output.Print(windows)
}

func filterWindows(windows []model.Window, pid int, app string) []model.Window {
	var result []model.Window
	for _, w := range windows {
		if pid != 0 && w.PID != pid {
			continue
		}
		if app != "" && !strings.Contains(strings.ToLower(w.App), strings.ToLower(app)) {
			continue
		}
		result = append(result, w)
	}
	return result
}

// uniqueApps aggregates windows to one entry per app, in first-seen order.
func uniqueApps(windows []model.Window) []appEntry {
	seen := make(map[string]bool)
	entries := []appEntry{}
	for _, w := range windows {
		if !seen[w.App] {
			seen[w.App] = true
			entries = append(entries, appEntry{App: w.App, PID: w.PID})
		}
	}
	return entries
}
