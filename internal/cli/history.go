package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvsplit/config"
	"csvsplit/internal/adapter/store"
	"csvsplit/internal/port"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded split runs",
	Long: `Show runs recorded in the history database (.csvsplit/history.db in the
working directory), newest first.

Examples:
  csvsplit history
  csvsplit history -n 5`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath := config.HistoryDBPath(GetWorkDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	var st port.RunStore
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer st.Close()

	runs, err := st.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	if historyLimit > 0 && len(runs) > historyLimit {
		runs = runs[len(runs)-historyLimit:]
	}

	// Newest first.
	for i := len(runs) - 1; i >= 0; i-- {
		r := runs[i]
		fmt.Printf("%s  %-6s  %s -> %s  size=%d  files=%d  rows=%d\n",
			r.StartedAt.Format("2006-01-02 15:04:05"), r.Status,
			r.Input, r.OutputDir, r.ChunkSize, r.Files, r.Rows)
		if r.Error != "" {
			fmt.Printf("    error: %s\n", r.Error)
		}
	}

	return nil
}
