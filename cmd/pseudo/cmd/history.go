package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/history"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent `pseudo run` invocations",
	RunE:  showHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
}

func showHistory(_ *cobra.Command, _ []string) error {
	path := cfg.HistoryPath
	if path == "" {
		path = defaultHistoryPath()
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded yet")
		return nil
	}

	for _, r := range runs {
		status := "ok"
		if r.ExitCode != 0 {
			status = fmt.Sprintf("exit %d", r.ExitCode)
		}
		fmt.Printf("%s  %-30s %-8s %s\n", humanize.Time(r.RanAt), r.File, status, r.Duration)
	}
	return nil
}
