// Package cmd implements the pseudo CLI's command tree.
package cmd

import (
	"github.com/jeff-160/Pseudocode-Interpreter/internal/config"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pseudo",
	Short: "A tree-walking interpreter for educational exam pseudocode",
	Long: `pseudo runs .pseudo source files written in exam-board style
pseudocode: typed variables, 1-D and 2-D arrays, procedures and functions,
and the usual IF/WHILE/REPEAT/FOR/CASE OF control flow.`,
}

// Execute runs the root command.
func Execute() error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("no-newlines", false, "suppress the trailing newline OUTPUT would otherwise print")
	rootCmd.PersistentFlags().Bool("trace", false, "print one line per executed top-level statement to stderr")
}
