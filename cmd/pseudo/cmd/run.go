package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/evaluator"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/history"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/lexer"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/parser"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>.pseudo",
	Short: "Run a pseudocode source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(c *cobra.Command, args []string) error {
	noNewlines, _ := c.Flags().GetBool("no-newlines")
	trace, _ := c.Flags().GetBool("trace")
	if !c.Flags().Changed("no-newlines") {
		noNewlines = cfg.NoNewlines
	}
	if !c.Flags().Changed("trace") {
		trace = cfg.Trace
	}

	file := args[0]
	start := time.Now()
	err := execute(file, noNewlines, trace)
	duration := time.Since(start)

	if trace {
		fmt.Fprintf(os.Stderr, "Ran in %s\n", humanizeDuration(duration))
	}

	if cfg.History {
		exitCode := 0
		if err != nil {
			exitCode = 1
		}
		if recErr := recordHistory(file, exitCode, duration, start); recErr != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record run history: %v\n", recErr)
		}
	}

	return err
}

func execute(file string, noNewlines, trace bool) error {
	if err := checkSourceFile(file); err != nil {
		return err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return &errors.CLIError{Kind: errors.IOError, Message: fmt.Sprintf("%s: %s", file, err)}
	}
	source := string(data)

	lex := lexer.New(source)
	p := parser.New(lex)
	program := p.ParseProgram()

	if perrs := p.Errors(); len(perrs) > 0 {
		return fmt.Errorf("%s", errors.FormatParseErrors(file, source, perrs))
	}

	var opts []evaluator.Option
	if noNewlines {
		opts = append(opts, evaluator.WithNoNewlines())
	}
	if trace {
		opts = append(opts, evaluator.WithTrace(func(line int, text string) {
			fmt.Fprintf(os.Stderr, "%s:%d: %s\n", file, line, text)
		}))
	}

	port := evaluator.NewIOPort(os.Stdin, os.Stdout)
	eval := evaluator.New(file, source, port, opts...)

	if runErr := eval.Run(program); runErr != nil {
		return fmt.Errorf("%s", eval.Diagnostic(runErr))
	}
	return nil
}

// checkSourceFile enforces the .pseudo extension and file existence checks,
// reporting FileNotFound and BadExtension as driver-level errors.
func checkSourceFile(file string) error {
	if filepath.Ext(file) != ".pseudo" {
		return &errors.CLIError{Kind: errors.BadExtension, Message: fmt.Sprintf("%s: source files must have a .pseudo extension", file)}
	}
	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			return &errors.CLIError{Kind: errors.FileNotFound, Message: fmt.Sprintf("%s: no such file", file)}
		}
		return &errors.CLIError{Kind: errors.IOError, Message: fmt.Sprintf("%s: %s", file, err)}
	}
	return nil
}

func recordHistory(file string, exitCode int, duration time.Duration, ranAt time.Time) error {
	path := cfg.HistoryPath
	if path == "" {
		path = defaultHistoryPath()
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(file, exitCode, duration, ranAt)
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pseudo_history.db"
	}
	return filepath.Join(home, ".pseudo_history.db")
}

// humanizeDuration renders an elapsed run time the way --trace output
// reports it: sub-second runs in milliseconds, longer ones in seconds.
func humanizeDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	}
	return d.Round(10 * time.Millisecond).String()
}
