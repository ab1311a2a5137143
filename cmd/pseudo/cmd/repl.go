package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/evaluator"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/lexer"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/parser"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive pseudocode shell",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runRepl feeds one line at a time to a persistent evaluator sharing a
// single scope stack, so DECLAREs and PROCEDURE/FUNCTION definitions made
// on one line are visible to later lines.
func runRepl(c *cobra.Command, _ []string) error {
	noNewlines, _ := c.Flags().GetBool("no-newlines")
	if !c.Flags().Changed("no-newlines") {
		noNewlines = cfg.NoNewlines
	}

	prompt := "pseudo> "
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		prompt = ""
	}

	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	var opts []evaluator.Option
	if noNewlines {
		opts = append(opts, evaluator.WithNoNewlines())
	}
	port := evaluator.NewIOPort(os.Stdin, os.Stdout)
	eval := evaluator.New("<repl>", "", port, opts...)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		runReplLine(eval, line)
	}
}

func runReplLine(eval *evaluator.Evaluator, line string) {
	lex := lexer.New(line)
	p := parser.New(lex)
	program := p.ParseProgram()

	if perrs := p.Errors(); len(perrs) > 0 {
		for _, e := range perrs {
			fmt.Fprintf(os.Stderr, "<repl>:%d: %s\n", e.Pos.Line, e.Message)
		}
		return
	}

	if err := eval.Run(program); err != nil {
		fmt.Fprintln(os.Stderr, eval.Diagnostic(err))
	}
}
