// Command pseudo is the CLI driver for the pseudocode interpreter: it
// lexes, parses, and evaluates .pseudo source files.
package main

import (
	"fmt"
	"os"

	"github.com/jeff-160/Pseudocode-Interpreter/cmd/pseudo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
