// Command zerosugar is the CLI front end for the desugaring transformer:
// lex, parse, and transform JavaScript source from a file or stdin.
package main

import (
	"fmt"
	"os"

	"github.com/zerosugarjs/zerosugar/cmd/zerosugar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
