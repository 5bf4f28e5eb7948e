// Command oneloop evaluates scalar one-loop integrals from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/oneloop/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "oneloop:", err)
		os.Exit(1)
	}
}
