// Command roman converts between integers and Roman numerals.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/roman/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "roman:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
