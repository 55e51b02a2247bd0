// Command atomcss compiles utility classes found in Go and templ sources
// into an atomic stylesheet and lints class usage.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// lint already reported its findings
		if !errors.Is(err, errLintFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
