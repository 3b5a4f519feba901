// Package main is the entry point for the osiris-platform CLI.
package main

import (
	"fmt"
	"os"

	"github.com/osirisproject/cli/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
