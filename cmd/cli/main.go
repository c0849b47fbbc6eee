// Package main is the entry point for the wrapquote CLI.
package main

import (
	"fmt"
	"os"

	"wrapquote/cmd/cli/cmd"
	"wrapquote/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
