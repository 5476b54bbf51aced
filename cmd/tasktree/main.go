package main

import (
	"os"

	"github.com/tasktree/tasktree/internal/cli"
)

func main() {
	// Without a subcommand the root command opens the interactive menu.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
