package main

import (
	"os"

	"github.com/arthur-debert/blocksync/cmd/blocksync/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		commands.ReportError(os.Stderr, err)
		os.Exit(commands.ExitCode(err))
	}
}
