package main

import (
	"os"

	"github.com/arthur-debert/cmdmatch/internal/cli"
	"github.com/arthur-debert/cmdmatch/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		style.NewPrinter(os.Stderr, style.FormatAuto).Error(err)
		os.Exit(1)
	}
}
