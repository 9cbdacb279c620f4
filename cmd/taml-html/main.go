package main

import (
	"os"

	"github.com/arthur-debert/taml-html/internal/cli"
	"github.com/pterm/pterm"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err)
		os.Exit(1)
	}
}
