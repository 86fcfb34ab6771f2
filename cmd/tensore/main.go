// Package main provides the tensore CLI.
package main

import (
	"os"

	"github.com/born-ml/tensore/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCommand()

	rootCmd.AddCommand(cli.NewRowsCommand())
	rootCmd.AddCommand(cli.NewSumCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
