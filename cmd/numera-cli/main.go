// Package main provides the entry point for numera-cli.
//
// numera-cli sends arithmetic and echo requests to numera-server and
// prints the results as a table, JSON or YAML.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/numera-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
