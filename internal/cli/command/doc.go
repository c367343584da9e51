// Package command provides CLI command definitions for numera-cli.
//
// It uses urfave/cli/v2 for command parsing. Every command issues one
// request to numera-server and renders the result with the formatter
// selected by --output.
package command
