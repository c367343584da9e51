package command

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

// CourseCommand returns the course echo command.
func CourseCommand() *cli.Command {
	return &cli.Command{
		Name:      "course",
		Usage:     "Echo a JSON course object",
		ArgsUsage: "<json>",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, "<json>"); err != nil {
				return err
			}
			return postEcho(c, "course", "/course", c.Args().First(), false)
		},
	}
}

// TextCommand returns the text echo command.
func TextCommand() *cli.Command {
	return &cli.Command{
		Name:      "text",
		Usage:     "Echo a request body",
		ArgsUsage: "<body>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "Send the body as text/plain instead of JSON",
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, "<body>"); err != nil {
				return err
			}
			return postEcho(c, "text", "/text", c.Args().First(), c.Bool("plain"))
		},
	}
}

func postEcho(c *cli.Context, operation, path, body string, plain bool) error {
	contentType := "application/json"
	if plain {
		contentType = "text/plain"
	} else if !json.Valid([]byte(body)) {
		return fmt.Errorf("body is not valid JSON")
	}

	env, err := call(c, "POST", path, contentType, []byte(body))
	if err != nil {
		return err
	}
	return render(c, Result{
		Operation: operation,
		Input:     body,
		Result:    dataText(env.Data),
		RequestID: env.RequestID,
	})
}

// HelloCommand returns the greeting command.
func HelloCommand() *cli.Command {
	return &cli.Command{
		Name:  "hello",
		Usage: "Fetch the server greeting",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "service",
				Usage: "Ask the calculator service instead of the controller",
			},
		},
		Action: func(c *cli.Context) error {
			path := "/"
			if c.Bool("service") {
				path = "/service/"
			}
			return runOperation(c, "hello", "", path)
		},
	}
}
