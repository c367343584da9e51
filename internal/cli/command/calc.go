package command

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"
)

// Square root strategies and the routes that implement them.
var sqrtRoutes = map[string]string{
	"inline":  "/squareRoot/",
	"service": "/service/squareRoot/",
	"pipe":    "/service/squareRoot/pipe/",
	"filter":  "/service/squareRoot/filter/",
}

// SquareCommand returns the square command.
func SquareCommand() *cli.Command {
	return &cli.Command{
		Name:      "square",
		Usage:     "Square a number",
		ArgsUsage: "<number>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "pipe",
				Usage: "Require an integer argument",
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, "<number>"); err != nil {
				return err
			}
			n := c.Args().First()
			path := "/square/" + url.PathEscape(n)
			if c.Bool("pipe") {
				path = "/square/pipe/" + url.PathEscape(n)
			}
			return runOperation(c, "square", n, path)
		},
	}
}

// CubeCommand returns the cube command.
func CubeCommand() *cli.Command {
	return &cli.Command{
		Name:      "cube",
		Usage:     "Cube an integer",
		ArgsUsage: "<integer>",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, "<integer>"); err != nil {
				return err
			}
			n := c.Args().First()
			return runOperation(c, "cube", n, "/cube/"+url.PathEscape(n))
		},
	}
}

// SqrtCommand returns the square root command.
func SqrtCommand() *cli.Command {
	return &cli.Command{
		Name:      "sqrt",
		Aliases:   []string{"square-root"},
		Usage:     "Square root of a non-negative number",
		ArgsUsage: "<number>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "strategy",
				Usage: "Validation route: inline, service, pipe, filter",
				Value: "inline",
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, "<number>"); err != nil {
				return err
			}
			strategy := c.String("strategy")
			prefix, ok := sqrtRoutes[strategy]
			if !ok {
				return fmt.Errorf("unknown strategy %q (want inline, service, pipe or filter)", strategy)
			}
			n := c.Args().First()
			return runOperation(c, "sqrt/"+strategy, n, prefix+url.PathEscape(n))
		},
	}
}

// MultiplyCommand returns the multiply command.
func MultiplyCommand() *cli.Command {
	return &cli.Command{
		Name:      "multiply",
		Aliases:   []string{"mul"},
		Usage:     "Multiply two integers",
		ArgsUsage: "<a> <b>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "query",
				Usage: "Send operands as query parameters",
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 2, "<a> <b>"); err != nil {
				return err
			}
			a, b := c.Args().Get(0), c.Args().Get(1)

			path := "/multiply/pipe/" + url.PathEscape(a) + "/" + url.PathEscape(b)
			if c.Bool("query") {
				q := url.Values{}
				q.Set("a", a)
				q.Set("b", b)
				path = "/multiply/query?" + q.Encode()
			}
			return runOperation(c, "multiply", a+" "+b, path)
		},
	}
}
