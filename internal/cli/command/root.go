package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/numera-go/internal/cli/connection"
	"github.com/yndnr/numera-go/internal/cli/output"
	"github.com/yndnr/numera-go/internal/infra/buildinfo"
	"github.com/yndnr/numera-go/internal/infra/tlsroots"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "numera-cli",
		Usage:   "Numera arithmetic service client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			SquareCommand(),
			CubeCommand(),
			SqrtCommand(),
			MultiplyCommand(),
			CourseCommand(),
			TextCommand(),
			HelloCommand(),
			HealthCommand(),
			VersionCommand(),
		},
		Before: func(c *cli.Context) error {
			_, err := output.ParseFormat(c.String("output"))
			return err
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Numera server address (e.g., localhost:3000)",
			EnvVars: []string{"NUMERA_SERVER"},
			Value:   "localhost:3000",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			EnvVars: []string{"NUMERA_OUTPUT"},
			Value:   "table",
		},
		&cli.StringFlag{
			Name:    "ca-file",
			Usage:   "PEM bundle of extra CAs trusted for https servers",
			EnvVars: []string{"NUMERA_CA_FILE"},
		},
		&cli.BoolFlag{
			Name:  "insecure",
			Usage: "Skip TLS certificate verification",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Request timeout",
			Value: 10 * time.Second,
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Server   string
	Output   string
	CAFile   string
	Insecure bool
	Timeout  time.Duration
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Server:   c.String("server"),
		Output:   c.String("output"),
		CAFile:   c.String("ca-file"),
		Insecure: c.Bool("insecure"),
		Timeout:  c.Duration("timeout"),
	}
}

// Result is the rendered outcome of one server call.
type Result struct {
	Operation string `json:"operation"`
	Input     string `json:"input,omitempty"`
	Result    string `json:"result"`
	RequestID string `json:"request_id,omitempty"`
}

// newClient builds an HTTP client from the global flags.
func newClient(c *cli.Context) (*connection.HTTPClient, error) {
	flags := ParseGlobalFlags(c)
	opts := []connection.Option{connection.WithTimeout(flags.Timeout)}
	if flags.CAFile != "" || flags.Insecure {
		tlsConfig, err := tlsroots.ClientConfig(flags.CAFile, flags.Insecure)
		if err != nil {
			return nil, err
		}
		opts = append(opts, connection.WithTLSConfig(tlsConfig))
	}
	return connection.NewHTTPClient(flags.Server, opts...), nil
}

// call issues one request and returns the decoded envelope.
func call(c *cli.Context, method, path, contentType string, body []byte) (*connection.Envelope, error) {
	client, err := newClient(c)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(c.Context, ParseGlobalFlags(c).Timeout)
	defer cancel()

	return client.Call(ctx, method, path, contentType, body)
}

// render writes v with the selected formatter.
func render(c *cli.Context, v any) error {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return err
	}
	return output.NewFormatter(format).Format(writer(c), v)
}

func writer(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return io.Discard
}

// runOperation calls the server and renders a Result for it.
func runOperation(c *cli.Context, operation, input, path string) error {
	env, err := call(c, "GET", path, "", nil)
	if err != nil {
		return err
	}
	return render(c, Result{
		Operation: operation,
		Input:     input,
		Result:    dataText(env.Data),
		RequestID: env.RequestID,
	})
}

// dataText returns a JSON string value unquoted and any other value as its
// JSON text.
func dataText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// requireArgs checks the positional argument count.
func requireArgs(c *cli.Context, n int, usage string) error {
	if c.NArg() != n {
		return fmt.Errorf("usage: %s %s", c.Command.Name, usage)
	}
	return nil
}
