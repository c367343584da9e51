package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/numera-go/internal/cli/connection"
)

// HealthCommand returns the health check command.
func HealthCommand() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Check server health",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "ready",
				Usage: "Query the readiness endpoint",
			},
		},
		Action: func(c *cli.Context) error {
			path := "/health"
			if c.Bool("ready") {
				path = "/ready"
			}

			env, err := call(c, "GET", path, "", nil)
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			var result struct {
				Status string `json:"status"`
				Time   string `json:"time"`
			}
			if err := env.DecodeData(&result); err != nil {
				return err
			}
			return render(c, struct {
				Target string `json:"target"`
				Status string `json:"status"`
				Time   string `json:"time"`
			}{target(c), result.Status, result.Time})
		},
	}
}

// VersionCommand returns the server version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show server build information",
		Action: func(c *cli.Context) error {
			env, err := call(c, "GET", "/version", "", nil)
			if err != nil {
				return err
			}

			var info struct {
				Version   string `json:"version"`
				Commit    string `json:"commit"`
				BuildTime string `json:"build_time"`
				GoVersion string `json:"go_version"`
				Modified  bool   `json:"modified,omitempty"`
			}
			if err := env.DecodeData(&info); err != nil {
				return err
			}
			return render(c, info)
		},
	}
}

// target describes the server addressed by the global flags.
func target(c *cli.Context) string {
	return connection.NewHTTPClient(ParseGlobalFlags(c).Server).Target()
}
