// Package cli implements the salarycli command: it loads the dataset once,
// applies a filter selection from flags and prints the dashboard as a
// terminal report, JSON or YAML.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/JonMunkholm/salarydash/internal/config"
	"github.com/JonMunkholm/salarydash/internal/logging"
	"github.com/urfave/cli/v3"
)

// Run executes the CLI with args (normally os.Args).
func Run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := newApp(cfg, os.Stdout).Run(ctx, args); err != nil {
		return fmt.Errorf("salarycli: %w", err)
	}
	return nil
}

func newApp(cfg *config.Config, out io.Writer) *cli.Command {
	var logLevel, logFormat string
	src := sourceFlags{cfg: &cfg.Dataset}

	return &cli.Command{
		Name:   "salarycli",
		Writer: out,
		Usage:  "Explore the data-industry salary dataset from the terminal",
		Flags: joinFlags(
			[]cli.Flag{
				&cli.StringFlag{
					Name:        "log-level",
					Usage:       "Log level (debug, info, warn, error)",
					Category:    "Logging",
					Value:       cfg.Logging.Level,
					Destination: &logLevel,
				},
				&cli.StringFlag{
					Name:        "log-format",
					Usage:       "Log format (text, json)",
					Category:    "Logging",
					Value:       cfg.Logging.Format,
					Destination: &logFormat,
				},
			},
			src.Flags(),
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logging.SetupWriter(os.Stderr, logLevel, logFormat)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdRender(cfg, &src),
			cmdOptions(&src),
		},
	}
}

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}
