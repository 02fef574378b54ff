package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/programme-lv/gradebook/internal/behave"
	"github.com/programme-lv/gradebook/internal/console"
	"github.com/programme-lv/gradebook/internal/environment"
	"github.com/programme-lv/gradebook/internal/logging"
	"github.com/programme-lv/gradebook/internal/roster"
	"github.com/programme-lv/gradebook/internal/subject"
	"github.com/urfave/cli/v3"
)

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "gradebook",
		Usage: "manage an in-memory roster of students, subjects and grades",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a TOML config file"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
		},
		Writer:    stdout,
		ErrWriter: stderr,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, log, err := setup(cmd, stderr)
			if err != nil {
				return err
			}
			opts := []console.Option{console.WithLogger(log)}
			if cfg.NoColor {
				opts = append(opts, console.WithColor(false))
			}
			return console.New(stdin, stdout, roster.New(), opts...).Run()
		},
		Commands: []*cli.Command{
			{
				Name:      "behave",
				Usage:     "replay TOML scenario files, each case against a fresh roster",
				ArgsUsage: "FILE...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, log, err := setup(cmd, stderr)
					if err != nil {
						return err
					}
					paths := cmd.Args().Slice()
					if len(paths) == 0 {
						return fmt.Errorf("behave: at least one scenario file is required")
					}
					results, err := behave.NewRunner(log).RunFiles(ctx, paths, cfg.Parallelism)
					if err != nil {
						return fmt.Errorf("behave: %w", err)
					}
					renderResults(stdout, results, !cfg.NoColor)
					return summarize(results)
				},
			},
			{
				Name:  "subjects",
				Usage: "list the subjects students can enroll in",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					for _, name := range subject.Names() {
						if _, err := fmt.Fprintln(stdout, name); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}

// setup resolves configuration with command line flags taking priority.
func setup(cmd *cli.Command, stderr io.Writer) (*environment.Config, *slog.Logger, error) {
	cfg, err := environment.ReadConfig(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("no-color") {
		cfg.NoColor = cmd.Bool("no-color")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(stderr, cfg.Level(), cfg.NoColor), nil
}

func summarize(results []behave.Result) error {
	failed := 0
	for _, r := range results {
		if !r.Passed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}
