package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"
)

// app carries the streams and the settings shared by every command.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	settings Settings
	logger   *slog.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		settings: DefaultSettings(),
		logger:   slog.New(slog.DiscardHandler),
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "blocks",
		Usage:     "inspect and merge YAML/JSON documents",
		Version:   Version,
		Reader:    a.stdin,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "settings file (.yaml, .yml or .json)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: json or yaml",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug messages to stderr",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.kindCommand(),
			a.mergeCommand(),
			a.hasCommand(),
			a.getCommand(),
			a.domCommand(),
		},
		// Errors are reported by run so that exit codes stay in one place.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// before sets up logging and resolves settings: defaults, then the
// config file, then flags.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := slog.LevelWarn
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	s, err := LoadSettings(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	if cmd.IsSet("format") {
		s.Format = cmd.String("format")
	}
	if err := s.Validate(); err != nil {
		return ctx, &usageError{msg: err.Error()}
	}
	a.settings = s

	a.logger.Debug("settings resolved",
		slog.String("config", cmd.String("config")),
		slog.String("format", s.Format),
		slog.Int("indent", s.Indent),
		slog.Bool("null_as_undefined", s.NullAsUndefined),
	)
	return ctx, nil
}

// run executes the CLI and maps the outcome to a process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	err := a.command().Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(a.stderr, "usage error: %v\n", usageErr)
		return 2
	}
	fmt.Fprintf(a.stderr, "error: %v\n", err)
	return 1
}
