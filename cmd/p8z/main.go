package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dargueta/p8z"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	exitOK               = 0
	exitInvalidArguments = 1
	exitFailure          = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.SetOutput(stderr)

	err := newApp(stdin, stdout, stderr, logger).Run(args)
	if err == nil {
		return exitOK
	}

	logger.WithError(err).Error("fatal error")
	if errors.Is(err, p8z.ErrInvalidArguments) {
		return exitInvalidArguments
	}
	return exitFailure
}

func newApp(stdin io.Reader, stdout, stderr io.Writer, logger *logrus.Logger) *cli.App {
	return &cli.App{
		Name:        "p8z",
		Usage:       "Compress stdin into a PICO-8 string literal",
		UsageText:   "p8z [--count N | --skip N] < input",
		HideHelp:    true,
		HideVersion: true,
		Reader:      stdin,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "count",
				Usage: "write at most `N` bytes of the raw compressed payload and stop",
			},
			&cli.IntFlag{
				Name:  "skip",
				Usage: "drop the first `N` bytes of the compressed payload before encoding",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   logrus.WarnLevel.String(),
				EnvVars: []string{"P8Z_LOG_LEVEL"},
				Hidden:  true,
			},
		},
		Before: func(cCtx *cli.Context) error {
			level, err := logrus.ParseLevel(cCtx.String("log-level"))
			if err != nil {
				return p8z.ErrInvalidArguments.Wrap(err)
			}
			logger.SetLevel(level)
			return nil
		},
		OnUsageError: func(cCtx *cli.Context, err error, isSubcommand bool) error {
			return p8z.ErrInvalidArguments.Wrap(err)
		},
		Action: func(cCtx *cli.Context) error {
			return encodeStdin(cCtx, logger)
		},
	}
}

func encodeStdin(cCtx *cli.Context, logger *logrus.Logger) error {
	if cCtx.NArg() != 0 {
		return p8z.ErrInvalidArguments.WithMessage(
			fmt.Sprintf("unexpected argument %q", cCtx.Args().First()))
	}
	if cCtx.IsSet("count") && cCtx.IsSet("skip") {
		return p8z.ErrInvalidArguments.WithMessage("--count and --skip can't be used together")
	}

	count := cCtx.Int("count")
	skip := cCtx.Int("skip")
	if count < 0 || skip < 0 {
		return p8z.ErrInvalidArguments.WithMessage("sizes can't be negative")
	}

	input, err := io.ReadAll(cCtx.App.Reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	encoder := p8z.NewDefaultEncoder(logger)
	if cCtx.IsSet("count") {
		payload, err := encoder.Compress(input)
		if err != nil {
			return err
		}
		_, err = cCtx.App.Writer.Write(p8z.Truncate(payload, count))
		return err
	}

	literal, err := encoder.Encode(input, skip)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cCtx.App.Writer, literal)
	return err
}
