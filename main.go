package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/aatomu/fraction/fraction"
	"github.com/aatomu/fraction/internal/script"
)

func main() {
	err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "fracc: %v\n", err)
	code := 1
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	os.Exit(code)
}

// app holds what the Before hook resolves for the commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	format    script.Format
	evaluator *script.Evaluator
	log       zerolog.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, log: zerolog.Nop()}

	return &cli.App{
		Name:  "fracc",
		Usage: "evaluate fraction scripts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   defaultConfigFile,
				Usage:   "TOML config file",
			},
			&cli.IntFlag{
				Name:    "parallel",
				Aliases: []string{"p"},
				Usage:   "statements evaluated at once",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: mixed, ratio or float",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"FRACC_LOG_LEVEL"},
				Usage:   "zerolog level name",
			},
		},
		Before: a.setup,
		Commands: cli.Commands{
			a.cmdRun(),
			a.cmdEval(),
			a.cmdFmt(),
		},
		Reader:         stdin,
		Writer:         stdout,
		ErrWriter:      stderr,
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"), c.IsSet("config"))
	if err != nil {
		return cli.Exit(err, 2)
	}
	if c.IsSet("parallel") {
		cfg.Parallel = c.Int("parallel")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.validate(); err != nil {
		return cli.Exit(err, 2)
	}

	// validated above
	a.format, _ = script.ParseFormat(cfg.Format)
	level, _ := zerolog.ParseLevel(cfg.LogLevel)

	a.evaluator = script.NewEvaluator(cfg.Parallel)
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, NoColor: true, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	a.log.Debug().
		Str("config", c.String("config")).
		Int("parallel", cfg.Parallel).
		Str("format", cfg.Format).
		Msg("config loaded")
	return nil
}

func (a *app) cmdRun() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "evaluate script files, - reads stdin",
		ArgsUsage: "FILE...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("run: no script given", 2)
			}

			failed := 0
			for _, name := range c.Args().Slice() {
				n, err := a.runFile(c.Context, name)
				if err != nil {
					return cli.Exit(err, 1)
				}
				failed += n
			}
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("%d statement(s) failed", failed), 1)
			}
			return nil
		},
	}
}

func (a *app) runFile(ctx context.Context, name string) (int, error) {
	start := time.Now()

	r := a.stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	stmts, err := script.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	a.log.Info().Str("script", name).Int("statements", len(stmts)).Msg("script parsed")

	return a.evaluate(ctx, name, stmts, start), nil
}

// evaluate prints every result in order and returns how many failed.
func (a *app) evaluate(ctx context.Context, name string, stmts []script.Statement, start time.Time) int {
	failed := 0
	for _, r := range a.evaluator.Run(ctx, stmts) {
		fmt.Fprintln(a.stdout, r.Render(a.format))
		if r.Err != nil {
			failed++
			a.log.Warn().Err(r.Err).Str("script", name).Int("line", r.Statement.Line).Msg("statement failed")
			continue
		}
		a.log.Debug().Str("script", name).Int("line", r.Statement.Line).Str("value", r.Value.RatString()).Msg("statement")
	}

	a.log.Info().
		Str("script", name).
		Int("statements", len(stmts)).
		Int("failed", failed).
		Str("duration", time.Since(start).String()).
		Msg("script finished")
	return failed
}

func (a *app) cmdEval() *cli.Command {
	return &cli.Command{
		Name:            "eval",
		Usage:           "evaluate one statement, e.g. eval times 1/2 1/3",
		ArgsUsage:       "OP OPERAND...",
		SkipFlagParsing: true, // operands such as -(2/5) are not flags
		Action: func(c *cli.Context) error {
			st, ok, err := script.ParseLine(1, strings.Join(c.Args().Slice(), " "))
			if err != nil {
				return cli.Exit(err, 1)
			}
			if !ok {
				return cli.Exit("eval: empty statement", 2)
			}
			if a.evaluate(c.Context, "eval", []script.Statement{st}, time.Now()) > 0 {
				return cli.Exit("statement failed", 1)
			}
			return nil
		},
	}
}

func (a *app) cmdFmt() *cli.Command {
	return &cli.Command{
		Name:            "fmt",
		Usage:           "normalize and print fractions",
		ArgsUsage:       "VALUE...",
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			var errs []error
			for _, arg := range c.Args().Slice() {
				v, err := fraction.Parse(arg)
				if err != nil {
					a.log.Warn().Err(err).Str("value", arg).Msg("skip")
					errs = append(errs, err)
					continue
				}
				fmt.Fprintln(a.stdout, script.Render(v, a.format))
			}
			if err := errors.Join(errs...); err != nil {
				return cli.Exit(err, 1)
			}
			return nil
		},
	}
}
