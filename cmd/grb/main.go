// SPDX-License-Identifier: MIT

// Command grb inspects and transforms sparse matrices from the command line.
//
//	grb [-config grb.yaml] [-log-level debug] <command> [flags] <file>...
//
// Commands:
//
//	info     shape, nnz and row degree summary
//	reduce   per-row reduction with plus, min or max
//	bfs      BFS levels and parents from a source vertex
//	sssp     shortest distances from a source vertex
//	convert  Matrix Market (.mtx, .mtx.gz) to and from binary snapshots (.grb)
//
// Input files are Matrix Market text, optionally gzipped, or snapshots; the
// format is detected from the content. Settings come from the YAML config,
// then GRB_* environment variables, then flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/grb"
	"github.com/katalvlaran/grb/internal/config"
)

var errUsage = errors.New("missing command")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := mainImpl(ctx, os.Args[1:], os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "grb: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("grb", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML config file (default $GRB_CONFIG or ./grb.yaml)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "", "Log format (text, json)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: grb [flags] <info|reduce|bfs|sssp|convert> [command flags] <file>...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := initLogger(cfg.Log)
	slog.SetDefault(logger.Logger)

	name, rest := fs.Arg(0), fs.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	env := &cmdEnv{ctx: ctx, cfg: cfg, log: logger.WithOp(name), out: stdout}
	return cmd(env, rest)
}

// initLogger builds the command logger on stderr. Colour follows the config,
// with "auto" meaning stderr is a terminal.
func initLogger(c config.LogConfig) *grb.Logger {
	level, _ := grb.ParseLevel(c.Level)
	ll := &slog.LevelVar{}
	ll.Set(level)
	if c.Format == "json" {
		return grb.NewJSONLogger(os.Stderr, ll)
	}
	var color bool
	switch c.Color {
	case "always":
		color = true
	case "never":
		color = false
	default:
		fd := os.Stderr.Fd()
		color = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return grb.NewConsoleLogger(colorable.NewColorable(os.Stderr), ll, color)
}
