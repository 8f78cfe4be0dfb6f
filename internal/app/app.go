// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	iofs "io/fs"

	"github.com/charmbracelet/log"

	"seqwin/internal/cli"
	"seqwin/internal/clibase"
	"seqwin/internal/cmdutil"
	"seqwin/internal/config"
	"seqwin/internal/mmapio"
	"seqwin/internal/version"
	"seqwin/internal/writers"
)

// env is what every command needs after flag parsing.
type env struct {
	cfg    config.Config
	logger *log.Logger
	out    *bufio.Writer
	stderr io.Writer
}

// RunContext dispatches argv[0] to a command and returns the exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	code := run(ctx, argv, outw, stderr)
	if err := writers.DropBrokenPipe(outw.Flush()); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		if code == ExitOK {
			code = ExitIO
		}
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, argv []string, outw *bufio.Writer, stderr io.Writer) int {
	if len(argv) == 0 {
		cli.UsageTop(outw)
		return ExitOK
	}
	switch argv[0] {
	case "-h", "--help", "help":
		cli.UsageTop(outw)
		return ExitOK
	case "-v", "--version", "version":
		_, _ = fmt.Fprintf(outw, "seqwin version %s\n", version.Version)
		return ExitOK
	}

	name, args := argv[0], argv[1:]
	fs := cli.NewFlagSet(name)
	var (
		common *clibase.Common
		exec   func(*env) error
		err    error
	)
	switch name {
	case cli.CmdIndex:
		var o cli.IndexOptions
		o, err = cli.ParseIndex(fs, args)
		common, exec = &o.Common, func(e *env) error { return runIndex(ctx, e, o) }
	case cli.CmdRead:
		var o cli.ReadOptions
		o, err = cli.ParseRead(fs, args)
		common, exec = &o.Common, func(e *env) error { return runRead(e, o) }
	case cli.CmdList:
		var o cli.ListOptions
		o, err = cli.ParseList(fs, args)
		common, exec = &o.Common, func(e *env) error { return runList(e, o) }
	case cli.CmdVerify:
		var o cli.VerifyOptions
		o, err = cli.ParseVerify(fs, args)
		common, exec = &o.Common, func(e *env) error { return runVerify(ctx, e, o) }
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n", name)
		cli.UsageTop(stderr)
		return ExitUsage
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(fs, outw)
			return ExitOK
		}
		_, _ = fmt.Fprintf(stderr, "%s: %v\n\n", name, err)
		cli.PrintUsage(fs, stderr)
		return ExitUsage
	}
	if common.Version {
		_, _ = fmt.Fprintf(outw, "seqwin version %s\n", version.Version)
		return ExitOK
	}

	// Commands that map files refuse to start on hosts without mmap, before
	// any file (config included) is opened.
	if name == cli.CmdIndex || name == cli.CmdRead {
		if err := mmapio.CheckPlatform(); err != nil {
			_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, err)
			return ExitUnsupported
		}
	}

	cfg, err := config.Load(common.Config)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		// An unreadable file is an I/O failure; bad contents are a usage error.
		var pe *iofs.PathError
		if errors.As(err, &pe) {
			return ExitIO
		}
		return ExitUsage
	}
	level := common.LogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logger, err := cmdutil.NewLogger(stderr, level, common.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	e := &env{cfg: cfg, logger: logger, out: outw, stderr: stderr}
	if err := exec(e); err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		code := ExitCode(err)
		if code == ExitInterrupted {
			logger.Warn("interrupted")
		} else {
			logger.Error(name+" failed", "err", err)
		}
		return code
	}
	return ExitOK
}
