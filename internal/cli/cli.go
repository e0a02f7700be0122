// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the presents command-line interface. Each
// sub-command lives in its own file; flag parsing is done by
// github.com/jessevdk/go-flags and logging goes through log/slog with a
// tint console handler.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1 // Run failed or presents were not accounted for
	ExitUsage   = 2
)

// Options is the root for the CLI.
type Options struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
	NoColor bool `long:"no-color" description:"Disable colored log output"`

	Run      RunCmd      `command:"run"      description:"Run populator, retirer and observer over a universe of presents"`
	Scenario ScenarioCmd `command:"scenario" description:"Walk through the five-present scenario step by step"`

	stdout io.Writer
	stderr io.Writer
}

// NewOptions wires the sub-commands to the given output streams.
func NewOptions(stdout, stderr io.Writer) *Options {
	o := &Options{stdout: stdout, stderr: stderr}
	o.Run.root = o
	o.Scenario.root = o
	return o
}

// Logger builds the slog logger selected by the global flags.
func (o *Options) Logger() *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(o.stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    o.NoColor || !isTerminal(o.stderr),
	}))
}

// Run parses args, executes the selected sub-command and maps the outcome
// to an exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	opts := NewOptions(stdout, stderr)
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "presents"
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(stdout, flagsErr.Message)
				return ExitOK
			}
			fmt.Fprintln(stderr, flagsErr.Message)
			return ExitUsage
		}
		opts.Logger().Error("command failed", "err", err)
		return ExitFailure
	}
	return ExitOK
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
