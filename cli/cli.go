// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package cli implements the modinverse command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/readygo67/modinverse/cli/exit"
	"github.com/readygo67/modinverse/common"
	"github.com/readygo67/modinverse/inverse"
	"github.com/readygo67/modinverse/render"
)

var negativeInt = regexp.MustCompile(`^-[0-9]`)

// Main runs the command with the process arguments and returns the exit code.
func Main() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr).Int()
}

// Run executes one invocation of the command. The rendered result goes to
// stdout; usage and flag errors go to stderr.
func Run(args []string, stdout, stderr io.Writer) exit.Code {
	cfg := DefaultConfig()
	code := exit.Success()

	cmd := &cobra.Command{
		Use:   "modinverse [flags] <number> <modulus>",
		Short: "compute a multiplicative inverse with Euclid's algorithm",
		Long: wrapText(`
Computes the multiplicative inverse of <number> with respect to <modulus>
for arbitrarily large integers, narrating the extended Euclidean algorithm
step by step. <number> may be negative. Flags must come before a negative
<number>.`),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				code = exit.UsageError()
				cmd.SetOut(stderr)
				_ = cmd.Usage()
				return errors.Errorf("expected <number> and <modulus>, got %d argument(s)", len(args))
			}
			if err := cfg.Validate(); err != nil {
				code = exit.UsageError()
				return err
			}
			var err error
			code, err = solve(cmd.Context(), cfg, args[0], args[1], stdout)
			return err
		},
	}
	cfg.Bind(cmd.Flags())
	cmd.SetArgs(protectNegatives(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if code == exit.Success() {
			// flag parsing failed before RunE
			code = exit.UsageError()
		}
		fmt.Fprintf(stderr, "Error: %s\n", err)
	}
	return code
}

// solve runs the solver and renders its transcript. A failed solve is not a
// command error: the renderer reports it and the exit code carries it.
func solve(ctx context.Context, cfg *Config, number, modulus string, stdout io.Writer) (exit.Code, error) {
	if err := common.SetLogLevel(cfg.LogLevel); err != nil {
		return exit.UsageError(), errors.Wrap(err, "setting log level")
	}
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return exit.UsageError(), err
	}
	renderer, err := render.New(format)
	if err != nil {
		return exit.UsageError(), err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	tr := render.Collect(ctx, number, modulus, inverse.WithMaxSteps(cfg.MaxSteps))
	if tr.Err != nil {
		common.Logger.Debugf("solve failed: %s", tr.Err)
	}
	if err := renderer.Render(stdout, tr); err != nil {
		return exit.Aborted(), err
	}
	return CodeFor(tr.Err), nil
}

// CodeFor maps a solver error to the exit code reported for it.
func CodeFor(err error) exit.Code {
	switch {
	case err == nil:
		return exit.Success()
	case errors.Is(err, inverse.ErrInvalidModulus) && errors.Is(err, common.ErrNotAnInteger):
		return exit.InvalidModulus()
	case errors.Is(err, inverse.ErrInvalidModulus):
		return exit.ModulusTooSmall()
	case errors.Is(err, inverse.ErrInvalidNumber):
		return exit.InvalidNumber()
	case errors.Is(err, inverse.ErrZeroHasNoInverse):
		return exit.ZeroHasNoInverse()
	case errors.Is(err, inverse.ErrNoInverseExists):
		return exit.NoInverse()
	default:
		return exit.Aborted()
	}
}

// protectNegatives ends flag parsing at the first negative integer so that
// "-4" is read as a number rather than a shorthand flag. A negative value
// directly after a flag that lacks "=" is left alone as that flag's value.
func protectNegatives(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !negativeInt.MatchString(arg) {
			continue
		}
		if i > 0 && takesValue(args[i-1]) {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

func takesValue(arg string) bool {
	if !strings.HasPrefix(arg, "--") || strings.Contains(arg, "=") {
		return false
	}
	_, ok := flagUsage[strings.TrimPrefix(arg, "--")]
	return ok
}
