// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package render turns the outcome of a solve, together with its buffered
// trace, into human or machine readable output. The solver itself never
// formats anything.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/readygo67/modinverse/common"
	"github.com/readygo67/modinverse/inverse"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

var Formats = []Format{FormatText, FormatTable, FormatJSON}

var ErrUnknownFormat = errors.New("unknown output format")

type (
	Renderer interface {
		Render(w io.Writer, tr *Transcript) error
	}

	// Transcript is everything a renderer gets to see about one solve.
	Transcript struct {
		// raw command line arguments
		Number, Modulus string

		// nil when the input was rejected
		Save   *inverse.SaveData
		Events []inverse.Event
		Err    error
	}
)

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q (want one of %s)", s, formatList())
}

func New(f Format) (Renderer, error) {
	switch f {
	case FormatText:
		return &textRenderer{}, nil
	case FormatTable:
		return &tableRenderer{}, nil
	case FormatJSON:
		return &jsonRenderer{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", string(f))
}

func NewTranscript(number, modulus string, save *inverse.SaveData, trace *inverse.Trace, err error) *Transcript {
	tr := &Transcript{Number: number, Modulus: modulus, Save: save, Err: err}
	if trace != nil {
		tr.Events = trace.Events()
	}
	return tr
}

// Collect parses the raw arguments, runs the solver with a buffering trace and
// packs the outcome into a Transcript.
func Collect(ctx context.Context, number, modulus string, opts ...inverse.Option) *Transcript {
	trace := inverse.NewTrace()
	opts = append(opts[:len(opts):len(opts)], inverse.WithSink(trace))
	params, err := inverse.ParseParameters(number, modulus, opts...)
	if err != nil {
		common.Logger.Debugf("rejected input (%q, %q): %s", number, modulus, err)
		return NewTranscript(number, modulus, nil, trace, err)
	}
	save, err := inverse.Run(ctx, params)
	return NewTranscript(number, modulus, save, trace, err)
}

func (tr *Transcript) Reductions() []*inverse.Reduction {
	out := make([]*inverse.Reduction, 0, len(tr.Events))
	for _, ev := range tr.Events {
		if r, ok := ev.(*inverse.Reduction); ok {
			out = append(out, r)
		}
	}
	return out
}

func (tr *Transcript) Substitutions() []*inverse.Substitution {
	out := make([]*inverse.Substitution, 0, len(tr.Events))
	for _, ev := range tr.Events {
		if s, ok := ev.(*inverse.Substitution); ok {
			out = append(out, s)
		}
	}
	return out
}

// Outcome names the way the solve ended: "ok", "invalid-modulus",
// "invalid-number", "zero-has-no-inverse", "no-inverse-exists",
// "step-limit" or "aborted".
func (tr *Transcript) Outcome() string {
	switch err := tr.Err; {
	case err == nil:
		return "ok"
	case errors.Is(err, inverse.ErrInvalidModulus):
		return "invalid-modulus"
	case errors.Is(err, inverse.ErrInvalidNumber):
		return "invalid-number"
	case errors.Is(err, inverse.ErrZeroHasNoInverse):
		return "zero-has-no-inverse"
	case errors.Is(err, inverse.ErrNoInverseExists):
		return "no-inverse-exists"
	case errors.Is(err, inverse.ErrStepLimit):
		return "step-limit"
	default:
		return "aborted"
	}
}

// cause strips the *inverse.Error envelope for display.
func cause(err error) error {
	var ierr *inverse.Error
	if errors.As(err, &ierr) {
		return ierr.Cause()
	}
	return err
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// printer keeps the first write error so a renderer can check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
