// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package cli

import (
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/kr/text"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/readygo67/modinverse/render"
)

const wrapWidth = 79

// logLevels are the level names the logging backend accepts.
var logLevels = []string{"debug", "info", "notice", "warning", "error", "critical"}

var flagUsage = map[string]string{
	"format": wrapText(`
Output format. "text" narrates every step of Euclid's algorithm and the
back-substitution, "table" prints the same steps as two tables and "json"
emits a single machine readable object.`),
	"max-steps": wrapText(`
Abort after this many reduction steps without reaching a zero remainder.
0 means no limit.`),
	"timeout": wrapText(`
Abort the computation once this much time has passed, for example 500ms
or 2s. 0 means no deadline.`),
	"log-level": wrapText(`
Level of the diagnostic log written to stderr. One of debug, info,
notice, warning, error or critical.`),
}

// Config holds the command line settings of the modinverse command.
type Config struct {
	Format   string
	MaxSteps int
	Timeout  time.Duration
	LogLevel string
}

func DefaultConfig() *Config {
	return &Config{
		Format:   string(render.FormatText),
		LogLevel: "error",
	}
}

// Bind registers the config fields as flags on f, using the current field
// values as defaults.
func (cfg *Config) Bind(f *pflag.FlagSet) {
	f.StringVar(&cfg.Format, "format", cfg.Format, usage("format"))
	f.IntVar(&cfg.MaxSteps, "max-steps", cfg.MaxSteps, usage("max-steps"))
	f.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, usage("timeout"))
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, usage("log-level"))
}

// Validate reports every invalid setting at once.
func (cfg *Config) Validate() error {
	var result *multierror.Error
	if _, err := render.ParseFormat(cfg.Format); err != nil {
		result = multierror.Append(result, err)
	}
	if cfg.MaxSteps < 0 {
		result = multierror.Append(result, errors.Errorf("--max-steps must not be negative, got %d", cfg.MaxSteps))
	}
	if cfg.Timeout < 0 {
		result = multierror.Append(result, errors.Errorf("--timeout must not be negative, got %s", cfg.Timeout))
	}
	if !knownLogLevel(cfg.LogLevel) {
		result = multierror.Append(result, errors.Errorf("unknown log level %q (want one of %s)",
			cfg.LogLevel, strings.Join(logLevels, ", ")))
	}
	return result.ErrorOrNil()
}

func knownLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, known := range logLevels {
		if level == known {
			return true
		}
	}
	return false
}

func wrapText(s string) string {
	return text.Wrap(s, wrapWidth)
}

func usage(name string) string {
	return strings.TrimSpace(flagUsage[name])
}
