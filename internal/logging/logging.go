// Package logging builds the diagnostic logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Options select level, destination and format of diagnostic output.
type Options struct {
	Level  string // debug, info, warn or error
	File   string // append logs to file; "" or "-" for stderr
	Format string // text or json
}

// DefaultLevel applies when Options.Level is empty.
const DefaultLevel = zerolog.WarnLevel

func level(option string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(option)) {
	case "":
		return DefaultLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	default:
		return zerolog.NoLevel, false
	}
}

// New returns a logger for options. Unusable options fall back to defaults and
// the fallback is reported through the returned logger.
func New(options Options, stderr io.Writer) zerolog.Logger {
	lvl, ok := level(options.Level)
	if !ok {
		bad := options.Level
		options.Level = ""
		logger := New(options, stderr)
		logger.Warn().Str("level", bad).Msg("could not parse logger level")
		return logger
	}

	var output io.Writer
	switch options.File {
	case "", "-":
		output = stderr
	case os.DevNull:
		return zerolog.Nop()
	default:
		f, err := os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			options.File = ""
			logger := New(options, stderr)
			logger.Warn().Err(err).Msg("could not open logger file")
			return logger
		}
		output = f
	}

	switch strings.ToLower(strings.TrimSpace(options.Format)) {
	case "", "text":
		output = zerolog.ConsoleWriter{Out: output, NoColor: options.File != "" && options.File != "-"}
	case "json":
	default:
		bad := options.Format
		options.Format = "text"
		logger := New(options, stderr)
		logger.Warn().Str("format", bad).Msg("could not parse logger format")
		return logger
	}

	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}
