// Package logging builds the zerolog logger used across sportsterminal.
//
// The terminal UI owns stdout, so logs are written to a file. Errors created
// with eris carry their stack into the log through zerolog's
// ErrorStackMarshaler.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Options selects where and how logs are written.
type Options struct {
	Level string
	File  string
	JSON  bool
}

var levels = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// ParseLevel converts a configured level name.
func ParseLevel(name string) (zerolog.Level, error) {
	lvl, ok := levels[name]
	if !ok {
		return zerolog.NoLevel, eris.Errorf("invalid log level %q (want debug, info, warn or error)", name)
	}
	return lvl, nil
}

// New opens opts.File for appending and returns a logger writing to it. The
// returned closer releases the file.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
		return zerolog.Nop(), nil, eris.Wrapf(err, "create log directory for %s", opts.File)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, eris.Wrapf(err, "open log file %s", opts.File)
	}

	return NewWriter(f, lvl, opts.JSON), f, nil
}

// NewWriter returns a logger writing to w.
func NewWriter(w io.Writer, lvl zerolog.Level, json bool) zerolog.Logger {
	if json {
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			return eris.ToJSON(err, true)
		}
	} else {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "2006-01-02 15:04:05"}
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			return eris.ToString(err, true)
		}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Stack().Logger()
}
