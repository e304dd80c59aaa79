// Package logging builds the slog logger used by the contacts CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the level, destination and format of log records.
type Options struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn or error
	File   string `mapstructure:"file" yaml:"file"`     // append logs to file; "" or "-" for the default writer
	Format string `mapstructure:"format" yaml:"format"` // text or json
}

const (
	formatText = "text"
	formatJSON = "json"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger for options and the closer for its destination. Records
// go to w unless options.File names a file, which is opened for append and
// released by the closer. Unparseable options fall back to their defaults,
// are rewritten in options, and each fallback is logged as a warning on the
// returned logger.
func New(options *Options, w io.Writer) (*slog.Logger, io.Closer) {
	var warnings []string

	level := slog.LevelInfo
	if options.Level != "" {
		l, ok := levels[strings.ToLower(options.Level)]
		if ok {
			level = l
		} else {
			options.Level = ""
			warnings = append(warnings, "could not parse logger level")
		}
	}

	format := strings.ToLower(options.Format)
	switch format {
	case formatText, formatJSON:
	case "":
		format = formatText
	default:
		options.Format = formatText
		format = formatText
		warnings = append(warnings, "could not parse logger format")
	}

	var (
		output  = w
		closer  io.Closer = nopCloser{}
		openErr error
	)
	switch options.File {
	case "", "-":
	case os.DevNull:
		return slog.New(slog.DiscardHandler), closer
	default:
		f, err := os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			options.File = ""
			openErr = err
		} else {
			output = f
			closer = f
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == formatJSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	logger := slog.New(handler)
	for _, msg := range warnings {
		logger.Warn(msg)
	}
	if openErr != nil {
		logger.Warn("could not open logger file", "err", openErr)
	}
	return logger, closer
}
