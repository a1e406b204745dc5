// Package logging configures zerolog for the CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Setup returns a human-readable logger on stderr.
func Setup(verbose bool) zerolog.Logger {
	return SetupWithWriter(verbose, os.Stderr)
}

// SetupWithWriter returns a console logger writing to w. Info level, or Debug
// when verbose.
func SetupWithWriter(verbose bool, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(console).With().Timestamp().Logger().Level(level)
}
