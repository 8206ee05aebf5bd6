// Package logger configures structured logging for the extractor.
//
// Logs go to stderr so the console report on stdout stays clean for
// scripting. The default level is info; --verbose lowers it to debug,
// which traces every descriptor probe and scanned section.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-format logger writing to w.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
