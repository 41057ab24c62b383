package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// InitLogger creates and configures a zerolog.Logger based on verbosity flags.
//
// Log levels are set as follows:
//   - verbose=true: Debug level (most detailed)
//   - quiet=true: Warn level (errors and warnings only)
//   - default: Info level (normal operation)
//
// Output format is determined by w:
//   - a terminal with colors enabled: console writer
//   - anything else, or NO_COLOR set: JSON lines
//
// The library only logs at debug level, so without --verbose nothing from
// the cryptographic operations is written.
func InitLogger(verbose, quiet bool, w io.Writer) zerolog.Logger {
	return zerolog.New(selectOutput(w)).
		Level(selectLevel(verbose, quiet)).
		With().
		Timestamp().
		Logger()
}

// selectLevel determines the appropriate log level based on flags.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectOutput wraps w in a console writer when it is a terminal.
func selectOutput(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.Kitchen,
		}
	}
	return w
}
