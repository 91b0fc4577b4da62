// Package logger builds the zerolog logger shared by the server,
// the request middleware and the pgx query tracer.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level. Local environments get the
// human-friendly console writer, everything else logs JSON to stdout.
func New(level string, local bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if local {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
