// Package wmlog centralizes the zerolog setup of the manager daemon
// (cmd/compasswm). The wmc sender does not use it: wmc reports failures
// through cobra's error output only.
package wmlog

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a console-formatted logger at the given level name
// ("debug", "info", "warn", "error"; unrecognized names fall back to
// info).
func New(levelName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()
}
