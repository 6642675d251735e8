package app

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
)

// InputPath is read relative to the working directory.
const InputPath = "input.txt"

// ErrInconsistentLists means the parser handed back lists of different
// lengths. Pairs are always recorded into both lists, so this is an internal
// error rather than bad input.
var ErrInconsistentLists = errors.New("mismatched number of left and right values read")

// Log is the run logger. Per-line problems go through Diagnostics instead.
var Log = newLog()

func newLog() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Diagnostics returns a plain console logger for line diagnostics.
func Diagnostics(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})
}
