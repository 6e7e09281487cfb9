package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger
}

// DefaultEnv returns the production environment. Logging defaults to
// warnings only; generate raises or lowers the level from its flags.
func DefaultEnv() *Environment {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()

	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// applyVerbosity sets the log level from the common output flags. Verbose
// wins over quiet when both are given.
func (e *Environment) applyVerbosity(quiet, verbose bool) {
	switch {
	case verbose:
		e.Logger = e.Logger.Level(zerolog.DebugLevel)
	case quiet:
		e.Logger = e.Logger.Level(zerolog.ErrorLevel)
	}
}
