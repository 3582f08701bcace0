// Package cli holds what every inversion subcommand receives from main.
package cli

import (
	"fmt"
	"io"
	"log/slog"
)

// Env is bound into each command's Run method.
type Env struct {
	// Stdout receives command results.
	Stdout io.Writer

	// Logger receives diagnostics. main writes it to stderr.
	Logger *slog.Logger
}

// Printf writes a formatted result line to Stdout.
func (e *Env) Printf(format string, args ...any) {
	fmt.Fprintf(e.Stdout, format, args...)
}

// Discard returns an Env that writes results to w and drops all logs.
func Discard(w io.Writer) *Env {
	return &Env{Stdout: w, Logger: slog.New(slog.DiscardHandler)}
}
