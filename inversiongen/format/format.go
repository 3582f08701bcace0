// Package format runs generated Rust source through rustfmt.
package format

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultCommand is the formatter executable looked up on PATH.
const DefaultCommand = "rustfmt"

// DefaultArgs are passed to DefaultCommand. rustfmt reads the source from
// stdin and writes the formatted source to stdout.
var DefaultArgs = []string{"--edition", "2021", "--emit", "stdout"}

// Formatter pipes source text through an external formatting command.
// The zero value runs rustfmt with DefaultArgs.
type Formatter struct {
	// Command is the executable to run. Empty means DefaultCommand.
	Command string

	// Args are the command arguments. Nil means DefaultArgs when Command
	// is empty, and no arguments otherwise.
	Args []string

	// Logger receives failure details at debug level. Nil means slog.Default().
	Logger *slog.Logger
}

// MaybeFormat formats src with rustfmt if it is available. On any failure the
// input is returned unchanged.
func MaybeFormat(src string) string {
	return (&Formatter{}).Format(src)
}

// Format is FormatContext with a background context.
func (f *Formatter) Format(src string) string {
	return f.FormatContext(context.Background(), src)
}

// FormatContext writes src to the command's stdin and returns everything the
// command wrote to stdout. The process is always waited on.
//
// If the command cannot be started, exits non-zero, or writes nothing, src is
// returned byte-for-byte. FormatContext never fails.
func (f *Formatter) FormatContext(ctx context.Context, src string) string {
	name, args := f.command()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(src)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		f.logger().Debug("formatter failed, using unformatted source",
			"command", name,
			"error", err,
			"stderr", strings.TrimSpace(stderr.String()))
		return src
	}
	if stdout.Len() == 0 {
		f.logger().Debug("formatter produced no output, using unformatted source", "command", name)
		return src
	}
	return stdout.String()
}

// Available reports whether the formatter command can be found on PATH.
func (f *Formatter) Available() bool {
	name, _ := f.command()
	_, err := exec.LookPath(name)
	return err == nil
}

func (f *Formatter) command() (string, []string) {
	if f == nil || f.Command == "" {
		if f != nil && f.Args != nil {
			return DefaultCommand, f.Args
		}
		return DefaultCommand, DefaultArgs
	}
	return f.Command, f.Args
}

func (f *Formatter) logger() *slog.Logger {
	if f == nil || f.Logger == nil {
		return slog.Default()
	}
	return f.Logger
}
