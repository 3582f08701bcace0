package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/broady/inversion/cmd/inversion/internal/check"
	"github.com/broady/inversion/cmd/inversion/internal/cli"
	"github.com/broady/inversion/cmd/inversion/internal/gen"
	"github.com/broady/inversion/cmd/inversion/internal/tree"
)

type CLI struct {
	Verbose bool `help:"Log debug output to stderr." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate Rust type definitions from spec documents."`
	Check   check.Cmd  `cmd:"" help:"Validate spec documents without writing files."`
	Tree    tree.Cmd   `cmd:"" help:"Print the declaration tree generated for a spec document."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(env *cli.Env) error {
	env.Printf("%s\n", Version())
	return nil
}

func main() {
	c := &CLI{}
	kctx := kong.Parse(c,
		kong.Name("inversion"),
		kong.Description("Generate Rust type definitions from Inversion API spec documents."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	kctx.BindTo(ctx, (*context.Context)(nil))
	err := kctx.Run(&cli.Env{Stdout: os.Stdout, Logger: logger})
	stop()
	kctx.FatalIfErrorf(err)
}
