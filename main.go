package main

import (
	"log/slog"
	"os"

	"texparse/batch"
	"texparse/convert"
	"texparse/parallel"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Workers int  `help:"Number of parallel workers for batch conversion, 0 for one per CPU" default:"0"`
	Verbose bool `help:"Enable debug logging" short:"v"`

	Convert convert.CLICmd `cmd:"" default:"withargs" help:"Convert one image into rows of Color::new calls"`
	Batch   batch.CLICmd   `cmd:"" help:"Convert every image in a folder"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("texparse"),
		kong.Description("Turns images into vec![Color::new(r, g, b), ...] texture rows."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pool := parallel.Start(cli.Workers)
	err := kctx.Run(pool.Do, pool.Wait)
	pool.Cancel()
	kctx.FatalIfErrorf(err)
}
