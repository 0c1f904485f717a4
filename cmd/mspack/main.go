package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mspack/mspack/internal/logger"
	"github.com/urfave/cli/v3"
)

// stdin and stdout are seams for tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "mspack",
		Usage: "Pack mass spectrometry peak lists into URL-safe strings",
		Flags: globalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := LoadConfig(configFile)
			if err != nil {
				return ctx, err
			}
			applyGlobalConfig(cmd, cfg)

			log, err := logger.Open(stderr, logFormat, logLevel)
			if err != nil {
				return ctx, err
			}
			ctx = logger.WithContext(ctx, log)

			return withConfig(ctx, cfg), nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			compressCmd(),
			decompressCmd(),
			statsCmd(),
			serveCmd(),
		},
	}
}
