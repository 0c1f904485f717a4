package main

import (
	"context"
	"fmt"

	"github.com/mspack/mspack/internal/hash"
	"github.com/mspack/mspack/internal/logger"
	"github.com/urfave/cli/v3"
)

func compressCmd() *cli.Command {
	var (
		pipeline  pipelineFlags
		input     string
		urlPrefix string
	)

	return &cli.Command{
		Name:      "compress",
		Usage:     "Compress a peak list (one \"mz intensity\" pair per line)",
		ArgsUsage: "[file]",
		Flags: append(pipeline.flags(),
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "peak list file, - for stdin",
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "url-prefix",
				Usage:       "print the result appended to this prefix, e.g. https://host/view?data=",
				Destination: &urlPrefix,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			pipeline.applyConfig(cmd, configFrom(ctx))

			comp, err := pipeline.compressor()
			if err != nil {
				return err
			}

			if input == "" {
				input = cmd.Args().First()
			}
			sp, err := readPeaks(input)
			if err != nil {
				return err
			}

			out, err := comp.CompressSpectrum(sp)
			if err != nil {
				return err
			}
			log.Debug("compressed", "compressor", comp.String(), "peaks", sp.Len(), "length", len(out), "fingerprint", hash.Hex(hash.Fingerprint(out)))

			_, err = fmt.Fprintln(stdout, urlPrefix+out)

			return err
		},
	}
}
