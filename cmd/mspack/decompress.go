package main

import (
	"bufio"
	"context"
	"strconv"

	"github.com/mspack/mspack/internal/logger"
	"github.com/urfave/cli/v3"
)

func decompressCmd() *cli.Command {
	var (
		pipeline pipelineFlags
		input    string
	)

	return &cli.Command{
		Name:      "decompress",
		Usage:     "Decompress a string back into a peak list",
		ArgsUsage: "[compressed]",
		Flags: append(pipeline.flags(),
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "file holding the compressed string, - for stdin",
				Destination: &input,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			pipeline.applyConfig(cmd, configFrom(ctx))

			comp, err := pipeline.compressor()
			if err != nil {
				return err
			}

			text, err := readText(cmd.Args().First(), input)
			if err != nil {
				return err
			}

			sp, err := comp.DecompressSpectrum(text)
			if err != nil {
				return err
			}
			log.Debug("decompressed", "compressor", comp.String(), "peaks", sp.Len())

			w := bufio.NewWriter(stdout)
			for _, p := range sp.Peaks() {
				var line []byte
				line = strconv.AppendFloat(line, float64(p.Mz), 'g', -1, 32)
				line = append(line, '\t')
				line = strconv.AppendFloat(line, float64(p.Intensity), 'g', -1, 32)
				line = append(line, '\n')
				if _, err := w.Write(line); err != nil {
					return err
				}
			}

			return w.Flush()
		},
	}
}
