package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/mspack/mspack"
	"github.com/mspack/mspack/format"
	"github.com/mspack/mspack/internal/hash"
	"github.com/mspack/mspack/spectrum"
	"github.com/urfave/cli/v3"
)

func statsCmd() *cli.Command {
	var (
		input  string
		random int64
		seed   uint64
		all    bool
	)

	return &cli.Command{
		Name:      "stats",
		Usage:     "Compare compressed sizes of a peak list across compressors",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "peak list file, - for stdin",
				Destination: &input,
			},
			&cli.Int64Flag{
				Name:        "random",
				Usage:       "use this many random peaks (mz and intensity in [0, 1000)) instead of an input",
				Destination: &random,
			},
			&cli.Uint64Flag{
				Name:        "seed",
				Usage:       "seed for --random",
				Value:       1,
				Destination: &seed,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "measure every compression and text encoding combination, not only the presets",
				Destination: &all,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var sp spectrum.Spectrum
			if random > 0 {
				sp = randomSpectrum(int(random), seed)
			} else {
				if input == "" {
					input = cmd.Args().First()
				}
				var err error
				if sp, err = readPeaks(input); err != nil {
					return err
				}
			}

			compressors := mspack.Presets()
			if all {
				var err error
				if compressors, err = allCompressors(); err != nil {
					return err
				}
			}

			tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "COMPRESSOR\tPEAKS\tFRAME\tCOMPRESSED\tTEXT\tQUERY\tRATIO\tCOMPRESS\tDECOMPRESS\tFINGERPRINT")
			for _, c := range compressors {
				_, st, err := c.CompressWithStats(sp)
				if err != nil {
					return fmt.Errorf("%s: %w", c, err)
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%.3f\t%s\t%s\t%s\n",
					st.Name, st.Peaks, st.OriginalSize, st.CompressedSize, st.TextSize, st.QuerySize,
					st.TextRatio(),
					time.Duration(st.CompressionTimeNs), time.Duration(st.DecompressionTimeNs),
					hash.Hex(st.Fingerprint),
				)
			}

			return tw.Flush()
		},
	}
}

func randomSpectrum(n int, seed uint64) spectrum.Spectrum {
	rng := rand.New(rand.NewPCG(seed, seed))
	sp := spectrum.Spectrum{Mz: make([]float32, n), Intensity: make([]float32, n)}
	for i := range n {
		sp.Mz[i] = rng.Float32() * 1000
		sp.Intensity[i] = rng.Float32() * 1000
	}
	slices.Sort(sp.Mz)

	return sp
}

func allCompressors() ([]*mspack.Compressor, error) {
	compressions := []format.CompressionType{
		format.CompressionNone, format.CompressionBrotli, format.CompressionGzip,
		format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	}
	texts := []format.TextEncoding{format.TextURL, format.TextB85}

	out := make([]*mspack.Compressor, 0, len(compressions)*len(texts))
	for _, ct := range compressions {
		for _, te := range texts {
			c, err := mspack.NewCompressor(mspack.WithCompression(ct), mspack.WithTextEncoding(te))
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}

	return out, nil
}
