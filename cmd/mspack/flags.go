package main

import (
	"fmt"

	"github.com/mspack/mspack"
	"github.com/mspack/mspack/format"
	"github.com/urfave/cli/v3"
)

var (
	configFile string
	logLevel   string
	logFormat  string
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config file",
			Value:       configPath(),
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text, json)",
			Value:       "text",
			Destination: &logFormat,
		},
	}
}

// pipelineFlags holds the compressor selection shared by compress and
// decompress.
type pipelineFlags struct {
	compression  string
	textEncoding string
}

func (p *pipelineFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "compression",
			Aliases:     []string{"c"},
			Usage:       "byte compressor (none, brotli, gzip, zstd, s2, lz4)",
			Value:       "brotli",
			Destination: &p.compression,
		},
		&cli.StringFlag{
			Name:        "text-encoding",
			Aliases:     []string{"e"},
			Usage:       "text encoding (url, b85, raw)",
			Value:       "url",
			Destination: &p.textEncoding,
		},
	}
}

// applyConfig fills unset flags from the config file.
func (p *pipelineFlags) applyConfig(cmd *cli.Command, cfg Config) {
	if cfg.Compression != "" && !cmd.IsSet("compression") {
		p.compression = cfg.Compression
	}
	if cfg.TextEncoding != "" && !cmd.IsSet("text-encoding") {
		p.textEncoding = cfg.TextEncoding
	}
}

func (p *pipelineFlags) compressor() (*mspack.Compressor, error) {
	ct, err := format.ParseCompressionType(p.compression)
	if err != nil {
		return nil, fmt.Errorf("--compression: %w", err)
	}
	te, err := format.ParseTextEncoding(p.textEncoding)
	if err != nil {
		return nil, fmt.Errorf("--text-encoding: %w", err)
	}

	return mspack.NewCompressor(
		mspack.WithCompression(ct),
		mspack.WithTextEncoding(te),
	)
}
