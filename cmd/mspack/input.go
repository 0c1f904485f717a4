package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mspack/mspack/spectrum"
)

// openInput returns stdin for "" and "-", the named file otherwise.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}

	return os.Open(path)
}

func readPeaks(path string) (spectrum.Spectrum, error) {
	r, err := openInput(path)
	if err != nil {
		return spectrum.Spectrum{}, err
	}
	defer r.Close()

	peaks, err := spectrum.ParsePeakList(r)
	if err != nil {
		return spectrum.Spectrum{}, fmt.Errorf("read peaks: %w", err)
	}

	return spectrum.FromPeaks(peaks), nil
}

// readText returns the first argument, or the trimmed content of path.
func readText(arg, path string) (string, error) {
	if arg != "" {
		return strings.TrimSpace(arg), nil
	}

	r, err := openInput(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
