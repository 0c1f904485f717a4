package spectrum

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParsePeakList reads one "mz intensity" pair per line. The two numbers may
// be separated by whitespace, a comma or a semicolon. Blank lines and lines
// starting with '#' are skipped.
func ParsePeakList(r io.Reader) ([]Peak, error) {
	var peaks []Peak

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}

		fields := strings.FieldsFunc(text, isSeparator)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 fields, got %d", line, len(fields))
		}

		mz, err := strconv.ParseFloat(fields[0], 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: mass: %w", line, err)
		}
		intensity, err := strconv.ParseFloat(fields[1], 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: intensity: %w", line, err)
		}

		peaks = append(peaks, Peak{Mz: float32(mz), Intensity: float32(intensity)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return peaks, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', ',', ';', '\r':
		return true
	}

	return false
}
