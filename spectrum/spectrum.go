// Package spectrum pairs the mass and intensity columns of a peak list and
// turns them into the two hex strings produced by the encoding package.
//
// A round trip through the package looks like:
//
//	sp := spectrum.Spectrum{Mz: mzs, Intensity: intensities}
//	packed, err := spectrum.Encode(sp)
//	frame, err := spectrum.Frame(packed)   // ["<mz>", "<intensity>"]
//
//	packed, err = spectrum.Unframe(frame)
//	sp, err = spectrum.Decode(packed)
//
// The frame is what the root package hands to a compressor.
package spectrum

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when the two columns differ in length.
	ErrLengthMismatch = errors.New("spectrum: mass and intensity lengths differ")
	// ErrEmpty is returned for a spectrum without peaks.
	ErrEmpty = errors.New("spectrum: no peaks")
	// ErrMalformedFrame is returned when a frame is not a two element JSON
	// array of strings.
	ErrMalformedFrame = errors.New("spectrum: malformed frame")
)

// Peak is a single (mass, intensity) pair.
type Peak struct {
	Mz        float32
	Intensity float32
}

// Spectrum holds a peak list as two parallel columns.
type Spectrum struct {
	Mz        []float32
	Intensity []float32
}

// FromPeaks splits peaks into columns.
func FromPeaks(peaks []Peak) Spectrum {
	sp := Spectrum{
		Mz:        make([]float32, len(peaks)),
		Intensity: make([]float32, len(peaks)),
	}
	for i, p := range peaks {
		sp.Mz[i] = p.Mz
		sp.Intensity[i] = p.Intensity
	}

	return sp
}

// Peaks zips the columns back into pairs. The shorter column bounds the
// result.
func (s Spectrum) Peaks() []Peak {
	n := min(len(s.Mz), len(s.Intensity))
	peaks := make([]Peak, n)
	for i := range n {
		peaks[i] = Peak{Mz: s.Mz[i], Intensity: s.Intensity[i]}
	}

	return peaks
}

// Len returns the number of masses.
func (s Spectrum) Len() int {
	return len(s.Mz)
}

// Validate checks that the spectrum holds at least one peak and that both
// columns have the same length.
func (s Spectrum) Validate() error {
	if len(s.Mz) != len(s.Intensity) {
		return fmt.Errorf("%w: %d masses, %d intensities", ErrLengthMismatch, len(s.Mz), len(s.Intensity))
	}
	if len(s.Mz) == 0 {
		return ErrEmpty
	}

	return nil
}
