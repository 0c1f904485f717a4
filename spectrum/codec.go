package spectrum

import (
	"fmt"

	"github.com/mspack/mspack/encoding"
)

// Packed is the encoded form of a Spectrum.
type Packed struct {
	// Mz is the delta packed mass column followed by its count table.
	Mz string
	// Intensity is 8 hex digits per peak.
	Intensity string
}

// Len returns the number of peaks implied by the intensity column.
func (p Packed) Len() int {
	return len(p.Intensity) / encoding.PatternWidth
}

// Encode validates s and encodes both columns.
func Encode(s Spectrum) (Packed, error) {
	if err := s.Validate(); err != nil {
		return Packed{}, err
	}

	mz, err := encoding.EncodeMz(s.Mz)
	if err != nil {
		return Packed{}, fmt.Errorf("encode masses: %w", err)
	}

	return Packed{
		Mz:        mz,
		Intensity: encoding.EncodeIntensities(s.Intensity),
	}, nil
}

// Decode restores a Spectrum. The peak count is taken from the intensity
// column and used to split the mass count table from its data.
func Decode(p Packed) (Spectrum, error) {
	intensities, err := encoding.DecodeIntensities(p.Intensity)
	if err != nil {
		return Spectrum{}, fmt.Errorf("decode intensities: %w", err)
	}
	if len(intensities) == 0 {
		return Spectrum{}, ErrEmpty
	}

	mzs, err := encoding.DecodeMz(p.Mz, len(intensities))
	if err != nil {
		return Spectrum{}, fmt.Errorf("decode masses: %w", err)
	}

	return Spectrum{Mz: mzs, Intensity: intensities}, nil
}
