// SPDX-License-Identifier: EPL-2.0

package wav

// Supported bit depths. 32-bit streams carry IEEE floats, everything else
// is integer PCM.
const (
	Depth8  uint16 = 8
	Depth16 uint16 = 16
	Depth24 uint16 = 24
	Depth32 uint16 = 32
)

// Format codes stored in the fmt chunk.
const (
	formatPCM       uint16 = 1
	formatIEEEFloat uint16 = 3
)

// Config describes the PCM stream carried by a WAV container.
// Samples counts frames per channel, not total encoded values.
type Config struct {
	Channels   uint16
	Samples    uint32
	SampleRate uint32
	BitDepth   uint16
}

// Validate reports the first violated field constraint.
func (c Config) Validate() error {
	switch {
	case c.Channels == 0:
		return ErrInvalidChannels
	case c.Samples == 0:
		return ErrInvalidSamples
	case c.SampleRate == 0:
		return ErrInvalidSampleRate
	}

	switch c.BitDepth {
	case Depth8, Depth16, Depth24, Depth32:
		return nil
	}

	return ErrInvalidBitDepth
}

// SampleSize is the number of bytes one encoded sample occupies.
func (c Config) SampleSize() int { return int(c.BitDepth) / 8 }

// BlockAlign is the number of bytes per frame (one sample from every
// channel).
func (c Config) BlockAlign() uint16 { return c.Channels * (c.BitDepth / 8) }

// ByteRate is the number of payload bytes per second of audio.
func (c Config) ByteRate() uint32 {
	return c.SampleRate * uint32(c.BitDepth) * uint32(c.Channels) / 8
}

// DataSize is the size of the data chunk payload, excluding the pad byte.
func (c Config) DataSize() uint32 {
	return c.Samples * uint32(c.Channels) * uint32(c.BitDepth) / 8
}

func (c Config) formatCode() uint16 {
	if c.BitDepth == Depth32 {
		return formatIEEEFloat
	}

	return formatPCM
}
