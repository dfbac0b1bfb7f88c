// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"
)

const readChunkFrames = 8192

// ReadHeader parses and validates the 44-byte header from r and recovers
// the stream configuration. The sample count is derived from the data
// chunk size. r is left positioned at the start of the payload.
func ReadHeader(r io.Reader) (Config, error) {
	h := make([]byte, headerSize)
	if _, err := io.ReadFull(r, h); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Config{}, ErrShortHeader
		}
		return Config{}, fmt.Errorf("reading header: %w", err)
	}

	return parseHeader(h)
}

// ReadHeaderFile reads just the header of the WAV file at path.
func ReadHeaderFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadHeader(f)
}

// Read decodes cfg.Samples frames from rs into the caller-owned
// per-channel buffers. It seeks to the payload offset first, so rs may be
// at any position. A payload shorter than the declared sample count is
// reported as ErrTruncatedData together with the number of complete
// frames decoded before the truncation.
func Read(rs io.ReadSeeker, cfg Config, data [][]float32) (int, error) {
	if err := validateBuffer(cfg, data); err != nil {
		return 0, err
	}

	if _, err := rs.Seek(headerSize, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seeking past header: %w", err)
	}

	frames := int(cfg.Samples)
	channels := int(cfg.Channels)
	blockAlign := int(cfg.BlockAlign())
	sampleSize := cfg.SampleSize()

	buf := make([]byte, readChunkFrames*blockAlign)
	decoded := 0

	for decoded < frames {
		want := frames - decoded
		if want > readChunkFrames {
			want = readChunkFrames
		}

		n, err := io.ReadFull(rs, buf[:want*blockAlign])

		whole := n / blockAlign
		for f := 0; f < whole; f++ {
			base := f * blockAlign
			for ch := 0; ch < channels; ch++ {
				data[ch][decoded+f] = DecodeSample(buf[base+ch*sampleSize:], cfg.BitDepth)
			}
		}
		decoded += whole

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return decoded, ErrTruncatedData
		}
		if err != nil {
			return decoded, fmt.Errorf("reading samples: %w", err)
		}
	}

	return decoded, nil
}

// ReadFile reads the entire WAV file at path, allocating one buffer per
// channel. It is the two-phase ReadHeader + Read flow in one call.
func ReadFile(path string) (Config, [][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := ReadHeader(f)
	if err != nil {
		return Config{}, nil, err
	}

	data := make([][]float32, cfg.Channels)
	for ch := range data {
		data[ch] = make([]float32, cfg.Samples)
	}

	if _, err := Read(f, cfg, data); err != nil {
		return cfg, nil, err
	}

	return cfg, data, nil
}
