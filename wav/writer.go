// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"
)

// writeChunkFrames bounds the staging buffer for payload writes; at
// stereo 16-bit this keeps it around 32 KiB.
const writeChunkFrames = 8192

// validateBuffer runs the shared Writer/Reader preconditions: a valid
// config and a per-channel buffer shaped to match it.
func validateBuffer(cfg Config, data [][]float32) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(data) == 0 {
		return ErrNoData
	}

	if len(data) != int(cfg.Channels) {
		return ErrChannelMismatch
	}

	for _, ch := range data {
		if len(ch) < int(cfg.Samples) {
			return ErrShortChannel
		}
	}

	return nil
}

// Write serializes data to w as a WAV stream: the 44-byte header, the
// interleaved sample payload, and a zero pad byte when the data chunk
// size is odd. data holds one slice per channel, each at least
// cfg.Samples long; on disk the channels interleave frame by frame.
// Returns the number of frames written per channel. Nothing is written
// when validation fails; a mid-write I/O error leaves whatever was
// already flushed.
func Write(w io.Writer, cfg Config, data [][]float32) (int, error) {
	if err := validateBuffer(cfg, data); err != nil {
		return 0, err
	}

	if _, err := w.Write(marshalHeader(cfg)); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	frames := int(cfg.Samples)
	channels := int(cfg.Channels)
	blockAlign := int(cfg.BlockAlign())

	buf := make([]byte, 0, writeChunkFrames*blockAlign)
	flushed := 0
	pending := 0

	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			buf = EncodeSample(buf, data[ch][i], cfg.BitDepth)
		}
		pending++

		if len(buf)+blockAlign > cap(buf) {
			if _, err := w.Write(buf); err != nil {
				return flushed, fmt.Errorf("writing samples: %w", err)
			}
			flushed += pending
			pending = 0
			buf = buf[:0]
		}
	}

	if len(buf) > 0 {
		if _, err := w.Write(buf); err != nil {
			return flushed, fmt.Errorf("writing samples: %w", err)
		}
		flushed += pending
	}

	// RIFF chunks are word aligned.
	if cfg.DataSize()%2 != 0 {
		if _, err := w.Write([]byte{0}); err != nil {
			return flushed, fmt.Errorf("writing pad byte: %w", err)
		}
	}

	return flushed, nil
}

// WriteFile writes a WAV file at path, truncating any existing file. The
// destination is not touched when validation fails.
func WriteFile(path string, cfg Config, data [][]float32) (int, error) {
	if err := validateBuffer(cfg, data); err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}

	n, err := Write(f, cfg, data)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", path, cerr)
	}

	return n, err
}
