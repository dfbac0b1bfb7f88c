// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
)

// headerSize is the fixed size of the RIFF/WAVE/fmt/data header. The
// layout is positional; field order and widths must not change.
const headerSize = 44

const fmtChunkSize = 16

// marshalHeader lays out the canonical 44-byte header for cfg.
func marshalHeader(cfg Config) []byte {
	dataSize := cfg.DataSize()
	totalSize := 36 + dataSize
	if dataSize%2 != 0 {
		totalSize++ // account for the pad byte
	}

	h := make([]byte, headerSize)

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], totalSize)
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(h[20:22], cfg.formatCode())
	binary.LittleEndian.PutUint16(h[22:24], cfg.Channels)
	binary.LittleEndian.PutUint32(h[24:28], cfg.SampleRate)
	binary.LittleEndian.PutUint32(h[28:32], cfg.ByteRate())
	binary.LittleEndian.PutUint16(h[32:34], cfg.BlockAlign())
	binary.LittleEndian.PutUint16(h[34:36], cfg.BitDepth)

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], cfg.DataSize())

	return h
}

// parseHeader validates the chunk tags field by field and recovers the
// stream configuration. The sample count is derived from the data chunk
// size.
func parseHeader(h []byte) (Config, error) {
	if len(h) < headerSize {
		return Config{}, ErrShortHeader
	}

	if !bytes.Equal(h[0:4], []byte("RIFF")) {
		return Config{}, ErrBadRIFFChunk
	}

	if !bytes.Equal(h[8:12], []byte("WAVE")) {
		return Config{}, ErrBadWAVEMarker
	}

	if !bytes.Equal(h[12:16], []byte("fmt ")) {
		return Config{}, ErrBadFmtChunk
	}

	if !bytes.Equal(h[36:40], []byte("data")) {
		return Config{}, ErrBadDataChunk
	}

	cfg := Config{
		Channels:   binary.LittleEndian.Uint16(h[22:24]),
		SampleRate: binary.LittleEndian.Uint32(h[24:28]),
		BitDepth:   binary.LittleEndian.Uint16(h[34:36]),
	}

	// Guard the division below before full validation.
	if cfg.Channels == 0 {
		return Config{}, ErrInvalidChannels
	}

	switch cfg.BitDepth {
	case Depth8, Depth16, Depth24, Depth32:
	default:
		return Config{}, ErrInvalidBitDepth
	}

	dataSize := binary.LittleEndian.Uint32(h[40:44])
	cfg.Samples = dataSize / uint32(cfg.BlockAlign())

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
