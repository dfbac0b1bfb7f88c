// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes canonical RIFF/WAVE containers.
//
// The package works with the fixed 44-byte header layout: a RIFF chunk,
// a 16-byte fmt chunk and a data chunk, little-endian throughout. It
// supports 8, 16 and 24-bit integer PCM and 32-bit IEEE float payloads,
// any channel count and any sample rate.
//
// # Buffers
//
// Samples cross the API as normalized float32 values in [-1.0, 1.0],
// held in caller-owned per-channel slices indexed [channel][frame]. On
// disk the channels interleave frame by frame; the codec converts
// between the two layouts. The package never retains a buffer across
// calls.
//
// # Writing
//
//	cfg := wav.Config{Channels: 1, Samples: 8000, SampleRate: 8000, BitDepth: wav.Depth16}
//	frames, err := wav.WriteFile("out.wav", cfg, [][]float32{samples})
//
// Write validates the configuration and the buffer shape before touching
// the destination, appends a zero pad byte when the data chunk size is
// odd, and reports the number of frames written per channel.
//
// # Reading
//
// Reading is two-phase. ReadHeader recovers the Config from the header;
// Read decodes the payload into buffers the caller allocates from it:
//
//	cfg, err := wav.ReadHeaderFile("in.wav")
//	data := make([][]float32, cfg.Channels)
//	for ch := range data {
//		data[ch] = make([]float32, cfg.Samples)
//	}
//	f, _ := os.Open("in.wav")
//	frames, err := wav.Read(f, cfg, data)
//
// ReadFile bundles both phases and the allocation.
//
// # Errors
//
// Every violated precondition and every malformed chunk has its own
// sentinel (ErrInvalidBitDepth, ErrBadRIFFChunk, ...) so callers can
// inspect failures with errors.Is. A payload shorter than the declared
// sample count is ErrTruncatedData, never a silent short count.
//
// # Sample codec
//
// EncodeSample and DecodeSample expose the per-depth wire transforms for
// streaming consumers that bypass the whole-buffer Read/Write calls.
// Note that 24-bit uses asymmetric encode (2^23-1) and decode (2^31)
// scales to match existing encoders; round-trip error stays below 1e-6.
package wav
