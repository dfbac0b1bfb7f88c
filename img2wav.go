// SPDX-License-Identifier: EPL-2.0

package img2wav

import (
	"errors"

	"github.com/img2wav/img2wav/pcm"
	"github.com/img2wav/img2wav/synth"
	"github.com/img2wav/img2wav/wav"
)

// ErrEmptySpectrum is reported when the synthesis window is too short to
// hold any samples.
var ErrEmptySpectrum = errors.New("image produced no samples")

// Convert renders the image at imagePath into a mono WAV file at
// wavPath, seconds long at sampleRate. bitDepth selects the sample
// encoding (8, 16, 24 or 32). Returns the number of frames written.
func Convert(imagePath, wavPath string, sampleRate uint32, seconds float64, bitDepth uint16) (int, error) {
	img, err := synth.LoadLuma(imagePath)
	if err != nil {
		return 0, err
	}

	samples := synth.Spectrum(img, float64(sampleRate), seconds)
	if len(samples) == 0 {
		return 0, ErrEmptySpectrum
	}

	cfg := wav.Config{
		Channels:   1,
		Samples:    uint32(len(samples)),
		SampleRate: sampleRate,
		BitDepth:   bitDepth,
	}

	return wav.WriteFile(wavPath, cfg, [][]float32{samples})
}

// WriteSource drains src and serializes it as a WAV file at path. The
// source's rate and channel layout carry over; bitDepth selects the
// sample encoding. Returns the number of frames written per channel.
func WriteSource(path string, src pcm.Source, bitDepth uint16) (int, error) {
	data, frames, err := pcm.Collect(src, 4096)
	if err != nil {
		return 0, err
	}

	cfg := wav.Config{
		Channels:   uint16(src.Channels()),
		Samples:    uint32(frames),
		SampleRate: uint32(src.SampleRate()),
		BitDepth:   bitDepth,
	}

	return wav.WriteFile(path, cfg, data)
}
