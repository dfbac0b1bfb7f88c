// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/img2wav/img2wav/utils"
)

// maxFreq is the frequency mapped to the top image row, matching the
// vertical axis of a spectrogram display.
const maxFreq = 48000.0

// heatFloor is the luma below which a pixel counts as background and
// produces no tone.
const heatFloor = 10

// Spectrum renders img as a mono waveform seconds*sampleRate samples
// long. Image columns map to consecutive time slices; within a column,
// every row y with luma at or above heatFloor contributes a sine at
// (height-y)*maxFreq/height, with amplitude scaled linearly from luma
// into [0.001, 1]. Rows count up from the bottom so the image reads
// upright on a spectrogram. The result is peak-normalized to [-1, 1].
//
// Returns nil when img is degenerate or the requested length is not
// positive.
func Spectrum(img *Luma, sampleRate, seconds float64) []float32 {
	if img == nil || img.Width == 0 || img.Height == 0 || sampleRate <= 0 || seconds <= 0 {
		return nil
	}

	total := int(seconds * sampleRate)
	if total == 0 {
		return nil
	}

	slice := total / img.Width // samples per image column
	scale := maxFreq / float64(img.Height)

	out := make([]float32, total)
	for x := 0; x < img.Width; x++ {
		base := x * slice
		for y := 0; y < img.Height; y++ {
			heat := img.At(x, y)
			if heat < heatFloor {
				continue
			}

			amp := utils.MapRange(float32(heat), 0, 255, 0.001, 1)
			freq := float64(img.Height-y) * scale
			omega := 2 * math.Pi * freq / sampleRate

			for t := 0; t < slice; t++ {
				out[base+t] += amp * float32(math.Sin(omega*float64(t)))
			}
		}
	}

	utils.Normalize(out)

	return out
}
