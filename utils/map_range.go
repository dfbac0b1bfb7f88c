// SPDX-License-Identifier: EPL-2.0

package utils

// MapRange linearly remaps x from [srcMin, srcMax] to [dstMin, dstMax].
func MapRange(x, srcMin, srcMax, dstMin, dstMax float32) float32 {
	return dstMin + (dstMax-dstMin)*(x-srcMin)/(srcMax-srcMin)
}

// Peak returns the largest absolute value in samples.
func Peak(samples []float32) float32 {
	var peak float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}

	return peak
}

// Normalize scales samples in place so the peak magnitude is 1.0.
// Silence is left untouched.
func Normalize(samples []float32) {
	peak := Peak(samples)
	if peak == 0 {
		return
	}

	inv := 1 / peak
	for i := range samples {
		samples[i] *= inv
	}
}
