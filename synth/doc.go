// SPDX-License-Identifier: EPL-2.0

// Package synth renders still images as audible frequency spectra.
//
// An image is first collapsed to a grayscale grid (DecodeLuma), then
// Spectrum sweeps it column by column: each column becomes a slice of
// time, each bright row a sine whose frequency grows toward the top of
// the image. Played through a spectrogram viewer, the waveform draws the
// original picture.
package synth
