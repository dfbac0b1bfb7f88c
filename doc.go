// SPDX-License-Identifier: EPL-2.0

// Package img2wav converts still images into audible frequency spectra
// and writes the result as a PCM WAV file.
//
// Pixel brightness becomes the amplitude of a sine wave whose frequency
// is derived from the pixel's row; played through a spectrogram viewer,
// the audio redraws the image.
//
// # Quick start
//
//	frames, err := img2wav.Convert("picture.png", "out.wav", 44100, 5.0, wav.Depth16)
//
// # Building blocks
//
// The heavy lifting lives in the subpackages:
//   - wav: the container codec — reader/writer for canonical RIFF/WAVE
//     files at 8, 16, 24 and 32-bit depths
//   - synth: image decoding and the sine-bank synthesis
//   - pcm: streaming float32 pipeline (resampler, mono mixer, collection
//     into per-channel buffers)
//   - decode: format-sniffing decoders for WAV, MP3, Ogg Vorbis and AIFF
//
// WriteSource bridges any pcm.Source into the container writer, so the
// codec serves arbitrary PCM-producing pipelines, not just image
// synthesis:
//
//	src, _ := decode.Open("speech.mp3")
//	defer src.Close()
//	frames, err := img2wav.WriteSource("speech.wav", src, wav.Depth16)
//
// The cmd/img2wav and cmd/towav binaries wrap these two entry points.
package img2wav
