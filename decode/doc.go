// SPDX-License-Identifier: EPL-2.0

// Package decode turns audio files into pcm.Source streams.
//
// The container format is sniffed from the file's magic bytes, so
// callers never name a format:
//
//	src, err := decode.Open("input.mp3")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//
// Supported containers: WAV (this repo's own codec), MP3
// (hajimehoshi/go-mp3), Ogg Vorbis (jfreymuth/oggvorbis) and AIFF
// (go-audio/aiff). All sources yield interleaved float32 samples in
// [-1.0, 1.0].
package decode
