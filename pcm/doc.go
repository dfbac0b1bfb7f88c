// SPDX-License-Identifier: EPL-2.0

// Package pcm provides streaming float32 audio primitives.
//
// The Source interface is the interchange format between decoders and
// the container codec: interleaved float32 samples in [-1.0, 1.0].
// Sources chain into pipelines:
//
//	src, _ := decode.Open("in.mp3")
//	src = pcm.NewResampler(src, 16000)
//	src = pcm.NewMonoMixer(src)
//
// Collect drains a pipeline into deinterleaved per-channel buffers, the
// shape the wav package writes from:
//
//	data, frames, err := pcm.Collect(src, 4096)
//
// The Registry maps format keys to Decoders; the decode package keeps
// one keyed by sniffed magic bytes.
package pcm
