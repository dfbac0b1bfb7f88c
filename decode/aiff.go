// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/img2wav/img2wav/pcm"
)

// aiffStream is the slice of aiff.Decoder this package needs; tests
// substitute fakes.
type aiffStream interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type aiffDecoder struct{}

func (aiffDecoder) Decode(r io.Reader) (pcm.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs seeking; buffer the stream
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("buffering aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, ErrUnsupportedAiffDepth
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrNotAiffFile
	}

	return &aiffSource{
		dec:      dec,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		scale:    float32(1 / float64(uint64(1)<<(dec.BitDepth-1))),
		format:   format,
	}, nil
}

// aiffSource adapts go-audio's integer PCM buffers to normalized
// float32 samples.
type aiffSource struct {
	dec      aiffStream
	rate     int
	channels int
	scale    float32
	format   *goaudio.Format
	intBuf   *goaudio.IntBuffer
}

func (s *aiffSource) SampleRate() int { return s.rate }
func (s *aiffSource) Channels() int   { return s.channels }
func (s *aiffSource) Close() error    { return nil }

func (s *aiffSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.format,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(s.intBuf.Data[i]) * s.scale
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}
