// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/img2wav/img2wav/pcm"
)

// mp3Stream is the slice of gomp3.Decoder this package needs; tests
// substitute fakes.
type mp3Stream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type mp3Decoder struct{}

func (mp3Decoder) Decode(r io.Reader) (pcm.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &mp3Source{
		dec:  dec,
		rate: dec.SampleRate(),
	}, nil
}

// mp3Source converts go-mp3's 16-bit little-endian stereo byte stream
// into normalized float32 samples.
type mp3Source struct {
	dec  mp3Stream
	rate int
	buf  []byte
}

func (s *mp3Source) SampleRate() int { return s.rate }

// Channels is always 2: go-mp3 upmixes mono streams to stereo.
func (s *mp3Source) Channels() int { return 2 }

func (s *mp3Source) Close() error { return nil }

func (s *mp3Source) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float32(v) / 32768.0
	}

	return samples, err
}
