// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"fmt"
	"io"

	"github.com/img2wav/img2wav/pcm"
	"github.com/img2wav/img2wav/wav"
)

type wavDecoder struct{}

func (wavDecoder) Decode(r io.Reader) (pcm.Source, error) {
	cfg, err := wav.ReadHeader(r)
	if err != nil {
		return nil, err
	}

	return &wavSource{
		r:         r,
		cfg:       cfg,
		remaining: int(cfg.Samples),
	}, nil
}

// wavSource streams frames from a canonical WAV payload. ReadHeader has
// already consumed the 44 header bytes, so r sits at the payload.
type wavSource struct {
	r         io.Reader
	cfg       wav.Config
	remaining int // frames left in the data chunk
	truncated bool
	buf       []byte
}

func (s *wavSource) SampleRate() int { return int(s.cfg.SampleRate) }
func (s *wavSource) Channels() int   { return int(s.cfg.Channels) }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	channels := int(s.cfg.Channels)
	if len(dst)%channels != 0 {
		return 0, pcm.ErrInvalidDstSize
	}

	if s.remaining == 0 {
		if s.truncated {
			return 0, wav.ErrTruncatedData
		}
		return 0, io.EOF
	}

	frames := len(dst) / channels
	if frames > s.remaining {
		frames = s.remaining
	}
	if frames == 0 {
		return 0, nil
	}

	blockAlign := int(s.cfg.BlockAlign())
	sampleSize := s.cfg.SampleSize()

	need := frames * blockAlign
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	whole := n / blockAlign

	for f := 0; f < whole; f++ {
		base := f * blockAlign
		for ch := 0; ch < channels; ch++ {
			dst[f*channels+ch] = wav.DecodeSample(s.buf[base+ch*sampleSize:], s.cfg.BitDepth)
		}
	}
	s.remaining -= whole

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		if whole == 0 {
			return 0, wav.ErrTruncatedData
		}
		// truncated mid-chunk; surface it on the next call
		s.remaining = 0
		s.truncated = true
		return whole * channels, nil
	}
	if err != nil {
		return whole * channels, fmt.Errorf("reading wav payload: %w", err)
	}

	return whole * channels, nil
}
