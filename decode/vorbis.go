// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/img2wav/img2wav/pcm"
)

// vorbisStream is the slice of oggvorbis.Reader this package needs;
// tests substitute fakes.
type vorbisStream interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type vorbisDecoder struct{}

func (vorbisDecoder) Decode(r io.Reader) (pcm.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &vorbisSource{
		dec:      dec,
		rate:     dec.SampleRate(),
		channels: dec.Channels(),
	}, nil
}

type vorbisSource struct {
	dec      vorbisStream
	rate     int
	channels int
}

func (s *vorbisSource) SampleRate() int { return s.rate }
func (s *vorbisSource) Channels() int   { return s.channels }
func (s *vorbisSource) Close() error    { return nil }

func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, pcm.ErrInvalidDstSize
	}

	// oggvorbis already yields interleaved float32 in [-1, 1], but its
	// Read counts whole values like ours, so this is a straight call.
	n, err := s.dec.Read(dst)
	if n == 0 && err == nil {
		return 0, nil
	}

	return n - n%s.channels, err
}
