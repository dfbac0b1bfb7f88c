// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/img2wav/img2wav/pcm"
)

// formats holds the known decoders keyed by the format name Sniff
// returns.
var formats = func() *pcm.Registry {
	r := pcm.NewRegistry()
	r.Register("wav", wavDecoder{})
	r.Register("mp3", mp3Decoder{})
	r.Register("ogg", vorbisDecoder{})
	r.Register("aiff", aiffDecoder{})
	return r
}()

// Formats lists the supported container formats.
func Formats() []string { return formats.Formats() }

// Sniff names the container format from the first bytes of a stream.
// Four bytes are enough for every supported format.
func Sniff(magic []byte) (string, error) {
	switch {
	case bytes.HasPrefix(magic, []byte("RIFF")):
		return "wav", nil
	case bytes.HasPrefix(magic, []byte("OggS")):
		return "ogg", nil
	case bytes.HasPrefix(magic, []byte("FORM")):
		return "aiff", nil
	case bytes.HasPrefix(magic, []byte("ID3")):
		return "mp3", nil
	case len(magic) >= 2 && magic[0] == 0xFF && magic[1]&0xE0 == 0xE0:
		// raw mpeg frame sync, mp3 without an ID3 tag
		return "mp3", nil
	}

	return "", ErrUnknownFormat
}

// Open opens the audio file at path, sniffs its container format and
// returns a Source that owns the file handle. Closing the Source closes
// the file.
func Open(path string) (pcm.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	magic := make([]byte, 4)
	if _, err := io.ReadFull(f, magic); err != nil {
		f.Close()
		return nil, ErrUnknownFormat
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("rewinding %s: %w", path, err)
	}

	format, err := Sniff(magic)
	if err != nil {
		f.Close()
		return nil, err
	}

	dec, ok := formats.Get(format)
	if !ok {
		f.Close()
		return nil, ErrUnknownFormat
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// fileSource ties the lifetime of the backing file to the Source.
type fileSource struct {
	pcm.Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}

	return err
}
