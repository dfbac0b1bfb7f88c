// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"
)

// Collect drains src and deinterleaves it into one buffer per channel,
// the layout the container writer consumes. bufferSize is the read
// granularity in samples (rounded down to whole frames; 4096 is a good
// default). Returns the channel buffers and the number of frames
// collected.
func Collect(src Source, bufferSize int) ([][]float32, int, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, 0, ErrNoChannels
	}

	if bufferSize < channels {
		bufferSize = channels
	}
	bufferSize -= bufferSize % channels

	data := make([][]float32, channels)
	buf := make([]float32, bufferSize)
	frames := 0

	for {
		n, err := src.ReadSamples(buf)

		whole := n / channels
		for f := 0; f < whole; f++ {
			for ch := 0; ch < channels; ch++ {
				data[ch] = append(data[ch], buf[f*channels+ch])
			}
		}
		frames += whole

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, frames, fmt.Errorf("reading source: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if frames == 0 {
		return nil, 0, ErrEmptySource
	}

	return data, frames, nil
}
