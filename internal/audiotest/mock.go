// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides generated audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates deterministic sample data. It satisfies
// pcm.Source without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	emitted    int // frames generated so far
	waveform   func(frame, channel int) float32
}

// NewMockSource builds a source that emits the given number of frames of
// waveform output at sampleRate.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSineSource generates a full-scale sine at the given frequency on
// every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource emits the same value on every channel of every
// frame.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(_, _ int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() { m.emitted = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.emitted >= m.frames {
		return 0, io.EOF
	}

	want := len(dst) / m.channels
	if left := m.frames - m.emitted; want > left {
		want = left
	}

	for f := 0; f < want; f++ {
		for ch := 0; ch < m.channels; ch++ {
			dst[f*m.channels+ch] = m.waveform(m.emitted+f, ch)
		}
	}
	m.emitted += want

	n := want * m.channels
	if m.emitted >= m.frames {
		return n, io.EOF
	}

	return n, nil
}
