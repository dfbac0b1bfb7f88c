// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// sineBuffer builds per-channel buffers holding an identical sine wave.
func sineBuffer(channels, frames, rate int, freq, amp float64) [][]float32 {
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
		for i := range data[ch] {
			t := float64(i) / float64(rate)
			data[ch][i] = float32(amp * math.Sin(2*math.Pi*freq*t))
		}
	}
	return data
}

func TestWriteInvalidConfig(t *testing.T) {
	t.Parallel()

	data := [][]float32{{0.1, 0.2}}

	tests := []struct {
		name string
		cfg  Config
		data [][]float32
		want error
	}{
		{
			name: "zero channels",
			cfg:  Config{Samples: 2, SampleRate: 8000, BitDepth: 16},
			data: data,
			want: ErrInvalidChannels,
		},
		{
			name: "zero samples",
			cfg:  Config{Channels: 1, SampleRate: 8000, BitDepth: 16},
			data: data,
			want: ErrInvalidSamples,
		},
		{
			name: "zero sample rate",
			cfg:  Config{Channels: 1, Samples: 2, BitDepth: 16},
			data: data,
			want: ErrInvalidSampleRate,
		},
		{
			name: "bad bit depth",
			cfg:  Config{Channels: 1, Samples: 2, SampleRate: 8000, BitDepth: 13},
			data: data,
			want: ErrInvalidBitDepth,
		},
		{
			name: "nil buffer",
			cfg:  Config{Channels: 1, Samples: 2, SampleRate: 8000, BitDepth: 16},
			data: nil,
			want: ErrNoData,
		},
		{
			name: "channel count mismatch",
			cfg:  Config{Channels: 2, Samples: 2, SampleRate: 8000, BitDepth: 16},
			data: data,
			want: ErrChannelMismatch,
		},
		{
			name: "short channel",
			cfg:  Config{Channels: 1, Samples: 5, SampleRate: 8000, BitDepth: 16},
			data: data,
			want: ErrShortChannel,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			n, err := Write(buf, tt.cfg, tt.data)

			if err != tt.want {
				t.Errorf("Write() error = %v, want %v", err, tt.want)
			}
			if n != 0 {
				t.Errorf("Write() wrote %d frames, want 0", n)
			}
			if buf.Len() != 0 {
				t.Errorf("Write() emitted %d bytes on invalid config, want 0", buf.Len())
			}
		})
	}
}

// Stereo 16-bit at 44.1kHz: 44 + 88200*2*2 payload bytes, no pad.
func TestWriteStereo16FileSize(t *testing.T) {
	t.Parallel()

	cfg := Config{Channels: 2, Samples: 88200, SampleRate: 44100, BitDepth: Depth16}
	data := sineBuffer(2, 88200, 44100, 440, 0.8)

	buf := new(bytes.Buffer)
	n, err := Write(buf, cfg, data)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if n != 88200 {
		t.Errorf("Write() = %d frames, want 88200", n)
	}
	if buf.Len() != 352844 {
		t.Errorf("file size = %d bytes, want 352844", buf.Len())
	}
}

// A single 8-bit sample: odd data size, one pad byte, 46 bytes total.
func TestWriteOddSizePadding(t *testing.T) {
	t.Parallel()

	cfg := Config{Channels: 1, Samples: 1, SampleRate: 8000, BitDepth: Depth8}

	buf := new(bytes.Buffer)
	n, err := Write(buf, cfg, [][]float32{{0.0}})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if n != 1 {
		t.Errorf("Write() = %d frames, want 1", n)
	}

	out := buf.Bytes()
	if len(out) != 46 {
		t.Fatalf("file size = %d bytes, want 46", len(out))
	}
	if out[44] != 128 {
		t.Errorf("encoded sample = %d, want 128", out[44])
	}
	if out[45] != 0 {
		t.Errorf("pad byte = %d, want 0", out[45])
	}
}

// On disk, frames interleave channel-major: ch0[0] ch1[0] ch2[0] ch0[1]...
func TestWriteInterleavingOrder(t *testing.T) {
	t.Parallel()

	cfg := Config{Channels: 3, Samples: 2, SampleRate: 8000, BitDepth: Depth16}
	data := [][]float32{
		{0.1, 0.4},
		{0.2, 0.5},
		{0.3, 0.6},
	}

	buf := new(bytes.Buffer)
	if _, err := Write(buf, cfg, data); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	payload := buf.Bytes()[headerSize:]
	want := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}

	for i, w := range want {
		v := int16(binary.LittleEndian.Uint16(payload[2*i:]))
		got := float32(v) / 32768.0
		if math.Abs(float64(got-w)) > 1e-4 {
			t.Errorf("payload sample %d = %v, want %v", i, got, w)
		}
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	cfg := Config{Channels: 1, Samples: 800, SampleRate: 8000, BitDepth: Depth16}
	data := sineBuffer(1, 800, 8000, 440, 0.5)

	n, err := WriteFile(path, cfg, data)
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if n != 800 {
		t.Errorf("WriteFile() = %d frames, want 800", n)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if want := int64(44 + 800*2); info.Size() != want {
		t.Errorf("file size = %d, want %d", info.Size(), want)
	}
}

// A failed validation must not create the destination file.
func TestWriteFileInvalidConfigNoFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "never.wav")
	cfg := Config{Channels: 0, Samples: 1, SampleRate: 8000, BitDepth: Depth16}

	if _, err := WriteFile(path, cfg, [][]float32{{0}}); err != ErrInvalidChannels {
		t.Fatalf("WriteFile() error = %v, want %v", err, ErrInvalidChannels)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("destination exists after failed validation")
	}
}

func TestWriteFileBadPath(t *testing.T) {
	t.Parallel()

	cfg := Config{Channels: 1, Samples: 1, SampleRate: 8000, BitDepth: Depth16}
	dir := t.TempDir()

	_, err := WriteFile(filepath.Join(dir, "missing", "out.wav"), cfg, [][]float32{{0}})
	if err == nil {
		t.Fatal("WriteFile() into missing directory succeeded")
	}
}

// Data size must be even after padding for every depth.
func TestWritePaddedSizeAlwaysEven(t *testing.T) {
	t.Parallel()

	for _, depth := range []uint16{Depth8, Depth16, Depth24, Depth32} {
		for _, frames := range []uint32{1, 2, 3, 7} {
			cfg := Config{Channels: 1, Samples: frames, SampleRate: 8000, BitDepth: depth}
			data := [][]float32{make([]float32, frames)}

			buf := new(bytes.Buffer)
			if _, err := Write(buf, cfg, data); err != nil {
				t.Fatalf("Write(depth=%d frames=%d) error = %v", depth, frames, err)
			}

			if payload := buf.Len() - headerSize; payload%2 != 0 {
				t.Errorf("depth=%d frames=%d: padded payload %d bytes is odd", depth, frames, payload)
			}
		}
	}
}
