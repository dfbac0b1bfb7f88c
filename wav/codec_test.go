// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"math"
	"testing"
)

func TestEncodeSampleUint8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  byte
	}{
		{name: "silence", input: 0.0, want: 128},
		{name: "full positive", input: 1.0, want: 255},
		{name: "full negative", input: -1.0, want: 1},
		{name: "half positive", input: 0.5, want: 191}, // 128 + trunc(63.5)
		{name: "half negative", input: -0.5, want: 65}, // 128 - trunc(63.5)
		{name: "small positive", input: 0.01, want: 129},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EncodeSample(nil, tt.input, Depth8)
			if len(got) != 1 {
				t.Fatalf("encoded %d bytes, want 1", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("EncodeSample(%v, 8) = %d, want %d", tt.input, got[0], tt.want)
			}
		})
	}
}

func TestEncodeSampleInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "silence", input: 0.0, want: 0},
		{name: "full positive clamps", input: 1.0, want: math.MaxInt16},
		{name: "full negative", input: -1.0, want: math.MinInt16},
		{name: "half positive", input: 0.5, want: 16384},
		{name: "half negative", input: -0.5, want: -16384},
		{name: "over range clamps", input: 1.5, want: math.MaxInt16},
		{name: "under range clamps", input: -1.5, want: math.MinInt16},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := encodeInt16(tt.input); got != tt.want {
				t.Errorf("encodeInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeSampleInt24(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  uint32
	}{
		{name: "silence", input: 0.0, want: 0},
		{name: "full positive", input: 1.0, want: 0x7FFFFF},
		{name: "full negative", input: -1.0, want: 0x800001},
		{name: "half positive rounds", input: 0.5, want: 0x400000}, // round(4194303.5)
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := encodeInt24(tt.input); got != tt.want {
				t.Errorf("encodeInt24(%v) = %#x, want %#x", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeSampleFloat32Identity(t *testing.T) {
	t.Parallel()

	for _, s := range []float32{0, 1, -1, 0.123456, -0.987654} {
		b := EncodeSample(nil, s, Depth32)
		if len(b) != 4 {
			t.Fatalf("encoded %d bytes, want 4", len(b))
		}

		if got := DecodeSample(b, Depth32); got != s {
			t.Errorf("32-bit round trip of %v = %v", s, got)
		}
	}
}

func TestSampleRoundTripTolerance(t *testing.T) {
	t.Parallel()

	inputs := []float32{0, 0.25, -0.25, 0.5, -0.5, 0.8, -0.8, 0.99, -0.99, 1, -1}

	tests := []struct {
		depth     uint16
		tolerance float64
	}{
		{depth: Depth32, tolerance: 0},
		{depth: Depth24, tolerance: 1e-6},
		{depth: Depth16, tolerance: 1e-4},
		// offset-binary truncation plus the 127/128 scale mismatch
		// costs up to two quantization steps
		{depth: Depth8, tolerance: 2.0 / 128},
	}

	for _, tt := range tests {
		for _, s := range inputs {
			b := EncodeSample(nil, s, tt.depth)
			got := DecodeSample(b, tt.depth)

			if diff := math.Abs(float64(got - s)); diff > tt.tolerance {
				t.Errorf("depth %d: round trip of %v = %v (diff %v, tolerance %v)",
					tt.depth, s, got, diff, tt.tolerance)
			}
		}
	}
}

// Negative 24-bit values must sign-extend when decoded as the high three
// bytes of a 32-bit integer.
func TestDecodeInt24SignExtension(t *testing.T) {
	t.Parallel()

	if got := decodeInt24(0x800001); got >= 0 {
		t.Errorf("decodeInt24(0x800001) = %v, want negative", got)
	}

	if got := decodeInt24(0x7FFFFF); got <= 0 {
		t.Errorf("decodeInt24(0x7FFFFF) = %v, want positive", got)
	}
}

func TestEncodeSampleWireWidths(t *testing.T) {
	t.Parallel()

	widths := map[uint16]int{Depth8: 1, Depth16: 2, Depth24: 3, Depth32: 4}
	for depth, want := range widths {
		if got := len(EncodeSample(nil, 0.5, depth)); got != want {
			t.Errorf("depth %d encoded to %d bytes, want %d", depth, got, want)
		}
	}
}

func TestEncodeSampleUnsupportedDepth(t *testing.T) {
	t.Parallel()

	if got := EncodeSample(nil, 0.5, 12); len(got) != 0 {
		t.Errorf("EncodeSample with depth 12 appended %d bytes, want 0", len(got))
	}
}
