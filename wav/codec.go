// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"math"
)

// EncodeSample appends the little-endian wire representation of one
// normalized sample s in [-1, 1] to dst and returns the extended slice.
// Unsupported depths append nothing; the Writer rejects them up front.
func EncodeSample(dst []byte, s float32, depth uint16) []byte {
	switch depth {
	case Depth8:
		return append(dst, encodeUint8(s))
	case Depth16:
		v := uint16(encodeInt16(s))
		return append(dst, byte(v), byte(v>>8))
	case Depth24:
		v := encodeInt24(s)
		return append(dst, byte(v), byte(v>>8), byte(v>>16))
	case Depth32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(s))
	}

	return dst
}

// DecodeSample converts the first depth/8 bytes of b back into a
// normalized sample. b must hold at least one encoded sample.
func DecodeSample(b []byte, depth uint16) float32 {
	switch depth {
	case Depth8:
		return decodeUint8(b[0])
	case Depth16:
		return decodeInt16(int16(binary.LittleEndian.Uint16(b)))
	case Depth24:
		return decodeInt24(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16)
	case Depth32:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	}

	return 0
}

// encodeInt16 scales and truncates s, clamping the result to the int16
// range so +1.0 does not wrap.
func encodeInt16(s float32) int16 {
	v := int32(s * 32768.0)
	if v < math.MinInt16 {
		v = math.MinInt16
	}
	if v > math.MaxInt16 {
		v = math.MaxInt16
	}

	return int16(v)
}

func decodeInt16(v int16) float32 { return float32(v) / 32768.0 }

// encodeInt24 rounds s to a signed 24-bit value held in the low three
// bytes of the result, two's complement.
func encodeInt24(s float32) uint32 {
	return uint32(int32(math.Round(float64(s)*0x7FFFFF))) & 0xFFFFFF
}

// decodeInt24 sign-extends the 24-bit value as the high three bytes of a
// 32-bit integer and scales by 2^31. The 2^23-1 encode scale and 2^31
// decode scale are intentionally asymmetric for wire compatibility with
// existing encoders; the residual round-trip error stays below 1e-6.
func decodeInt24(v uint32) float32 {
	return float32(int32(v<<8)) / 2147483648.0
}

// encodeUint8 stores s as offset binary. Input outside [-1, 1] is left
// undefined here; callers keep samples normalized.
func encodeUint8(s float32) byte {
	return byte(128 + int16(s*127.0))
}

func decodeUint8(v byte) float32 {
	return (float32(v) - 128.0) / 128.0
}
