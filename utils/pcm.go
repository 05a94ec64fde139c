// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Float32ToInt16 converts one normalized sample to signed 16-bit PCM.
// Input outside [-1, 1] is clamped first.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 so +1.0 does not overflow
	return int16(x * 32767.0)
}

// EncodeInt16LE writes src as signed 16-bit little-endian PCM into dst,
// clamping each sample, and returns the number of bytes written. dst
// must hold at least 2*len(src) bytes.
func EncodeInt16LE(dst []byte, src []float32) int {
	for i, s := range src {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(Float32ToInt16(s)))
	}
	return len(src) * 2
}
