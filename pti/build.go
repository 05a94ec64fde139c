// SPDX-License-Identifier: EPL-2.0

package pti

import (
	"encoding/binary"

	"github.com/tapir-audio/ptislicer/clip"
	"github.com/tapir-audio/ptislicer/utils"
)

// Build serializes c as a one-shot instrument: the default header with
// the payload-length field patched, followed by the samples as signed
// 16-bit little-endian PCM.
func Build(c *clip.Clip) []byte {
	payload := c.Frames() * 2

	buf := make([]byte, HeaderLen+payload)
	copy(buf, headerTemplate)
	binary.LittleEndian.PutUint32(buf[offSampleLength:], uint32(payload))
	utils.EncodeInt16LE(buf[HeaderLen:], c.Samples)

	return buf
}

// BuildBeatSliced concatenates the ordered clips into a single
// beat-sliced instrument. Slice k starts at the cumulative frame count
// of the clips before it, stored as a fraction of the total frame count
// scaled to 65535 and truncated; the first slice's offset is always 0.
func BuildBeatSliced(clips []*clip.Clip, name string) ([]byte, error) {
	if len(clips) == 0 {
		return nil, ErrNoClips
	}
	if len(clips) > maxSliceEntries {
		return nil, ErrTooManySlices
	}

	rate := clips[0].Rate
	total := 0
	for _, c := range clips {
		if c.Rate != rate {
			return nil, ErrRateMismatch
		}
		total += c.Frames()
	}

	buf := Build(clip.Concat(clips...))
	setName(buf, name)
	buf[offSamplePlayback] = byte(PlaybackBeatSlice)
	buf[offTotalSlices] = byte(len(clips))

	cum := 0
	for i, c := range clips {
		var off uint16
		if total > 0 {
			off = uint16(uint64(cum) * 65535 / uint64(total))
		}
		binary.LittleEndian.PutUint16(buf[offSliceOffsets+2*i:], off)
		cum += c.Frames()
	}

	return buf, nil
}
