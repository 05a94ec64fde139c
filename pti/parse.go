// SPDX-License-Identifier: EPL-2.0

package pti

import "encoding/binary"

// ParseHeader decodes the fixed instrument header at the start of buf.
//
// Unknown enum bytes coerce to their defaults and slice entries beyond
// the total-slices count are dropped; neither is an error. Booleans are
// true only for the byte value 1.
func ParseHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderLen {
		return nil, ErrShortBuffer
	}

	h := &Header{
		IsWavetable:         buf[offIsWavetable] == 1,
		Name:                decodeName(buf),
		SampleLength:        binary.LittleEndian.Uint32(buf[offSampleLength:]),
		WavetableWindowSize: binary.LittleEndian.Uint16(buf[offWavetableWindow:]),
		SamplePlayback:      playbackMode(buf[offSamplePlayback]),
		GranularShape:       granularShape(buf[offGranularShape]),
		GranularLoopMode:    granularLoopMode(buf[offGranularLoop]),
		FilterType:          filterType(buf[offFilterType]),
		FilterEnabled:       buf[offFilterEnabled] == 1,
		VolumeAutomation:    buf[offVolumeAutomation] == 1,
		TotalSlices:         int(buf[offTotalSlices]),
	}

	if h.TotalSlices > maxSliceEntries {
		h.TotalSlices = maxSliceEntries
	}

	// All 48 table entries decode; only the first TotalSlices are
	// meaningful.
	offsets := make([]float64, maxSliceEntries)
	for i := range offsets {
		v := binary.LittleEndian.Uint16(buf[offSliceOffsets+2*i:])
		offsets[i] = float64(v) / 65535.0
	}
	h.SliceOffsets = offsets[:h.TotalSlices]

	return h, nil
}

// decodeName reads the 31-byte name field, stripping embedded NULs.
func decodeName(buf []byte) string {
	raw := buf[offName : offName+nameLen]
	out := make([]byte, 0, nameLen)
	for _, b := range raw {
		if b != 0 {
			out = append(out, b)
		}
	}
	return string(out)
}

func playbackMode(b byte) PlaybackMode {
	if m := PlaybackMode(b); m.valid() {
		return m
	}
	return PlaybackOneShot
}

func granularShape(b byte) GranularShape {
	if s := GranularShape(b); s.valid() {
		return s
	}
	return ShapeSquare
}

func granularLoopMode(b byte) GranularLoopMode {
	if m := GranularLoopMode(b); m.valid() {
		return m
	}
	return GranularForward
}

func filterType(b byte) FilterType {
	if f := FilterType(b); f.valid() {
		return f
	}
	return FilterLowPass
}
