// SPDX-License-Identifier: EPL-2.0

package pti

import (
	"encoding/binary"
	"math"
)

// headerTemplate is the default instrument header every build starts
// from: one-shot playback, full playback range, low-pass filter off,
// centered volume and panning, no slices.
var headerTemplate = newTemplate()

func newTemplate() []byte {
	t := make([]byte, HeaderLen)

	t[offMagic] = 'T'
	t[offMagic+1] = 'I'
	binary.LittleEndian.PutUint16(t[offHeaderVersion:], 1)
	t[offFirmwareMajor] = 1
	t[offFirmwareMinor] = 4

	binary.LittleEndian.PutUint16(t[offWavetableWindow:], 2048)
	binary.LittleEndian.PutUint16(t[offLoopStart:], 1)
	binary.LittleEndian.PutUint16(t[offLoopEnd:], 65534)
	binary.LittleEndian.PutUint16(t[offPlaybackEnd:], 65535)
	t[offVolumeAutomation] = 1
	binary.LittleEndian.PutUint32(t[offFilterCutoff:], math.Float32bits(1.0))
	t[offVolume] = 50
	t[offPanning] = 50
	binary.LittleEndian.PutUint16(t[offGranularLength:], 441)
	binary.LittleEndian.PutUint16(t[offGranularPosition:], 441)

	return t
}

// Default returns a default instrument file: the template header under
// the given name with an empty sample payload.
func Default(name string) []byte {
	buf := make([]byte, HeaderLen)
	copy(buf, headerTemplate)
	setName(buf, name)
	return buf
}

// setName writes name into the header, truncated to 31 bytes and NUL
// padded.
func setName(buf []byte, name string) {
	field := buf[offName : offName+nameLen]
	for i := range field {
		field[i] = 0
	}
	copy(field, name)
}
