// SPDX-License-Identifier: EPL-2.0

package pti

// Field offsets within the fixed instrument header. Multi-byte fields
// are little-endian. The same table drives ParseHeader and the
// builders, so a built file always parses back to the values written.
const (
	// HeaderLen is the size of the fixed header; the PCM payload
	// starts immediately after it.
	HeaderLen = 392

	offMagic            = 0   // [2]byte "TI"
	offHeaderVersion    = 2   // uint16, always 1
	offFirmwareMajor    = 4   // uint8, always 1
	offFirmwareMinor    = 5   // uint8, always 4
	offIsWavetable      = 20  // bool
	offName             = 21  // [31]byte ASCII, NUL padded
	offSampleLength     = 60  // uint32, PCM payload length in bytes
	offWavetableWindow  = 64  // uint16
	offSamplePlayback   = 76  // PlaybackMode
	offPlaybackStart    = 78  // uint16
	offLoopStart        = 80  // uint16
	offLoopEnd          = 82  // uint16
	offPlaybackEnd      = 84  // uint16
	offVolumeAutomation = 92  // bool
	offFilterCutoff     = 260 // float32
	offFilterResonance  = 264 // float32
	offFilterType       = 268 // FilterType
	offFilterEnabled    = 269 // bool
	offVolume           = 272 // uint8
	offPanning          = 276 // uint8
	offSliceOffsets     = 280 // 48 x uint16, fraction = value/65535
	offTotalSlices      = 376 // uint8
	offActiveSlice      = 377 // uint8
	offGranularLength   = 378 // uint16
	offGranularPosition = 380 // uint16
	offGranularShape    = 382 // GranularShape
	offGranularLoop     = 383 // GranularLoopMode
	offReverbSend       = 384 // uint8

	nameLen         = 31
	maxSliceEntries = 48
)

// PlaybackMode selects how the sampler plays the payload.
type PlaybackMode uint8

const (
	PlaybackOneShot PlaybackMode = iota
	PlaybackForwardLoop
	PlaybackBackwardLoop
	PlaybackPingPongLoop
	PlaybackSlice
	PlaybackBeatSlice
	PlaybackWavetable
	PlaybackGranular
)

func (m PlaybackMode) valid() bool { return m <= PlaybackGranular }

// GranularShape is the grain window shape for granular playback.
type GranularShape uint8

const (
	ShapeSquare GranularShape = iota
	ShapeTriangle
	ShapeGauss
)

func (s GranularShape) valid() bool { return s <= ShapeGauss }

// GranularLoopMode is the grain loop direction.
type GranularLoopMode uint8

const (
	GranularForward GranularLoopMode = iota
	GranularBackward
	GranularPingPong
)

func (m GranularLoopMode) valid() bool { return m <= GranularPingPong }

// FilterType selects the instrument filter topology.
type FilterType uint8

const (
	FilterLowPass FilterType = iota
	FilterHighPass
	FilterBandPass
)

func (f FilterType) valid() bool { return f <= FilterBandPass }

// Header is the decoded form of the fixed instrument header.
type Header struct {
	IsWavetable         bool
	Name                string
	SampleLength        uint32 // PCM payload length in bytes
	WavetableWindowSize uint16
	SamplePlayback      PlaybackMode
	GranularShape       GranularShape
	GranularLoopMode    GranularLoopMode
	FilterType          FilterType
	FilterEnabled       bool
	VolumeAutomation    bool
	TotalSlices         int

	// SliceOffsets holds each slice's start as a fraction in [0,1] of
	// the total frame count, truncated to TotalSlices entries.
	SliceOffsets []float64
}
