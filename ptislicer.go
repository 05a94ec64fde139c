// SPDX-License-Identifier: EPL-2.0

package ptislicer

import (
	"bytes"
	"fmt"
	"io"
	"path"

	"github.com/tapir-audio/ptislicer/audio"
	"github.com/tapir-audio/ptislicer/clip"
	"github.com/tapir-audio/ptislicer/formats/aiff"
	"github.com/tapir-audio/ptislicer/formats/mp3"
	"github.com/tapir-audio/ptislicer/formats/vorbis"
	"github.com/tapir-audio/ptislicer/formats/wav"
	"github.com/tapir-audio/ptislicer/utils"
)

// NewRegistry returns a registry with every built-in decoder
// registered under its usual extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// LoadMonoClip decodes data using the decoder registered for name's
// extension, downmixes to mono and resamples to rate.
func LoadMonoClip(reg *audio.Registry, name string, data []byte, rate int) (*clip.Clip, error) {
	src, err := decode(reg, name, data)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	samples, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}

	c := clip.Downmix(samples, src.Channels(), src.SampleRate())
	return clip.Resample(c, rate), nil
}

// ExportWAV writes c as a mono 16-bit PCM WAV.
func ExportWAV(w io.Writer, c *clip.Clip) error {
	pcm := make([]int16, len(c.Samples))
	for i, s := range c.Samples {
		pcm[i] = utils.Float32ToInt16(s)
	}
	return wav.Write16(w, c.Rate, pcm)
}

func decode(reg *audio.Registry, name string, data []byte) (audio.Source, error) {
	dec, ok := reg.Get(path.Ext(name))
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, audio.ErrUnknownFormat)
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}
	return src, nil
}
