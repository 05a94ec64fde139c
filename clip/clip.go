// SPDX-License-Identifier: EPL-2.0

package clip

import "time"

// Clip is decoded mono PCM: float32 samples in [-1,1] at a fixed sample
// rate. Clips are treated as immutable; every transform in this package
// returns a new clip and callers must not modify Samples in place.
type Clip struct {
	Samples []float32
	Rate    int
}

// Frames returns the number of sample frames (mono, so samples == frames).
func (c *Clip) Frames() int { return len(c.Samples) }

// Duration is Frames divided by Rate.
func (c *Clip) Duration() time.Duration {
	if c.Rate <= 0 {
		return 0
	}
	return time.Duration(float64(len(c.Samples)) / float64(c.Rate) * float64(time.Second))
}

// Sum returns the sample-wise sum of the given clips, sized to the
// longest input. Summing (rather than averaging) lets stacked layers
// reinforce each other; clamping to [-1,1] is deferred to the int16
// conversion at serialization time.
func Sum(clips ...*Clip) *Clip {
	if len(clips) == 0 {
		return &Clip{}
	}

	frames := 0
	for _, c := range clips {
		if c.Frames() > frames {
			frames = c.Frames()
		}
	}

	out := make([]float32, frames)
	for _, c := range clips {
		for i, s := range c.Samples {
			out[i] += s
		}
	}

	return &Clip{Samples: out, Rate: clips[0].Rate}
}

// Concat joins clips back to back into a single clip at the first
// clip's rate.
func Concat(clips ...*Clip) *Clip {
	if len(clips) == 0 {
		return &Clip{}
	}

	total := 0
	for _, c := range clips {
		total += c.Frames()
	}

	out := make([]float32, 0, total)
	for _, c := range clips {
		out = append(out, c.Samples...)
	}

	return &Clip{Samples: out, Rate: clips[0].Rate}
}
