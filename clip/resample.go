// SPDX-License-Identifier: EPL-2.0

package clip

import "github.com/tapir-audio/ptislicer/utils"

// Resample converts c to the target sample rate using Catmull-Rom cubic
// interpolation. Returns c unchanged when the rate already matches.
func Resample(c *Clip, rate int) *Clip {
	if c.Rate == rate || c.Rate <= 0 || rate <= 0 || len(c.Samples) == 0 {
		return c
	}

	// ratio is how many source frames advance per output frame.
	ratio := float64(c.Rate) / float64(rate)
	frames := int(float64(len(c.Samples)) * float64(rate) / float64(c.Rate))
	out := make([]float32, frames)

	for i := range out {
		pos := float64(i) * ratio
		i1 := int(pos)
		x := float32(pos - float64(i1))

		y0 := sampleAt(c.Samples, i1-1)
		y1 := sampleAt(c.Samples, i1)
		y2 := sampleAt(c.Samples, i1+1)
		y3 := sampleAt(c.Samples, i1+2)

		out[i] = utils.CubicInterpolate(y0, y1, y2, y3, x)
	}

	return &Clip{Samples: out, Rate: rate}
}

// sampleAt reads index i, clamping at the edges so the interpolation
// window never runs off the clip.
func sampleAt(samples []float32, i int) float32 {
	if i < 0 {
		i = 0
	}
	if i >= len(samples) {
		i = len(samples) - 1
	}
	return samples[i]
}
