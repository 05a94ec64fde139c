// SPDX-License-Identifier: EPL-2.0

package clip

// silenceThreshold is the absolute amplitude below which a sample counts
// as silence, roughly -60 dBFS.
const silenceThreshold = 0.001

// TrimSilence removes runs of silence from the selected edges of c.
// A clip that is entirely silent trims down to zero frames. The result
// is stable: trimming an already-trimmed clip returns it unchanged.
func TrimSilence(c *Clip, fromStart, fromEnd bool) *Clip {
	lo, hi := 0, len(c.Samples)

	if fromStart {
		for lo < hi && isSilent(c.Samples[lo]) {
			lo++
		}
	}
	if fromEnd {
		for hi > lo && isSilent(c.Samples[hi-1]) {
			hi--
		}
	}

	if lo == 0 && hi == len(c.Samples) {
		return c
	}

	out := make([]float32, hi-lo)
	copy(out, c.Samples[lo:hi])
	return &Clip{Samples: out, Rate: c.Rate}
}

func isSilent(s float32) bool {
	if s < 0 {
		s = -s
	}
	return s < silenceThreshold
}
