package clip

// Downmix folds interleaved multichannel samples into a mono clip by
// averaging the channels of each frame.
func Downmix(interleaved []float32, channels, rate int) *Clip {
	if channels <= 1 {
		out := make([]float32, len(interleaved))
		copy(out, interleaved)
		return &Clip{Samples: out, Rate: rate}
	}

	frames := len(interleaved) / channels
	out := make([]float32, frames)

	// Unrolled loop for common cases
	switch channels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 1
			out[f] = (interleaved[idx] + interleaved[idx+1]) * 0.5
		}
	case 4: // Quad
		for f := range frames {
			idx := f << 2
			sum := interleaved[idx] + interleaved[idx+1] + interleaved[idx+2] + interleaved[idx+3]
			out[f] = sum * 0.25
		}
	default: // Generic path
		invChannels := float32(1.0) / float32(channels)
		for f := range frames {
			sum := float32(0)
			baseIdx := f * channels
			for c := range channels {
				sum += interleaved[baseIdx+c]
			}
			out[f] = sum * invChannels
		}
	}

	return &Clip{Samples: out, Rate: rate}
}
