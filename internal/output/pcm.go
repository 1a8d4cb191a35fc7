// Package output converts decoded float samples to interleaved 16-bit
// PCM and queues finished buffers for the consumer.
package output

import "math"

// clip16 clips and rounds a float32 to int16 range.
func clip16(sample float32) int16 {
	if sample >= 32767.0 {
		return 32767
	}
	if sample <= -32768.0 {
		return -32768
	}
	return int16(math.RoundToEven(float64(sample)))
}

// Interleave16 converts per-channel float samples into interleaved
// int16 PCM with saturation. src holds one slice per channel, each
// with at least frameLen samples; dst receives
// frameLen*len(src) samples in channel order.
func Interleave16(dst []int16, src [][]float32, frameLen int) {
	channels := len(src)

	if channels == 1 {
		ch := src[0]
		for i := 0; i < frameLen; i++ {
			dst[i] = clip16(ch[i])
		}
		return
	}

	for ch := 0; ch < channels; ch++ {
		in := src[ch]
		for i := 0; i < frameLen; i++ {
			dst[i*channels+ch] = clip16(in[i])
		}
	}
}
