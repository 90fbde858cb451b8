package synth

import "math"

// Quantize converts normalized float samples to signed 16-bit PCM.
// Each sample is rounded to round(s*32767) and clamped to the int16
// range, never wrapped, so overdriven input clips cleanly.
func Quantize(samples []float64) []int16 {
	pcm := make([]int16, len(samples))
	for i, s := range samples {
		v := math.Round(s * 32767)
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}
		pcm[i] = int16(v)
	}
	return pcm
}
