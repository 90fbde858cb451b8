package synth

import "math"

// SampleRate is the fixed output rate for all synthesis.
const SampleRate = 44100

// Waveform selects the oscillator shape.
type Waveform string

const (
	WaveSine     Waveform = "sine"
	WaveSquare   Waveform = "square"
	WaveSawtooth Waveform = "sawtooth"
	WaveTriangle Waveform = "triangle"
)

// Waveforms lists the recognized oscillator shapes.
var Waveforms = []Waveform{WaveSine, WaveSquare, WaveSawtooth, WaveTriangle}

// SampleCount returns the buffer length for a duration in seconds.
func SampleCount(duration float64) int {
	if duration <= 0 {
		return 0
	}
	return int(math.Round(SampleRate * duration))
}

// Generate produces one buffer of waveform samples in [-1, 1] at the
// given frequency. The time base is sampleCount evenly spaced points
// over the closed interval [0, duration]. Unknown waveforms degrade
// to sine; a non-positive duration yields an empty buffer.
func Generate(frequency, duration float64, kind Waveform) []float64 {
	n := SampleCount(duration)
	buf := make([]float64, n)

	var osc func(phase float64) float64
	switch kind {
	case WaveSquare:
		osc = square
	case WaveSawtooth:
		osc = sawtooth
	case WaveTriangle:
		osc = triangle
	default:
		osc = sine
	}

	for i := range buf {
		t := 0.0
		if n > 1 {
			t = duration * float64(i) / float64(n-1)
		}
		buf[i] = osc(frequency * t)
	}
	return buf
}

func sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

// square is the sign of the sine; sign(0) stays 0.
func square(phase float64) float64 {
	s := math.Sin(2 * math.Pi * phase)
	switch {
	case s > 0:
		return 1
	case s < 0:
		return -1
	default:
		return 0
	}
}

func sawtooth(phase float64) float64 {
	return 2 * (phase - math.Floor(0.5+phase))
}

func triangle(phase float64) float64 {
	return 2*math.Abs(2*(phase-math.Floor(0.5+phase))) - 1
}
