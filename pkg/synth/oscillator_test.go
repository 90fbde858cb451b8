package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateZeroDuration(t *testing.T) {
	assert.Empty(t, Generate(440, 0, WaveSine))
	assert.Empty(t, Generate(440, -1, WaveSine))
}

func TestGenerateBufferLength(t *testing.T) {
	assert.Len(t, Generate(440, 1.0, WaveSine), 44100)
	assert.Len(t, Generate(440, 0.5, WaveSine), 22050)
	// Rounding, not truncation: 0.001s * 44100 = 44.1 -> 44
	assert.Len(t, Generate(440, 0.001, WaveSine), 44)
}

func TestGenerateSineStartsAtZero(t *testing.T) {
	buf := Generate(440, 1.0, WaveSine)
	require.NotEmpty(t, buf)
	assert.InDelta(t, 0, buf[0], 1e-12)
}

func TestGenerateRange(t *testing.T) {
	for _, kind := range Waveforms {
		buf := Generate(440, 0.1, kind)
		for i, s := range buf {
			require.LessOrEqual(t, s, 1.0, "%s sample %d above range", kind, i)
			require.GreaterOrEqual(t, s, -1.0, "%s sample %d below range", kind, i)
		}
	}
}

func TestGenerateSquareIsSignOfSine(t *testing.T) {
	sine := Generate(440, 0.05, WaveSine)
	square := Generate(440, 0.05, WaveSquare)
	require.Equal(t, len(sine), len(square))
	for i := range sine {
		switch {
		case sine[i] > 0:
			assert.Equal(t, 1.0, square[i])
		case sine[i] < 0:
			assert.Equal(t, -1.0, square[i])
		default:
			assert.Equal(t, 0.0, square[i])
		}
	}
}

func TestGenerateSawtoothFormula(t *testing.T) {
	freq, dur := 440.0, 0.01
	buf := Generate(freq, dur, WaveSawtooth)
	n := len(buf)
	require.Greater(t, n, 1)
	for i, s := range buf {
		phase := freq * (dur * float64(i) / float64(n-1))
		want := 2 * (phase - math.Floor(0.5+phase))
		assert.InDelta(t, want, s, 1e-12)
	}
}

func TestGenerateTriangleFormula(t *testing.T) {
	freq, dur := 440.0, 0.01
	buf := Generate(freq, dur, WaveTriangle)
	n := len(buf)
	require.Greater(t, n, 1)
	for i, s := range buf {
		phase := freq * (dur * float64(i) / float64(n-1))
		want := 2*math.Abs(2*(phase-math.Floor(0.5+phase))) - 1
		assert.InDelta(t, want, s, 1e-12)
	}
}

func TestGenerateUnknownKindFallsBackToSine(t *testing.T) {
	sine := Generate(440, 0.1, WaveSine)
	weird := Generate(440, 0.1, Waveform("wobble"))
	assert.Equal(t, sine, weird)
}

func TestGenerateSingleSample(t *testing.T) {
	// round(0.9) = 1 sample, time base collapses to t=0
	dur := 0.9 / SampleRate
	buf := Generate(440, dur, WaveSine)
	require.Len(t, buf, 1)
	assert.InDelta(t, 0, buf[0], 1e-12)
}

func TestSampleCount(t *testing.T) {
	assert.Equal(t, 0, SampleCount(0))
	assert.Equal(t, 0, SampleCount(-2))
	assert.Equal(t, 44100, SampleCount(1.0))
	assert.Equal(t, 22050, SampleCount(0.5))
}
