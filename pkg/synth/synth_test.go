package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeA4(t *testing.T) {
	var sy Synthesizer
	res, err := sy.Synthesize("A4", 1.0, 1.0, DefaultConfig())
	require.NoError(t, err)

	assert.Len(t, res.PCM, 44100)
	assert.Equal(t, 44100, res.SampleRate)
	assert.Equal(t, 1, res.Channels)
	assert.Equal(t, 16, res.BitsPerSample)
	assert.InDelta(t, 440.0, res.Frequency, 1e-9)
	assert.False(t, res.Defaulted)

	// Attack ramp starts at zero
	assert.Equal(t, int16(0), res.PCM[0])
}

func TestSynthesizeAttackRampRises(t *testing.T) {
	// Config with only an attack so the ramp is observable in the
	// output amplitude over the first 0.005s (220 samples)
	cfg := Config{Attack: 0.005, Sustain: 1, Waveform: WaveSine, Volume: 1}
	var sy Synthesizer
	res, err := sy.Synthesize("A4", 1.0, 1.0, cfg)
	require.NoError(t, err)

	raw := Generate(440.0, 1.0, WaveSine)
	attackN := 220
	for i := 0; i < attackN; i++ {
		want := raw[i] * float64(i) / float64(attackN-1)
		assert.InDelta(t, want*32767, float64(res.PCM[i]), 1.0)
	}
}

func TestSynthesizeUnknownNote(t *testing.T) {
	// "Z9" falls back to a 440 base scaled by 2^5
	var sy Synthesizer
	res, err := sy.Synthesize("Z9", 0.8, 0.5, DefaultConfig())
	require.NoError(t, err)

	assert.Len(t, res.PCM, 22050)
	assert.InDelta(t, 14080.0, res.Frequency, 1e-9)
	assert.True(t, res.Defaulted)
}

func TestSynthesizeDegenerateDuration(t *testing.T) {
	var sy Synthesizer

	// Attack alone exceeds the whole buffer; must clamp, not panic
	res, err := sy.Synthesize("A4", 1.0, 0.001, DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, res.PCM, 44)

	res, err = sy.Synthesize("A4", 1.0, 0, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, res.PCM)

	res, err = sy.Synthesize("A4", 1.0, -5, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, res.PCM)
}

func TestSynthesizeIdempotent(t *testing.T) {
	var sy Synthesizer
	first, err := sy.Synthesize("C#3", 0.7, 0.25, DefaultConfig())
	require.NoError(t, err)
	second, err := sy.Synthesize("C#3", 0.7, 0.25, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, first.PCM, second.PCM)
}

func TestSynthesizeStrictMode(t *testing.T) {
	sy := Synthesizer{Strict: true}

	_, err := sy.Synthesize("Z4", 1.0, 0.1, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidNoteSpec)

	res, err := sy.Synthesize("A4", 1.0, 0.1, DefaultConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, res.PCM)
}

func TestSynthesizeVelocityOverdrive(t *testing.T) {
	// Velocity is not clamped: values above 1 overdrive the signal
	// and clip at quantization instead of wrapping
	cfg := Config{Sustain: 1, Waveform: WaveSine, Volume: 1}
	var sy Synthesizer
	res, err := sy.Synthesize("A4", 10.0, 0.01, cfg)
	require.NoError(t, err)

	var sawMax, sawMin bool
	for _, s := range res.PCM {
		require.GreaterOrEqual(t, int(s), -32768)
		require.LessOrEqual(t, int(s), 32767)
		if s == 32767 {
			sawMax = true
		}
		if s == -32768 {
			sawMin = true
		}
	}
	assert.True(t, sawMax, "expected positive clipping")
	assert.True(t, sawMin, "expected negative clipping")
}

func TestSynthesizeVelocityScales(t *testing.T) {
	cfg := Config{Sustain: 1, Waveform: WaveSine, Volume: 1}
	var sy Synthesizer

	full, err := sy.Synthesize("A4", 1.0, 0.01, cfg)
	require.NoError(t, err)
	half, err := sy.Synthesize("A4", 0.5, 0.01, cfg)
	require.NoError(t, err)

	for i := range full.PCM {
		require.InDelta(t, float64(full.PCM[i])/2, float64(half.PCM[i]), 1.0)
	}
}

func TestSynthesizeConcurrent(t *testing.T) {
	// The engine is pure; concurrent calls with their own config
	// snapshots must not interfere
	var sy Synthesizer
	want, err := sy.Synthesize("E4", 0.8, 0.1, DefaultConfig())
	require.NoError(t, err)

	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func() {
			res, err := sy.Synthesize("E4", 0.8, 0.1, DefaultConfig())
			if err == nil && !equalPCM(res.PCM, want.PCM) {
				errs <- assert.AnError
				return
			}
			errs <- err
		}()
	}
	for i := 0; i < 16; i++ {
		require.NoError(t, <-errs)
	}
}

func equalPCM(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
