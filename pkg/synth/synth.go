package synth

import "errors"

// ErrInvalidNoteSpec is returned by a strict Synthesizer when a note
// spec does not name a known pitch class.
var ErrInvalidNoteSpec = errors.New("synth: invalid note spec")

// Result is one fully rendered note: mono 16-bit PCM at SampleRate,
// plus the pitch resolution that produced it. The buffer is owned by
// the caller; identical requests always render identical buffers.
type Result struct {
	PCM           []int16
	SampleRate    int
	Channels      int
	BitsPerSample int
	Frequency     float64
	Defaulted     bool
}

// Synthesizer renders single notes. The zero value is permissive:
// unknown notes fall back to 440 Hz, unknown waveforms to sine, and
// non-positive durations to an empty buffer. Strict mode instead
// rejects unresolvable note specs. Safe for concurrent use.
type Synthesizer struct {
	// Strict makes Synthesize fail with ErrInvalidNoteSpec instead
	// of defaulting the frequency.
	Strict bool
}

// Synthesize renders one note: resolve pitch, generate the waveform,
// shape it with the ADSR envelope, scale by velocity, and quantize.
// Velocity is not clamped; values above 1 overdrive the buffer and
// clip at quantization.
func (sy *Synthesizer) Synthesize(note string, velocity, duration float64, cfg Config) (Result, error) {
	res := Resolve(note)
	if res.Defaulted && sy.Strict {
		return Result{}, ErrInvalidNoteSpec
	}

	samples := Generate(res.Frequency, duration, cfg.Waveform)
	samples = ApplyEnvelope(samples, cfg)
	for i := range samples {
		samples[i] *= velocity
	}

	return Result{
		PCM:           Quantize(samples),
		SampleRate:    SampleRate,
		Channels:      1,
		BitsPerSample: 16,
		Frequency:     res.Frequency,
		Defaulted:     res.Defaulted,
	}, nil
}
