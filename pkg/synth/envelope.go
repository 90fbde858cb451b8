package synth

// ApplyEnvelope shapes a waveform buffer with the ADSR envelope from
// cfg and scales it by cfg.Volume, returning a new buffer.
//
// Segment lengths are truncated from seconds to whole samples and are
// not rescaled to fit the buffer: segments are written over a
// ones-filled envelope in the fixed order attack, decay, sustain,
// release, each clipped to the buffer bounds. Overlaps resolve in
// favor of the later segment; indices no segment covers keep the 1.0
// fill. The release ramp occupies the last releaseN indices, so it
// always ends at 0 even when clipped.
func ApplyEnvelope(samples []float64, cfg Config) []float64 {
	total := len(samples)
	env := make([]float64, total)
	for i := range env {
		env[i] = 1
	}

	attackN := int(cfg.Attack * SampleRate)
	decayN := int(cfg.Decay * SampleRate)
	releaseN := int(cfg.Release * SampleRate)

	// Attack: 0 -> 1
	if attackN > 0 {
		for i := 0; i < attackN && i < total; i++ {
			env[i] = ramp(0, 1, attackN, i)
		}
	}

	// Decay: 1 -> sustain, only when it fits before the buffer end
	if decayN > 0 && attackN+decayN < total {
		for j := 0; j < decayN; j++ {
			if i := attackN + j; i >= 0 && i < total {
				env[i] = ramp(1, cfg.Sustain, decayN, j)
			}
		}
	}

	// Sustain: constant between decay end and release start
	sustainStart := attackN + decayN
	sustainEnd := total - releaseN
	for i := max(sustainStart, 0); i < min(sustainEnd, total); i++ {
		env[i] = cfg.Sustain
	}

	// Release: sustain -> 0 over the final releaseN indices
	if releaseN > 0 {
		start := total - releaseN
		for i := max(start, 0); i < total; i++ {
			env[i] = ramp(cfg.Sustain, 0, releaseN, i-start)
		}
	}

	out := make([]float64, total)
	for i := range out {
		out[i] = samples[i] * env[i] * cfg.Volume
	}
	return out
}

// ramp returns point j of an n-point linear ramp from start to end,
// endpoints inclusive. A single-point ramp is just the start value.
func ramp(start, end float64, n, j int) float64 {
	if n <= 1 {
		return start
	}
	return start + (end-start)*float64(j)/float64(n-1)
}
