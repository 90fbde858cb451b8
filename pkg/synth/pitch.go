// Package synth implements the note synthesis engine: pitch
// resolution, waveform generation, ADSR envelope shaping, and
// quantization to 16-bit PCM.
package synth

import "math"

// DefaultFrequency is used when a note spec cannot be resolved.
const DefaultFrequency = 440.0

// baseFrequencies maps the 12 chromatic pitch classes (sharps only)
// to their octave-4 frequencies, A4 = 440 Hz equal temperament.
var baseFrequencies = map[string]float64{
	"C":  261.63,
	"C#": 277.18,
	"D":  293.66,
	"D#": 311.13,
	"E":  329.63,
	"F":  349.23,
	"F#": 369.99,
	"G":  392.00,
	"G#": 415.30,
	"A":  440.00,
	"A#": 466.16,
	"B":  493.88,
}

// Resolution is the outcome of resolving a note spec. Defaulted is
// set when the pitch class was not recognized and the frequency fell
// back to DefaultFrequency scaled by the requested octave.
type Resolution struct {
	Frequency  float64
	PitchClass string
	Octave     int
	Defaulted  bool
}

// Resolve parses a note spec like "C", "C#4" or "A0" and returns its
// frequency. A trailing decimal digit is the octave; without one the
// octave defaults to 4. Unknown pitch classes resolve to 440 Hz
// rather than failing.
func Resolve(noteSpec string) Resolution {
	name := noteSpec
	octave := 4
	if n := len(noteSpec); n > 0 {
		if c := noteSpec[n-1]; c >= '0' && c <= '9' {
			name = noteSpec[:n-1]
			octave = int(c - '0')
		}
	}

	base, ok := baseFrequencies[name]
	if !ok {
		base = DefaultFrequency
	}

	return Resolution{
		Frequency:  base * math.Pow(2, float64(octave-4)),
		PitchClass: name,
		Octave:     octave,
		Defaulted:  !ok,
	}
}
