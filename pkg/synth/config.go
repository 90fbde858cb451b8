package synth

import "sync/atomic"

// Config holds the timbre and envelope parameters for one synthesis
// call. Attack, decay and release are seconds; sustain and volume are
// levels in [0, 1]. Values are not validated; degenerate settings
// produce degenerate envelopes rather than errors.
type Config struct {
	Attack   float64  `json:"attack"`
	Decay    float64  `json:"decay"`
	Sustain  float64  `json:"sustain"`
	Release  float64  `json:"release"`
	Waveform Waveform `json:"waveform"`
	Volume   float64  `json:"volume"`
}

// DefaultConfig returns the stock piano-ish voicing.
func DefaultConfig() Config {
	return Config{
		Attack:   0.005,
		Decay:    0.1,
		Sustain:  0.3,
		Release:  1.0,
		Waveform: WaveSine,
		Volume:   0.5,
	}
}

// Store holds a process-wide current config for callers that want an
// implicit default. Updates swap an immutable snapshot, so readers
// always observe a consistent value; concurrent writers are
// last-writer-wins.
type Store struct {
	cur atomic.Pointer[Config]
}

// NewStore creates a store seeded with cfg.
func NewStore(cfg Config) *Store {
	s := &Store{}
	s.Set(cfg)
	return s
}

// Get returns the current config snapshot.
func (s *Store) Get() Config {
	return *s.cur.Load()
}

// Set replaces the current config.
func (s *Store) Set(cfg Config) {
	s.cur.Store(&cfg)
}
