package synth

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.005, cfg.Attack)
	assert.Equal(t, 0.1, cfg.Decay)
	assert.Equal(t, 0.3, cfg.Sustain)
	assert.Equal(t, 1.0, cfg.Release)
	assert.Equal(t, WaveSine, cfg.Waveform)
	assert.Equal(t, 0.5, cfg.Volume)
}

func TestStoreGetSet(t *testing.T) {
	s := NewStore(DefaultConfig())
	assert.Equal(t, DefaultConfig(), s.Get())

	cfg := DefaultConfig()
	cfg.Waveform = WaveSquare
	cfg.Volume = 0.9
	s.Set(cfg)
	assert.Equal(t, cfg, s.Get())
}

func TestStoreSnapshotsAreConsistent(t *testing.T) {
	// Readers must never observe a torn config: every read is exactly
	// one of the two values being written.
	a := Config{Attack: 1, Decay: 1, Sustain: 1, Release: 1, Waveform: WaveSine, Volume: 1}
	b := Config{Attack: 2, Decay: 2, Sustain: 2, Release: 2, Waveform: WaveSquare, Volume: 2}
	s := NewStore(a)

	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			if i%2 == 0 {
				s.Set(a)
			} else {
				s.Set(b)
			}
		}
		close(done)
	}()

	for {
		select {
		case <-done:
			wg.Wait()
			return
		default:
			got := s.Get()
			require.True(t, got == a || got == b, "observed torn config: %+v", got)
		}
	}
}
