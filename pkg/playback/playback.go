// Package playback plays rendered PCM buffers through the default
// audio device.
package playback

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Device owns the audio context. Create one per process.
type Device struct {
	ctx        *oto.Context
	sampleRate int
}

// NewDevice opens the default output for mono 16-bit playback.
func NewDevice(sampleRate int) (*Device, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &Device{ctx: ctx, sampleRate: sampleRate}, nil
}

// Start begins playback of a complete PCM buffer and returns the
// player without waiting. The caller must Close it.
func (d *Device) Start(pcm []int16) *oto.Player {
	buf := make([]byte, len(pcm)*2)
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}

	p := d.ctx.NewPlayer(bytes.NewReader(buf))
	p.Play()
	return p
}

// Play plays a complete PCM buffer and blocks until it drains.
func (d *Device) Play(pcm []int16) error {
	p := d.Start(pcm)
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return p.Close()
}
