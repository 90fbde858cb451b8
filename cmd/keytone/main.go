package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anthropics/keytone/pkg/playback"
	"github.com/anthropics/keytone/pkg/synth"
	"github.com/anthropics/keytone/pkg/tui"
	"github.com/anthropics/keytone/pkg/wav"
)

func main() {
	note := flag.String("note", "", "Render a single note (e.g. C#4) instead of starting the piano")
	dur := flag.Float64("dur", 1.0, "Note duration in seconds")
	vel := flag.Float64("vel", 0.8, "Note velocity")
	wave := flag.String("wave", "sine", "Waveform: sine, square, sawtooth, triangle")
	out := flag.String("out", "", "Write the rendered note to this WAV file")
	play := flag.Bool("play", false, "Play the rendered note instead of writing a file")
	flag.Parse()

	if *note != "" {
		if err := renderNote(*note, *vel, *dur, *wave, *out, *play); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Interactive piano
	device, err := playback.NewDevice(synth.SampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
		device = nil
	}

	model := tui.NewModel(device)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func renderNote(note string, vel, dur float64, wave, out string, play bool) error {
	cfg := synth.DefaultConfig()
	cfg.Waveform = synth.Waveform(wave)

	syn := &synth.Synthesizer{}
	res, err := syn.Synthesize(note, vel, dur, cfg)
	if err != nil {
		return err
	}
	if res.Defaulted {
		fmt.Fprintf(os.Stderr, "Warning: unknown pitch class in %q, using 440 Hz base\n", note)
	}

	if play {
		device, err := playback.NewDevice(res.SampleRate)
		if err != nil {
			return fmt.Errorf("opening audio device: %w", err)
		}
		return device.Play(res.PCM)
	}

	if out == "" {
		out = note + ".wav"
	}
	data := wav.Encode(res.PCM, res.SampleRate)
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Wrote %s (%d samples, %.2f Hz)\n", out, len(res.PCM), res.Frequency)
	return nil
}
