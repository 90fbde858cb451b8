// Package tui implements the interactive terminal piano
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ebitengine/oto/v3"

	"github.com/anthropics/keytone/pkg/playback"
	"github.com/anthropics/keytone/pkg/synth"
)

// keyToSemitone maps the home-row piano layout to semitones above C.
// Bottom row is the white keys, the row above the black keys.
var keyToSemitone = map[string]int{
	"z": 0, "s": 1, "x": 2, "d": 3, "c": 4, "v": 5,
	"g": 6, "b": 7, "h": 8, "n": 9, "j": 10, "m": 11,
}

var pitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Model is the piano TUI model.
type Model struct {
	Synth  *synth.Synthesizer
	Device *playback.Device
	Config synth.Config

	Octave   int
	Velocity float64
	Duration float64

	// Last played note
	LastNote string
	LastFreq float64

	StatusMsg string

	player *oto.Player

	Width  int
	Height int
}

// NewModel creates a piano model. device may be nil when no audio
// output is available; notes are still synthesized silently.
func NewModel(device *playback.Device) Model {
	return Model{
		Synth:    &synth.Synthesizer{},
		Device:   device,
		Config:   synth.DefaultConfig(),
		Octave:   4,
		Velocity: 0.8,
		Duration: 1.0,
		Width:    100,
		Height:   24,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// playedMsg reports a started note back to the update loop.
type playedMsg struct {
	note   string
	freq   float64
	player *oto.Player
	err    error
}

// playCmd synthesizes a note and starts playback off the UI goroutine.
func (m Model) playCmd(note string) tea.Cmd {
	syn, dev := m.Synth, m.Device
	vel, dur, cfg := m.Velocity, m.Duration, m.Config
	return func() tea.Msg {
		res, err := syn.Synthesize(note, vel, dur, cfg)
		if err != nil {
			return playedMsg{note: note, err: err}
		}
		msg := playedMsg{note: note, freq: res.Frequency}
		if dev != nil {
			msg.player = dev.Start(res.PCM)
		}
		return msg
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case playedMsg:
		if msg.err != nil {
			m.StatusMsg = fmt.Sprintf("error: %v", msg.err)
			return m, nil
		}
		// Monophonic: a new note cuts off the previous one
		if m.player != nil {
			m.player.Close()
		}
		m.player = msg.player
		m.LastNote = msg.note
		m.LastFreq = msg.freq
		m.StatusMsg = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if semi, ok := keyToSemitone[key]; ok {
		note := fmt.Sprintf("%s%d", pitchClasses[semi], m.Octave)
		return m, m.playCmd(note)
	}

	switch key {
	case "ctrl+c", "esc":
		if m.player != nil {
			m.player.Close()
		}
		return m, tea.Quit

	case "q":
		if m.Octave > 0 {
			m.Octave--
		}
	case "e":
		if m.Octave < 9 {
			m.Octave++
		}

	case "w":
		m.Config.Waveform = nextWaveform(m.Config.Waveform)

	case "1":
		m.Config.Attack = clampLow(m.Config.Attack - 0.005)
	case "2":
		m.Config.Attack += 0.005
	case "3":
		m.Config.Decay = clampLow(m.Config.Decay - 0.02)
	case "4":
		m.Config.Decay += 0.02
	case "5":
		m.Config.Sustain = clampUnit(m.Config.Sustain - 0.05)
	case "6":
		m.Config.Sustain = clampUnit(m.Config.Sustain + 0.05)
	case "7":
		m.Config.Release = clampLow(m.Config.Release - 0.1)
	case "8":
		m.Config.Release += 0.1

	case "-":
		m.Config.Volume = clampUnit(m.Config.Volume - 0.05)
	case "+", "=":
		m.Config.Volume = clampUnit(m.Config.Volume + 0.05)

	case ",":
		if m.Duration > 0.1 {
			m.Duration -= 0.1
		}
	case ".":
		m.Duration += 0.1

	case "<":
		m.Velocity = clampLow(m.Velocity - 0.05)
	case ">":
		m.Velocity += 0.05
	}

	return m, nil
}

func nextWaveform(w synth.Waveform) synth.Waveform {
	for i, kind := range synth.Waveforms {
		if kind == w {
			return synth.Waveforms[(i+1)%len(synth.Waveforms)]
		}
	}
	return synth.WaveSine
}

func clampLow(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	whiteKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("15")).
			Padding(0, 1)

	blackKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("0")).
			Padding(0, 1)

	activeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("keytone"))
	b.WriteString("\n\n")

	b.WriteString(m.renderKeyboard())
	b.WriteString("\n\n")

	b.WriteString(m.renderConfig())
	b.WriteString("\n")

	if m.LastNote != "" {
		b.WriteString(labelStyle.Render("last ") +
			valueStyle.Render(fmt.Sprintf("%s (%.2f Hz)", m.LastNote, m.LastFreq)))
		b.WriteString("\n")
	}
	if m.StatusMsg != "" {
		b.WriteString(statusStyle.Render(m.StatusMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render(
		"z..m play  q/e octave  w waveform  1-8 adsr  +/- volume  ,/. duration  </> velocity  esc quit"))

	return b.String()
}

// renderKeyboard draws two rows of keys, black keys above white.
func (m Model) renderKeyboard() string {
	type keycap struct {
		key  string
		semi int
	}
	blacks := []keycap{{"s", 1}, {"d", 3}, {"g", 6}, {"h", 8}, {"j", 10}}
	whites := []keycap{{"z", 0}, {"x", 2}, {"c", 4}, {"v", 5}, {"b", 7}, {"n", 9}, {"m", 11}}

	active := ""
	if m.LastNote != "" {
		active = strings.TrimSuffix(m.LastNote, fmt.Sprintf("%d", m.Octave))
	}

	var top, bottom []string
	top = append(top, "  ")
	for _, k := range blacks {
		style := blackKeyStyle
		if pitchClasses[k.semi] == active {
			style = activeKeyStyle
		}
		top = append(top, style.Render(fmt.Sprintf("%s %s", k.key, pitchClasses[k.semi])))
	}
	for _, k := range whites {
		style := whiteKeyStyle
		if pitchClasses[k.semi] == active {
			style = activeKeyStyle
		}
		bottom = append(bottom, style.Render(fmt.Sprintf("%s %s", k.key, pitchClasses[k.semi])))
	}

	return strings.Join(top, " ") + "\n" + strings.Join(bottom, " ")
}

func (m Model) renderConfig() string {
	c := m.Config
	parts := []string{
		labelStyle.Render("oct ") + valueStyle.Render(fmt.Sprintf("%d", m.Octave)),
		labelStyle.Render("wave ") + valueStyle.Render(string(c.Waveform)),
		labelStyle.Render("a ") + valueStyle.Render(fmt.Sprintf("%.3f", c.Attack)),
		labelStyle.Render("d ") + valueStyle.Render(fmt.Sprintf("%.2f", c.Decay)),
		labelStyle.Render("s ") + valueStyle.Render(fmt.Sprintf("%.2f", c.Sustain)),
		labelStyle.Render("r ") + valueStyle.Render(fmt.Sprintf("%.2f", c.Release)),
		labelStyle.Render("vol ") + valueStyle.Render(fmt.Sprintf("%.2f", c.Volume)),
		labelStyle.Render("vel ") + valueStyle.Render(fmt.Sprintf("%.2f", m.Velocity)),
		labelStyle.Render("dur ") + valueStyle.Render(fmt.Sprintf("%.1fs", m.Duration)),
	}
	return strings.Join(parts, "  ")
}
