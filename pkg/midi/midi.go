// Package midi defines the note-event boundary between event
// extraction and synthesis.
package midi

import "fmt"

// EventKind distinguishes note-on from note-off events.
type EventKind string

const (
	NoteOn  EventKind = "note_on"
	NoteOff EventKind = "note_off"
)

// Event is one timestamped note event. Note is a MIDI note number
// (0-127), Velocity the MIDI velocity (0-127).
type Event struct {
	Timestamp float64   `json:"timestamp"`
	Note      int       `json:"note"`
	Velocity  int       `json:"velocity"`
	Kind      EventKind `json:"type"`
}

// noteNames indexes pitch class names by semitone within an octave.
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName converts a MIDI note number to a spec name like "C#4".
// MIDI note 60 is C4.
func NoteName(note int) string {
	octave := note/12 - 1
	return fmt.Sprintf("%s%d", noteNames[((note%12)+12)%12], octave)
}

// EventSource produces a finite ordered sequence of note events from
// raw file data.
type EventSource interface {
	Events(data []byte) []Event
}

// StubSource is a placeholder extractor. It ignores the file contents
// and emits a fixed ascending demo sequence: ten notes from middle C,
// each held for 0.4s at half-second spacing.
type StubSource struct{}

// Events implements EventSource.
func (StubSource) Events(_ []byte) []Event {
	events := make([]Event, 0, 20)
	for i := 0; i < 10; i++ {
		events = append(events,
			Event{Timestamp: float64(i) * 0.5, Note: 60 + i, Velocity: 100, Kind: NoteOn},
			Event{Timestamp: float64(i)*0.5 + 0.4, Note: 60 + i, Velocity: 0, Kind: NoteOff},
		)
	}
	return events
}
