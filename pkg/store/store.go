// Package store keeps uploaded MIDI files and rendered audio in
// memory for the lifetime of the process.
package store

import (
	"fmt"
	"sync"
)

// File is one stored blob.
type File struct {
	Filename string
	Data     []byte
}

// Size returns the blob length in bytes.
func (f File) Size() int {
	return len(f.Data)
}

// Store is an in-memory file manager with sequential IDs per kind
// ("midi_0", "audio_0", ...). Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	midi  map[string]File
	audio map[string]File
}

// New creates an empty store.
func New() *Store {
	return &Store{
		midi:  make(map[string]File),
		audio: make(map[string]File),
	}
}

// PutMIDI stores MIDI file data and returns its ID.
func (s *Store) PutMIDI(filename string, data []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("midi_%d", len(s.midi))
	s.midi[id] = File{Filename: filename, Data: data}
	return id
}

// GetMIDI retrieves a stored MIDI file.
func (s *Store) GetMIDI(id string) (File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.midi[id]
	return f, ok
}

// PutAudio stores rendered audio and returns its ID.
func (s *Store) PutAudio(filename string, data []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("audio_%d", len(s.audio))
	s.audio[id] = File{Filename: filename, Data: data}
	return id
}

// GetAudio retrieves stored audio.
func (s *Store) GetAudio(id string) (File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.audio[id]
	return f, ok
}
