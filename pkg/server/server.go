// Package server exposes the synthesis engine over HTTP and
// WebSocket.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/anthropics/keytone/pkg/midi"
	"github.com/anthropics/keytone/pkg/store"
	"github.com/anthropics/keytone/pkg/synth"
	"github.com/anthropics/keytone/pkg/wav"
)

// Version is reported by the banner endpoint.
const Version = "1.0.0"

// maxUploadBytes bounds MIDI uploads.
const maxUploadBytes = 8 << 20

// NoteRequest is the JSON body of a synthesis request.
type NoteRequest struct {
	Note     string  `json:"note"`
	Velocity float64 `json:"velocity"`
	Duration float64 `json:"duration"`
}

// defaults fills in the reference request defaults for zero fields.
func (r *NoteRequest) defaults() {
	if r.Velocity == 0 {
		r.Velocity = 0.8
	}
	if r.Duration == 0 {
		r.Duration = 1.0
	}
}

// Server wires the synthesizer, config store, file store, and event
// source behind an http.Handler.
type Server struct {
	synth  *synth.Synthesizer
	config *synth.Store
	files  *store.Store
	events midi.EventSource
	logger *log.Logger
	mux    *http.ServeMux
}

// New creates a server with a permissive synthesizer, the default
// config, and an empty file store.
func New(logger *log.Logger) *Server {
	s := &Server{
		synth:  &synth.Synthesizer{},
		config: synth.NewStore(synth.DefaultConfig()),
		files:  store.New(),
		events: midi.StubSource{},
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /synthesize", s.handleSynthesize)
	mux.HandleFunc("GET /audio/{id}", s.handleAudio)
	mux.HandleFunc("GET /config", s.handleGetConfig)
	mux.HandleFunc("POST /config", s.handleSetConfig)
	mux.HandleFunc("POST /midi/upload", s.handleMIDIUpload)
	mux.HandleFunc("GET /midi/{id}/events", s.handleMIDIEvents)
	mux.HandleFunc("GET /ws/realtime", s.handleRealtime)
	mux.HandleFunc("GET /health", s.handleHealth)
	s.mux = mux
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Config returns the server's current-config store.
func (s *Server) Config() *synth.Store {
	return s.config
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":    "Piano Synthesizer Backend",
		"version":    Version,
		"components": []string{"synthesis", "midi_events", "file_store"},
	})
}

// renderNote synthesizes one request against the current config and
// returns the WAV bytes.
func (s *Server) renderNote(req NoteRequest) ([]byte, error) {
	req.defaults()
	res, err := s.synth.Synthesize(req.Note, req.Velocity, req.Duration, s.config.Get())
	if err != nil {
		return nil, err
	}
	return wav.Encode(res.PCM, res.SampleRate), nil
}

func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}

	data, err := s.renderNote(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	id := s.files.PutAudio(req.Note+".wav", data)
	s.logger.Printf("synthesized %q -> %s (%d bytes)", req.Note, id, len(data))
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"file_id": id,
		"note":    req.Note,
		"size":    len(data),
	})
}

func (s *Server) handleAudio(w http.ResponseWriter, r *http.Request) {
	f, ok := s.files.GetAudio(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("audio file not found"))
		return
	}
	w.Header().Set("Content-Type", "audio/wav")
	w.Write(f.Data)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.config.Get())
}

func (s *Server) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	cfg := s.config.Get()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding config: %w", err))
		return
	}
	s.config.Set(cfg)
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"config": cfg,
	})
}

// eventJSON is the wire shape of one extracted event, with the note
// number translated to a name.
type eventJSON struct {
	Timestamp float64 `json:"timestamp"`
	Note      string  `json:"note"`
	Velocity  int     `json:"velocity"`
	Type      string  `json:"type"`
}

func toEventJSON(events []midi.Event) []eventJSON {
	out := make([]eventJSON, len(events))
	for i, e := range events {
		out[i] = eventJSON{
			Timestamp: e.Timestamp,
			Note:      midi.NoteName(e.Note),
			Velocity:  e.Velocity,
			Type:      string(e.Kind),
		}
	}
	return out
}

func (s *Server) handleMIDIUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("reading upload: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("reading upload: %w", err))
		return
	}

	id := s.files.PutMIDI(header.Filename, data)
	events := s.events.Events(data)
	s.logger.Printf("stored MIDI %q as %s (%d events)", header.Filename, id, len(events))

	sample := events
	if len(sample) > 10 {
		sample = sample[:10]
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "success",
		"file_id":      id,
		"filename":     header.Filename,
		"events_count": len(events),
		"events":       toEventJSON(sample),
	})
}

func (s *Server) handleMIDIEvents(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	f, ok := s.files.GetMIDI(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("file not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"file_id": id,
		"events":  toEventJSON(s.events.Events(f.Data)),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"components": map[string]string{
			"synthesis":   "operational",
			"midi_events": "operational",
			"file_store":  "operational",
		},
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]any{
		"status": "error",
		"detail": err.Error(),
	})
}
