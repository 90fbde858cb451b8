package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The reference backend accepts any origin.
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsMessage is an inbound realtime message. Only "note" messages are
// recognized; anything else is ignored.
type wsMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// handleRealtime serves the realtime synthesis socket: each "note"
// message is answered with an "audio" acknowledgment followed by a
// binary frame carrying the WAV bytes.
func (s *Server) handleRealtime(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("websocket read: %v", err)
			}
			return
		}
		if msg.Type != "note" {
			continue
		}

		var req NoteRequest
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &req); err != nil {
				s.logger.Printf("websocket note decode: %v", err)
				continue
			}
		}

		data, err := s.renderNote(req)
		if err != nil {
			s.logger.Printf("websocket synthesize: %v", err)
			continue
		}

		ack := map[string]any{
			"type": "audio",
			"note": req.Note,
			"size": len(data),
		}
		if err := conn.WriteJSON(ack); err != nil {
			return
		}
		if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			return
		}
	}
}
