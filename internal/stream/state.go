package stream

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// writeWait bounds every client write so a stalled reader cannot hold up
// the broadcaster.
const writeWait = 200 * time.Millisecond

// State fans animation frames out to WebSocket clients and answers health
// probes. The animation loop never blocks on a slow client; a write that
// misses its deadline drops the client.
type State struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool

	leds     int
	hardware bool
	frameID  uint64
	start    time.Time
}

func NewState(leds int) *State {
	return &State{
		clients: map[*websocket.Conn]bool{},
		leds:    leds,
		start:   time.Now(),
	}
}

// SetHardware records the boot-time sensor probe outcome for telemetry.
func (s *State) SetHardware(ok bool) {
	s.mu.Lock()
	s.hardware = ok
	s.mu.Unlock()
}

type frameMsg struct {
	Type     string  `json:"type"`
	ID       uint64  `json:"id"`
	Tilt     float64 `json:"tilt"`
	Pos      float64 `json:"pos"`
	Hardware bool    `json:"hardware"`
	RGB      []byte  `json:"rgb"` // base64 in JSON
}

// Broadcast sends one frame to every connected client.
func (s *State) Broadcast(rgb []byte, tilt, pos float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frameID++
	if len(s.clients) == 0 {
		return
	}
	msg := frameMsg{
		Type:     "frame",
		ID:       s.frameID,
		Tilt:     tilt,
		Pos:      pos,
		Hardware: s.hardware,
		RGB:      rgb,
	}
	for conn := range s.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(&msg); err != nil {
			delete(s.clients, conn)
			_ = conn.Close()
		}
	}
}

// HandleFrames upgrades the connection and registers it for frame pushes.
func (s *State) HandleFrames(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	n := len(s.clients)
	s.mu.Unlock()
	log.Debug().Int("clients", n).Msg("frame stream client connected")

	// Drain and drop on error; clients only listen.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.mu.Lock()
				delete(s.clients, conn)
				s.mu.Unlock()
				_ = conn.Close()
				return
			}
		}
	}()
}

// HandleHealth reports liveness and basic telemetry.
func (s *State) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := map[string]any{
		"status":   "ok",
		"uptime_s": int(time.Since(s.start).Seconds()),
		"leds":     s.leds,
		"hardware": s.hardware,
		"frames":   s.frameID,
	}
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
