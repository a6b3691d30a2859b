package engine

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"gomahjong/internal/mjlog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Spectator fans a round's events out to any number of connected
// websocket clients watching that round, dropping events for a slow
// reader rather than letting it back-pressure the round.
type Spectator struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan Event
}

// NewSpectator builds an empty fan-out feed.
func NewSpectator() *Spectator {
	return &Spectator{clients: make(map[*websocket.Conn]chan Event)}
}

// ServeHTTP upgrades the incoming request to a websocket connection and
// registers it to receive every subsequent Broadcast call.
func (s *Spectator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		mjlog.Warn("spectator: upgrade failed", "err", err)
		return
	}

	ch := make(chan Event, 32)
	s.mu.Lock()
	s.clients[conn] = ch
	s.mu.Unlock()

	go s.pump(conn, ch)
}

func (s *Spectator) pump(conn *websocket.Conn, ch chan Event) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()
	for ev := range ch {
		payload, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// Broadcast sends ev to every connected client, dropping it for any
// client whose outgoing buffer is already full.
func (s *Spectator) Broadcast(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn, ch := range s.clients {
		select {
		case ch <- ev:
		default:
			mjlog.Warn("spectator: dropping event for slow client", "remote", conn.RemoteAddr())
		}
	}
}

// Close disconnects every client and stops their pumps.
func (s *Spectator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn, ch := range s.clients {
		close(ch)
		delete(s.clients, conn)
	}
}
