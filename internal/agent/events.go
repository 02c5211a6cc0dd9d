package agent

import (
	"net/http"
	"sync"

	log "log/slog"

	"github.com/gin-gonic/gin"
	ws "github.com/gorilla/websocket"

	"jarvis/internal/state"
)

// RouteEvent is pushed to every connected debug client after a routing
// decision, so a dashboard can watch the chain live.
type RouteEvent struct {
	Text       string      `json:"text"`
	Plan       *state.Plan `json:"plan"`
	Confidence float64     `json:"confidence,omitempty"`
	Fallback   string      `json:"fallback,omitempty"`
}

// Hub fans routing decisions out to connected websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*ws.Conn]struct{}
}

var upgrader = ws.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

func NewHub() *Hub {
	return &Hub{clients: map[*ws.Conn]struct{}{}}
}

func (h *Hub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("Debug ws upgrade failed", "err", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	log.Debug("Debug client connected", "remote", conn.RemoteAddr())

	// clients only listen; the read loop exists to notice disconnects
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(conn)
				return
			}
		}
	}()
}

// Broadcast writes under mu for its whole duration: gorilla connections allow
// only one concurrent writer, and routing requests broadcast from their own
// goroutines.
func (h *Hub) Broadcast(ev RouteEvent) {
	h.mu.Lock()
	var dead []*ws.Conn
	for conn := range h.clients {
		if err := conn.WriteJSON(ev); err != nil {
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		delete(h.clients, conn)
	}
	h.mu.Unlock()

	for _, conn := range dead {
		conn.Close()
	}
}

func (h *Hub) drop(conn *ws.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}
