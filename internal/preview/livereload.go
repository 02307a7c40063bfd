package preview

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadMessage is the outgoing WebSocket message format.
type reloadMessage struct {
	Type string `json:"type"` // "reload" or "ready"
}

// hub tracks connected livereload clients by connection id.
type hub struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

func newHub() *hub {
	return &hub{conns: make(map[string]*websocket.Conn)}
}

func (h *hub) add(conn *websocket.Conn) string {
	id := uuid.NewString()
	h.mu.Lock()
	h.conns[id] = conn
	h.mu.Unlock()
	return id
}

func (h *hub) remove(id string) {
	h.mu.Lock()
	delete(h.conns, id)
	h.mu.Unlock()
}

// count reports the number of connected clients.
func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// broadcast sends a typed message to every connected client. Clients that
// fail to take the write are dropped.
func (h *hub) broadcast(msgType string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.conns {
		if err := conn.WriteJSON(reloadMessage{Type: msgType}); err != nil {
			log.Printf("preview: websocket write to %s: %v", id, err)
			conn.Close()
			delete(h.conns, id)
		}
	}
}

// closeAll disconnects every client.
func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.conns {
		conn.Close()
		delete(h.conns, id)
	}
}

func (s *Server) handleLivereload(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("preview: websocket upgrade: %v", err)
		return
	}
	id := s.hub.add(conn)
	defer func() {
		s.hub.remove(id)
		conn.Close()
	}()

	if err := conn.WriteJSON(reloadMessage{Type: "ready"}); err != nil {
		log.Printf("preview: websocket write: %v", err)
		return
	}

	// Clients send nothing meaningful; the read loop only detects closes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("preview: websocket read: %v", err)
			}
			return
		}
	}
}
