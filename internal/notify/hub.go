package notify

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 64
)

// Event adalah frame yang dikirim ke semua client websocket
type Event struct {
	Event     string    `json:"event"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub manages websocket connections dan broadcast ke semua client.
// Client yang lambat (send buffer penuh) langsung di-drop supaya
// broadcast tidak pernah blocking.
type Hub struct {
	upgrader websocket.Upgrader
	log      *zap.Logger

	mu    sync.RWMutex
	conns map[*websocket.Conn]chan []byte
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log:   log,
		conns: make(map[*websocket.Conn]chan []byte),
	}
}

// HandleWS handles GET /ws - upgrade koneksi dan register client
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	send := make(chan []byte, sendBufferSize)

	h.mu.Lock()
	h.conns[conn] = send
	count := len(h.conns)
	h.mu.Unlock()

	h.log.Info("Websocket client connected",
		zap.String("remote", conn.RemoteAddr().String()),
		zap.Int("active", count),
	)

	go h.writePump(conn, send)
	go h.readPump(conn)
}

// EmitToAll broadcast event ke semua client. Best-effort: error marshal
// atau client penuh hanya di-log, tidak pernah dikembalikan ke caller.
func (h *Hub) EmitToAll(event string, payload any) {
	frame, err := json.Marshal(Event{
		Event:     event,
		Data:      payload,
		Timestamp: time.Now(),
	})
	if err != nil {
		h.log.Warn("Failed to marshal notification", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn, send := range h.conns {
		select {
		case send <- frame:
		default:
			// client terlalu lambat, drop
			h.log.Warn("Dropping slow websocket client",
				zap.String("remote", conn.RemoteAddr().String()))
			go conn.Close()
		}
	}
}

// ActiveConnections jumlah client yang terhubung
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) writePump(conn *websocket.Conn, send chan []byte) {
	defer h.remove(conn)

	for frame := range send {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
}

// readPump discard pesan masuk; hanya untuk deteksi disconnect
func (h *Hub) readPump(conn *websocket.Conn) {
	defer h.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	send, ok := h.conns[conn]
	if ok {
		delete(h.conns, conn)
		close(send)
	}
	h.mu.Unlock()

	if ok {
		conn.Close()
		h.log.Info("Websocket client disconnected",
			zap.String("remote", conn.RemoteAddr().String()))
	}
}
