package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHub_EmitToAll(t *testing.T) {
	hub := NewHub(zap.NewNop())
	conn := dialHub(t, hub)

	// tunggu registrasi client selesai
	deadline := time.Now().Add(2 * time.Second)
	for hub.ActiveConnections() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, hub.ActiveConnections())

	hub.EmitToAll("staff-created", map[string]any{"staffId": "abc", "name": "Bob"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(frame, &event))
	assert.Equal(t, "staff-created", event.Event)

	data := event.Data.(map[string]any)
	assert.Equal(t, "abc", data["staffId"])
	assert.False(t, event.Timestamp.IsZero())
}

func TestHub_EmitWithoutClients(t *testing.T) {
	hub := NewHub(zap.NewNop())

	// tanpa client tetap tidak boleh blocking atau panic
	hub.EmitToAll("user-logged-in", map[string]any{"userId": "u1"})
	assert.Equal(t, 0, hub.ActiveConnections())
}

func TestHub_DisconnectCleansUp(t *testing.T) {
	hub := NewHub(zap.NewNop())
	conn := dialHub(t, hub)

	deadline := time.Now().Add(2 * time.Second)
	for hub.ActiveConnections() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, hub.ActiveConnections())

	conn.Close()

	deadline = time.Now().Add(2 * time.Second)
	for hub.ActiveConnections() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 0, hub.ActiveConnections())
}
