package notify

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg map[string]any
	require.NoError(t, json.Unmarshal(raw, &msg))
	return msg
}

func TestAuthenticateThenReceive(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "authenticate", "userId": "u1"}))
	ack := readFrame(t, conn)
	assert.Equal(t, "authenticated", ack["type"])
	assert.Equal(t, "u1", ack["userId"])

	hub.SendToUser("u1", Event{Type: "upload:success", Timestamp: time.Now()})
	evt := readFrame(t, conn)
	assert.Equal(t, "upload:success", evt["type"])
}

func TestEventsAreScopedToUser(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "authenticate", "userId": "u1"}))
	_ = readFrame(t, conn) // ack

	hub.SendToUser("someone-else", Event{Type: "upload:success", Timestamp: time.Now()})
	hub.SendToUser("u1", Event{Type: "upload:error", Timestamp: time.Now()})

	evt := readFrame(t, conn)
	assert.Equal(t, "upload:error", evt["type"], "the other user's event must not arrive first")
}

func TestUnauthenticatedFirstFrameDropsConnection(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "hello"}))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "server must close without sending anything")
}

func TestPingPong(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "authenticate", "userId": "u1"}))
	_ = readFrame(t, conn) // ack

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))
	evt := readFrame(t, conn)
	assert.Equal(t, "pong", evt["type"])
}

func TestBroadcastReachesAllUsers(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()
	a := dialHub(t, hub)
	b := dialHub(t, hub)

	require.NoError(t, a.WriteJSON(map[string]string{"type": "authenticate", "userId": "u1"}))
	require.NoError(t, b.WriteJSON(map[string]string{"type": "authenticate", "userId": "u2"}))
	_ = readFrame(t, a)
	_ = readFrame(t, b)

	hub.Broadcast(Event{Type: "system:maintenance", Timestamp: time.Now()})
	assert.Equal(t, "system:maintenance", readFrame(t, a)["type"])
	assert.Equal(t, "system:maintenance", readFrame(t, b)["type"])
}
