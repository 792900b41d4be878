package notify

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// time allowed to write a message to the peer
	writeWait = 10 * time.Second
	// time allowed to read the next pong before the connection is reaped
	pongWait = 60 * time.Second
	// ping interval; must be shorter than pongWait
	pingPeriod = 30 * time.Second
	// time the client has to send its authenticate frame
	authWait = 10 * time.Second
	// per-connection outbound buffer; slow clients drop messages past this
	sendBuffer = 64
)

type client struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub fans job and system events out to authenticated websocket clients.
// Delivery is at-most-once per open connection: a slow client's messages
// are dropped, never queued unboundedly, and a missed push is reconciled
// through the pull-based job listing.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// authn/authz is handled upstream; cross-origin pages are allowed
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// inbound is the shape of client→server frames.
type inbound struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// ServeHTTP upgrades the connection and runs it. The first client frame
// must be {"type":"authenticate","userId":...}; unauthenticated
// connections receive no events and are dropped.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "err", err)
		return
	}

	userID, ok := h.authenticate(conn)
	if !ok {
		_ = conn.Close()
		return
	}

	c := &client{userID: userID, conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("websocket client connected", "user_id", userID)

	ack, _ := json.Marshal(map[string]string{"type": "authenticated", "userId": userID})
	c.enqueue(ack)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) authenticate(conn *websocket.Conn) (string, bool) {
	_ = conn.SetReadDeadline(time.Now().Add(authWait))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		return "", false
	}
	var msg inbound
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Type != "authenticate" || msg.UserID == "" {
		h.logger.Warn("websocket connection dropped: not authenticated")
		return "", false
	}
	return msg.UserID, true
}

func (h *Hub) readPump(c *client) {
	defer h.drop(c)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg inbound
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if msg.Type == "ping" {
			pong, _ := json.Marshal(map[string]string{"type": "pong"})
			c.enqueue(pong)
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	_ = c.conn.Close()
	h.logger.Info("websocket client disconnected", "user_id", c.userID)
}

// enqueue hands a message to the write pump without blocking.
func (c *client) enqueue(msg []byte) {
	select {
	case c.send <- msg:
	default:
		// slow client, drop the message
	}
}

// SendToUser pushes an event to every connection owned by userID.
func (h *Hub) SendToUser(userID string, evt Event) {
	raw, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("event marshal failed", "type", evt.Type, "err", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c.userID == userID {
			c.enqueue(raw)
		}
	}
}

// Broadcast pushes an event to every authenticated connection.
func (h *Hub) Broadcast(evt Event) {
	raw, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("event marshal failed", "type", evt.Type, "err", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.enqueue(raw)
	}
}

// Close tears down every connection, e.g. on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
		_ = c.conn.Close()
	}
	h.mu.Unlock()
}
