// Package realtime pushes entity change events to websocket subscribers.
package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes a committed mutation of one or more entities.
type Event struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub fans out events to every connected client.
type Hub struct {
	mu        sync.Mutex
	clients   map[Conn]struct{}
	broadcast chan []byte
	logger    *log.Entry
}

func NewHub(buffer int, logger *log.Entry) *Hub {
	return &Hub{
		clients:   make(map[Conn]struct{}),
		broadcast: make(chan []byte, buffer),
		logger:    logger,
	}
}

func (h *Hub) Register(conn Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(conn Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish queues ev for delivery. It never blocks: when the buffer is full
// the event is dropped.
func (h *Hub) Publish(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.logger.WithError(err).Warn("failed to encode change event")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.logger.WithField("entity", ev.Entity).Warn("change feed buffer full, dropping event")
	}
}

// Run delivers queued events until ctx is done, then closes all clients.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case msg := <-h.broadcast:
			h.send(msg)
		}
	}
}

func (h *Hub) send(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.WithError(err).Warn("websocket write failed, dropping client")
			_ = client.Close()
			delete(h.clients, client)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		_ = client.Close()
		delete(h.clients, client)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades the request to a websocket and keeps the client
// registered until it disconnects. Incoming messages are ignored.
func (h *Hub) Handler() fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.WithError(err).Warn("websocket upgrade failed")
			return
		}
		h.Register(conn)
		h.logger.WithField("remote", conn.RemoteAddr().String()).Info("change feed client connected")

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					h.logger.WithError(err).Warn("websocket read error")
				}
				break
			}
		}
		h.Unregister(conn)
		_ = conn.Close()
	})
}
