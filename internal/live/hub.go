// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package live pushes theme change events to open showcase pages over
// websockets so they can switch or reload without polling.
package live

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event types sent to clients.
const (
	EventThemeUpdated = "theme.updated"
	EventThemeDeleted = "theme.deleted"
)

// Event is a single message on the live channel.
type Event struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// conn wraps a websocket connection with its own write mutex.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) write(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(v)
}

// Hub tracks live connections and broadcasts events to all of them.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]*conn
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]*conn)}
}

func (h *Hub) add(ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[ws] = &conn{ws: ws}
}

func (h *Hub) remove(ws *websocket.Conn) {
	h.mu.Lock()
	c, ok := h.conns[ws]
	delete(h.conns, ws)
	h.mu.Unlock()
	if ok {
		c.ws.Close()
	}
}

// Len returns the number of open connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Publish sends ev to every connection. Connections that fail the write
// are dropped.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	conns := make([]*conn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := c.write(ev); err != nil {
			slog.Debug("live write failed, dropping connection", "error", err)
			h.remove(c.ws)
		}
	}
	slog.Debug("live event published", "type", ev.Type, "id", ev.ID, "clients", len(conns))
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the client goes away. Incoming messages are read and discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("live upgrade failed", "error", err)
		return
	}
	h.add(ws)
	defer h.remove(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}
