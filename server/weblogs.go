package server

import (
	"net/http"
	"sync"

	"log/slog"
	"slices"

	"github.com/gorilla/websocket"
	"github.com/robert-nix/ansihtml"
)

// live log streaming is best effort: a browser that connects mid fetch
// sees everything from that point on, lines emitted while nobody is
// connected are simply lost, they still reach the terminal writer

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// LogHub fans log lines out to every connected websocket. It is an
// io.Writer so it can sit directly behind a slog or logrus handler.
type LogHub struct {
	mu          sync.Mutex
	connections []*logConnection
}

type logConnection struct {
	conn *websocket.Conn
	send chan []byte
	hub  *LogHub
}

func NewLogHub() *LogHub {
	return &LogHub{}
}

func (h *LogHub) Write(b []byte) (int, error) {
	// a dropped line is fine, slow readers must not stall the fetch
	bytesLen := len(b)
	formattedLog := ansihtml.ConvertToHTML(b)

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.connections {
		if c == nil || c.send == nil {
			continue
		}
		select {
		case c.send <- formattedLog:
		default:
		}
	}
	return bytesLen, nil
}

func (h *LogHub) loggingWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Info("Could not upgrade", "err", err)
		return
	}

	c := &logConnection{
		conn: conn,
		send: make(chan []byte, 64),
		hub:  h,
	}

	h.mu.Lock()
	h.connections = append(h.connections, c)
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()
}

func (c *logConnection) readPump() {
	defer c.disconnect()
	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
			) {
				slog.Info("websocket read error", "err", err)
			}
			break
		}
	}
}

func (c *logConnection) writePump() {
	defer c.disconnect()
	for message := range c.send {
		err := c.conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *logConnection) disconnect() {
	c.hub.mu.Lock()
	defer c.hub.mu.Unlock()
	for i, other := range c.hub.connections {
		if other == c {
			c.hub.connections = slices.Delete(c.hub.connections, i, i+1)
			c.conn.Close()
			close(c.send)
			break
		}
	}
}
