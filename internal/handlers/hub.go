package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

const (
	writeWait      = 2 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// AlertHub fans alert events out to every connected websocket client.
type AlertHub struct {
	register   chan *alertClient
	unregister chan *alertClient
	broadcast  chan models.AlertEvent
	clients    map[*alertClient]struct{}
	done       chan struct{}
}

type alertClient struct {
	hub  *AlertHub
	conn *websocket.Conn
	send chan models.AlertEvent
}

// NewAlertHub creates a hub. Run must be started before clients connect.
func NewAlertHub() *AlertHub {
	return &AlertHub{
		register:   make(chan *alertClient),
		unregister: make(chan *alertClient),
		broadcast:  make(chan models.AlertEvent, sendBuffer),
		clients:    make(map[*alertClient]struct{}),
		done:       make(chan struct{}),
	}
}

// Run is the hub loop. It returns when ctx is done, disconnecting every client.
func (h *AlertHub) Run(ctx context.Context) {
	defer func() {
		for c := range h.clients {
			delete(h.clients, c)
			close(c.send)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

		case event := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- event:
				default:
					// slow client
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// PublishAlert queues event for every connected client.
func (h *AlertHub) PublishAlert(ctx context.Context, event models.AlertEvent) error {
	select {
	case h.broadcast <- event:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NewAlertStreamHandler upgrades the request to a websocket that receives
// every raised alert as JSON.
// @Summary Alert stream
// @Description Websocket; every raised alert is sent as one JSON AlertEvent message
// @Tags alert
// @Success 101 {object} models.AlertEvent
// @Router /alerts/ws [get]
func NewAlertStreamHandler(hub *AlertHub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Warnw("websocket upgrade failed", "error", err)
			return
		}

		c := &alertClient{
			hub:  hub,
			conn: conn,
			send: make(chan models.AlertEvent, sendBuffer),
		}
		select {
		case hub.register <- c:
		case <-hub.done:
			conn.Close()
			return
		}
		logger.Log.Infow("alert stream client connected", "remote", r.RemoteAddr)

		go c.writePump()
		go c.readPump()
	}
}

// readPump discards client messages and detects disconnects.
func (c *alertClient) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
		logger.Log.Infow("alert stream client disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Warnw("alert stream read error", "error", err)
			}
			return
		}
	}
}

func (c *alertClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				logger.Log.Warnw("alert stream write error", "error", err)
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
