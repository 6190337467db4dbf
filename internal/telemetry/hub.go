// Package telemetry streams tick frames and control events to websocket
// clients.
package telemetry

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zeusync/fcs/internal/core/control"
	"github.com/zeusync/fcs/internal/core/events/bus"
	"github.com/zeusync/fcs/internal/core/observability/log"
)

const (
	MessageFrame = "frame"
	MessageEvent = "event"
)

// Message is the envelope written to clients, one JSON object per websocket
// text message.
type Message struct {
	Type    string    `json:"type"`
	Vehicle string    `json:"vehicle,omitempty"`
	Event   string    `json:"event,omitempty"`
	Time    time.Time `json:"time"`
	Data    any       `json:"data"`
}

type Config struct {
	MaxClients   int           `json:"max_clients" yaml:"max_clients"`
	SendBuffer   int           `json:"send_buffer" yaml:"send_buffer"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
}

func DefaultConfig() Config {
	return Config{MaxClients: 32, SendBuffer: 64, WriteTimeout: time.Second}
}

type client struct {
	conn    *websocket.Conn
	vehicle string
	send    chan []byte
	once    sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub fans messages out to connected clients. A slow client loses messages
// rather than stalling the tick loop.
type Hub struct {
	cfg      Config
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool

	published atomic.Uint64
	dropped   atomic.Uint64

	logger log.Log
}

func NewHub(cfg Config, logger log.Log) *Hub {
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = DefaultConfig().SendBuffer
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultConfig().WriteTimeout
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Hub{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
		logger:  logger.Named("telemetry"),
	}
}

// ServeHTTP upgrades the request. The optional "vehicle" query parameter
// limits the stream to one vehicle.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	closed, full := h.closed, h.cfg.MaxClients > 0 && len(h.clients) >= h.cfg.MaxClients
	h.mu.Unlock()
	if closed {
		http.Error(w, ErrHubClosed.Error(), http.StatusServiceUnavailable)
		return
	}
	if full {
		http.Error(w, ErrMaxClientsReached.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", log.Error(err))
		return
	}

	c := &client{
		conn:    conn,
		vehicle: r.URL.Query().Get("vehicle"),
		send:    make(chan []byte, h.cfg.SendBuffer),
	}
	if err := h.register(c); err != nil {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error()))
		_ = conn.Close()
		return
	}
	h.logger.Info("telemetry client connected", log.String("remote", conn.RemoteAddr().String()), log.String("vehicle", c.vehicle))

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) register(c *client) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHubClosed
	}
	if h.cfg.MaxClients > 0 && len(h.clients) >= h.cfg.MaxClients {
		return ErrMaxClientsReached
	}
	h.clients[c] = struct{}{}
	return nil
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		c.close()
		h.logger.Info("telemetry client disconnected", log.String("remote", c.conn.RemoteAddr().String()))
	}
}

// readLoop only drains control frames; clients do not send data.
func (h *Hub) readLoop(c *client) {
	defer h.unregister(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.unregister(c)
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Publish sends a tick frame. It implements flight.FrameSink.
func (h *Hub) Publish(frame control.Frame) error {
	return h.broadcast(Message{Type: MessageFrame, Vehicle: frame.Vehicle, Time: frame.Time, Data: frame})
}

// PublishEvent forwards a bus event to every client.
func (h *Hub) PublishEvent(e bus.Event) error {
	return h.broadcast(Message{Type: MessageEvent, Event: e.Type(), Vehicle: e.Source(), Time: e.Timestamp(), Data: e.Data()})
}

// Forward subscribes the hub to every event on events.
func (h *Hub) Forward(events bus.EventBus) (bus.Subscription, error) {
	return events.SubscribeAll(h.PublishEvent)
}

func (h *Hub) broadcast(m Message) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHubClosed
	}
	h.published.Add(1)
	for c := range h.clients {
		if c.vehicle != "" && m.Vehicle != "" && c.vehicle != m.Vehicle {
			continue
		}
		select {
		case c.send <- payload:
		default:
			h.dropped.Add(1)
		}
	}
	return nil
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Stats reports published messages and messages dropped for slow clients.
func (h *Hub) Stats() (published, dropped uint64) {
	return h.published.Load(), h.dropped.Load()
}

// Close disconnects every client. Further publishes return ErrHubClosed.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHubClosed
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
	return nil
}
