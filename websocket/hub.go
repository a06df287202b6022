package websocket

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"flight-risk/models"
)

const sendBufferSize = 64

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for simplicity; adjust in production
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one live connection tagged with the player it belongs to. A
// player may hold several clients at once; each is tracked independently.
type Client struct {
	PlayerID string
	Conn     *websocket.Conn
	Send     chan models.WSMessage

	mu     sync.Mutex
	closed bool
}

func NewClient(playerID string, conn *websocket.Conn) *Client {
	return &Client{
		PlayerID: playerID,
		Conn:     conn,
		Send:     make(chan models.WSMessage, sendBufferSize),
	}
}

// Deliver queues a message without blocking. A closed or backed-up client
// drops the message so one bad connection never holds up a round broadcast.
func (c *Client) Deliver(msg models.WSMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- msg:
		return true
	default:
		return false
	}
}

// shutdown closes the send queue exactly once. Broadcasts racing with an
// unregister see the closed flag instead of a closed channel.
func (c *Client) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

// WritePump drains the send queue onto the wire. Runs as its own goroutine
// per connection and exits when the queue closes or a write fails.
func (c *Client) WritePump() {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteJSON(msg); err != nil {
			log.Debug().Err(err).Str("player_id", c.PlayerID).Msg("write failed, closing connection")
			return
		}
	}
}

// Registry maps rooms to their live connections.
type Registry struct {
	mu    sync.Mutex
	rooms map[string][]*Client
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string][]*Client)}
}

func (r *Registry) Register(roomID string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[roomID] = append(r.rooms[roomID], c)
}

// Unregister removes the first pair holding this exact client and closes its
// send queue. Unknown clients are ignored.
func (r *Registry) Unregister(roomID string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clients := r.rooms[roomID]
	for i, existing := range clients {
		if existing == c {
			r.rooms[roomID] = append(clients[:i:i], clients[i+1:]...)
			c.shutdown()
			return
		}
	}
}

// List snapshots the room's connections so callers can iterate and send
// outside the lock.
func (r *Registry) List(roomID string) []*Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Client(nil), r.rooms[roomID]...)
}

// Broadcast builds a payload per recipient and attempts delivery to every
// connection in the room. Failures are logged and skipped; the rest of the
// room still gets its messages.
func (r *Registry) Broadcast(roomID string, build func(playerID string) models.WSMessage) {
	for _, c := range r.List(roomID) {
		if !c.Deliver(build(c.PlayerID)) {
			log.Warn().
				Str("room_id", roomID).
				Str("player_id", c.PlayerID).
				Msg("send buffer full, dropping message")
		}
	}
}
