package registry

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"flight-risk/models"
)

var ErrRoomExists = errors.New("room id already in use")

// Registry is the process-wide room table. Rooms are created and looked up;
// they are never deleted, living as long as the process does.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*models.GameRoom
}

func New() *Registry {
	return &Registry{rooms: make(map[string]*models.GameRoom)}
}

// Create registers a new room. The caller must retry with a fresh id on
// ErrRoomExists.
func (r *Registry) Create(room *models.GameRoom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rooms[room.RoomID]; exists {
		return ErrRoomExists
	}
	r.rooms[room.RoomID] = room
	return nil
}

func (r *Registry) Get(roomID string) (*models.GameRoom, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[roomID]
	return room, ok
}

// NewRoomID mints a short random token, the kind players type or paste to
// join a room.
func NewRoomID() string {
	b := make([]byte, 3)
	rand.Read(b)
	return hex.EncodeToString(b)
}
