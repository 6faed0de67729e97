package app

import (
	"sync"

	"kalitiri/internal/domain"
)

// roomHandle pairs a room with the mutex that serializes all operations
// against it. Operations on different rooms proceed in parallel.
type roomHandle struct {
	mu   sync.Mutex
	room *domain.Room
}

// Registry is the room table owned by the server process. Rooms are created
// lazily on first join and removed when their seat list becomes empty.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*roomHandle
}

// NewRegistry constructs an empty room registry.
func NewRegistry() *Registry {
	return &Registry{rooms: map[string]*roomHandle{}}
}

func (reg *Registry) getOrCreate(roomID string) *roomHandle {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	h, ok := reg.rooms[roomID]
	if !ok {
		h = &roomHandle{room: domain.NewRoom(roomID)}
		reg.rooms[roomID] = h
	}
	return h
}

func (reg *Registry) get(roomID string) *roomHandle {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.rooms[roomID]
}

func (reg *Registry) remove(roomID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, roomID)
}

// Len returns the number of live rooms.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}
