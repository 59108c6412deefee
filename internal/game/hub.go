package game

import (
	"log"
	"sync"
	"time"

	"github.com/quizrush/quizrush-backend/internal"
	"github.com/quizrush/quizrush-backend/internal/config"
)

// =============================================================================
// ROOM REGISTRY
// =============================================================================

// Hub owns every live room. Construct one in main and hand it to the
// websocket handler and the HTTP server; rooms are created lazily on
// first join and live until the process exits.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*internal.Room

	capacity     int
	winThreshold int
	clearDelay   time.Duration
}

func NewHub(cfg *config.Config) *Hub {
	return &Hub{
		rooms:        make(map[string]*internal.Room),
		capacity:     cfg.MaxPlayersPerRoom,
		winThreshold: cfg.WinThreshold,
		clearDelay:   cfg.RoundClearDelay,
	}
}

// getOrCreateRoom retrieves an existing room or creates a fresh one.
// Registry access always succeeds; absence is a creation trigger, not
// an error.
func (h *Hub) getOrCreateRoom(roomId string) *internal.Room {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, exists := h.rooms[roomId]; exists {
		return room
	}

	newRoom := &internal.Room{
		Id:         roomId,
		Members:    make([]*internal.Player, 0),
		Answers:    make(map[string]bool),
		Scores:     make(map[string]int),
		ResetVotes: make(map[string]struct{}),
		Finished:   false,
	}
	h.rooms[roomId] = newRoom

	log.Printf("[getOrCreateRoom] Created new room %s", roomId)
	return newRoom
}

// room looks a room up without creating it. Answer and reset requests
// against an unknown room are silent no-ops.
func (h *Hub) room(roomId string) (*internal.Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room, exists := h.rooms[roomId]
	return room, exists
}

// roomSnapshot copies the current room set so callers can walk it
// without holding the registry lock.
func (h *Hub) roomSnapshot() []*internal.Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rooms := make([]*internal.Room, 0, len(h.rooms))
	for _, room := range h.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}

// JoinableRoom returns the id of a room that can accept new players,
// or "" when every known room is full or finished.
func (h *Hub) JoinableRoom() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, room := range h.rooms {
		room.Mu.RLock()

		if len(room.Members) >= h.capacity || room.Finished {
			room.Mu.RUnlock()
			continue
		}

		roomId := room.Id
		room.Mu.RUnlock()
		log.Printf("[JoinableRoom] Found joinable room %s", roomId)
		return roomId
	}

	log.Println("[JoinableRoom] No joinable room found")
	return ""
}
