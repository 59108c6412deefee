package game

import (
	"log"

	"github.com/quizrush/quizrush-backend/internal"
)

// =============================================================================
// MEMBERSHIP
// =============================================================================

// Join adds a player to a room, creating the room on first use.
// A full room rejects the join with an error event to the requesting
// connection only; nothing is broadcast and no state changes.
func (h *Hub) Join(roomId string, player *internal.Player) {
	room := h.getOrCreateRoom(roomId)

	room.Mu.Lock()

	if len(room.Members) >= h.capacity {
		room.Mu.Unlock()
		log.Printf("[Join] Room %s is full, rejecting player %s (%s)",
			roomId, player.Id, player.Name)
		sendToPlayer(player, internal.Message[string]{
			Type: internal.EventError,
			Data: "room full",
		})
		return
	}

	// Membership is unique by connection id; a repeat join from the
	// same connection keeps the existing entry and score.
	if !room.HasMember(player.Id) {
		room.Members = append(room.Members, player)
		room.Scores[player.Id] = 0
	}

	members := room.PublicMembers()
	memberCount := len(room.Members)
	room.Mu.Unlock()

	log.Printf("[Join] Added player %s (%s) to room %s. Total players: %d",
		player.Id, player.Name, roomId, memberCount)

	SafeBroadcastToRoom(room, internal.Message[[]internal.PlayerInfo]{
		Type: internal.EventMembersUpdated,
		Data: members,
	})
}

// Disconnect removes the connection from every room it joined and
// broadcasts the shrunken member list for each affected room, even
// when the list is now empty. It deliberately does not re-evaluate
// round completion or reset unanimity.
func (h *Hub) Disconnect(playerId string) {
	for _, room := range h.roomSnapshot() {
		room.Mu.Lock()
		removed := room.RemoveMember(playerId)
		members := room.PublicMembers()
		room.Mu.Unlock()

		if !removed {
			continue
		}

		log.Printf("[Disconnect] Removed player %s from room %s. Players remaining: %d",
			playerId, room.Id, len(members))

		SafeBroadcastToRoom(room, internal.Message[[]internal.PlayerInfo]{
			Type: internal.EventMembersUpdated,
			Data: members,
		})
	}
}
