package game

import (
	"log"

	"github.com/quizrush/quizrush-backend/internal"
)

// =============================================================================
// RESET VOTING
// =============================================================================

// SolicitReset registers one member's vote to restart the game. Votes
// are a set, so repeat requests from the same connection change
// nothing. Consensus scales with present membership: once every
// current member has voted the room is wiped back to a fresh game,
// otherwise the running vote count is broadcast.
func (h *Hub) SolicitReset(roomId, playerId string) {
	room, exists := h.room(roomId)
	if !exists {
		log.Printf("[SolicitReset] Unknown room %s, dropping vote from %s", roomId, playerId)
		return
	}

	room.Mu.Lock()

	if !room.HasMember(playerId) {
		room.Mu.Unlock()
		log.Printf("[SolicitReset] Player %s is not a member of room %s, dropping vote", playerId, roomId)
		return
	}

	room.ResetVotes[playerId] = struct{}{}

	if len(room.ResetVotes) < len(room.Members) {
		votes := len(room.ResetVotes)
		total := len(room.Members)
		room.Mu.Unlock()

		log.Printf("[SolicitReset] Room %s: %d/%d reset votes", roomId, votes, total)

		SafeBroadcastToRoom(room, internal.Message[int]{
			Type: internal.EventResetVoteUpdated,
			Data: votes,
		})
		return
	}

	// Unanimous: full reset in place. The room object survives.
	room.Answers = make(map[string]bool)
	room.ResetVotes = make(map[string]struct{})
	room.Scores = make(map[string]int)
	for _, member := range room.Members {
		room.Scores[member.Id] = 0
	}
	room.Finished = false

	room.Mu.Unlock()

	log.Printf("[SolicitReset] Room %s: unanimous vote, game reset", roomId)

	SafeBroadcastToRoom(room, internal.Message[any]{
		Type: internal.EventRoomReset,
	})
}
