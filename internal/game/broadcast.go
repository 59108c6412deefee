package game

import (
	"log"

	"github.com/quizrush/quizrush-backend/internal"
)

// =============================================================================
// BROADCASTING & MESSAGING
// =============================================================================

// SafeBroadcastToRoom fans a message out to every current member.
// Members are snapshotted under the room lock and writes happen
// outside it, so a slow connection never stalls the state machine.
// Delivery is fire-and-forget; send failures are logged and skipped.
func SafeBroadcastToRoom[T any](room *internal.Room, msg internal.Message[T]) {
	room.Mu.RLock()
	players := make([]*internal.Player, len(room.Members))
	copy(players, room.Members)
	room.Mu.RUnlock()

	for _, player := range players {
		if err := player.SafeWriteJSON(msg); err != nil {
			log.Printf("[Broadcast][Room:%s] Failed for player %s (%s): %v",
				room.Id, player.Id, player.Name, err)
		}
	}
}

// sendToPlayer writes to a single connection, for events that must not
// reach the rest of the room.
func sendToPlayer[T any](player *internal.Player, msg internal.Message[T]) {
	if err := player.SafeWriteJSON(msg); err != nil {
		log.Printf("[sendToPlayer] Failed for player %s (%s): %v",
			player.Id, player.Name, err)
	}
}
