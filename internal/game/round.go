package game

import (
	"log"
	"time"

	"github.com/quizrush/quizrush-backend/internal"
)

// =============================================================================
// ROUND FLOW
// =============================================================================

// Answer records one member's graded answer for the current round and
// closes the round once every member has answered. Unknown rooms,
// finished games and non-members are silent no-ops so stale clients
// never see an error.
func (h *Hub) Answer(roomId, playerId string, correct bool) {
	room, exists := h.room(roomId)
	if !exists {
		log.Printf("[Answer] Unknown room %s, dropping answer from %s", roomId, playerId)
		return
	}

	room.Mu.Lock()

	if room.Finished {
		room.Mu.Unlock()
		log.Printf("[Answer] Room %s already finished, dropping answer from %s", roomId, playerId)
		return
	}
	if !room.HasMember(playerId) {
		room.Mu.Unlock()
		log.Printf("[Answer] Player %s is not a member of room %s, dropping answer", playerId, roomId)
		return
	}

	room.Answers[playerId] = correct
	if correct {
		room.Scores[playerId]++
	}

	if !room.EveryoneAnswered() {
		answered := len(room.Answers)
		total := len(room.Members)
		room.Mu.Unlock()
		log.Printf("[Answer] Room %s: %d/%d answers in", roomId, answered, total)
		return
	}

	// Round closes. Members added mid-round with no recorded answer are
	// reported as not-correct, never omitted.
	results := make([]internal.AnswerResult, 0, len(room.Members))
	for _, member := range room.Members {
		results = append(results, internal.AnswerResult{
			Name:    member.Name,
			Correct: room.Answers[member.Id],
		})
	}

	won := false
	for _, points := range room.Scores {
		if points >= h.winThreshold {
			won = true
			break
		}
	}

	var ranking []internal.RankEntry
	if won {
		room.Finished = true
		ranking = Ranking(room.Scores, room.Members)
	}

	room.Mu.Unlock()

	log.Printf("[Answer] Room %s: round closed with %d players, won=%t", roomId, len(results), won)

	SafeBroadcastToRoom(room, internal.Message[[]internal.AnswerResult]{
		Type: internal.EventRoundResult,
		Data: results,
	})

	if won {
		SafeBroadcastToRoom(room, internal.Message[[]internal.RankEntry]{
			Type: internal.EventGameOver,
			Data: ranking,
		})
		return
	}

	h.scheduleRoundClear(room)
}

// scheduleRoundClear arms the pacing window between rounds. The
// callback is keyed to wall-clock time only: it fires once,
// unconditionally, against whatever room state exists at fire time,
// and is never cancelled by membership changes, resets or game end.
// It serializes with the other operations through the room mutex.
func (h *Hub) scheduleRoundClear(room *internal.Room) {
	log.Printf("[scheduleRoundClear] Room %s: next round in %s", room.Id, h.clearDelay)

	time.AfterFunc(h.clearDelay, func() {
		room.Mu.Lock()
		room.Answers = make(map[string]bool)
		room.Mu.Unlock()

		log.Printf("[scheduleRoundClear] Room %s: answers cleared, starting new round", room.Id)

		SafeBroadcastToRoom(room, internal.Message[any]{
			Type: internal.EventNewRound,
		})
	})
}
