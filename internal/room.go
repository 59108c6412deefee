package internal

// Methods (Room Struct)
// Callers must hold r.Mu unless noted otherwise.

func (r *Room) HasMember(playerId string) bool {
	for _, m := range r.Members {
		if m.Id == playerId {
			return true
		}
	}
	return false
}

// RemoveMember drops the player from membership and scrubs its score,
// answer and reset-vote entries in the same step. Reports whether the
// player was a member at all.
func (r *Room) RemoveMember(playerId string) bool {
	for i, m := range r.Members {
		if m.Id != playerId {
			continue
		}
		r.Members = append(r.Members[:i], r.Members[i+1:]...)
		delete(r.Scores, playerId)
		delete(r.Answers, playerId)
		delete(r.ResetVotes, playerId)
		return true
	}
	return false
}

// EveryoneAnswered reports whether the round is complete: one recorded
// answer per current member.
func (r *Room) EveryoneAnswered() bool {
	return len(r.Members) > 0 && len(r.Answers) == len(r.Members)
}

// PublicMembers snapshots the member list in join order for broadcast.
func (r *Room) PublicMembers() []PlayerInfo {
	members := make([]PlayerInfo, 0, len(r.Members))
	for _, m := range r.Members {
		members = append(members, m.ToPublicPlayer())
	}
	return members
}
