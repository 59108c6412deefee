package internal

import (
	"sync"
	"time"
)

const (
	// Defaults for the external contract. Kept overridable through
	// config so compatibility tests can pin them explicitly.
	MaxPlayersPerRoom = 10
	WinThreshold      = 30
	RoundClearDelay   = 5 * time.Second
)

// Room is the unit of isolation: one game session keyed by a string id.
// All mutable fields are guarded by Mu; every state-machine operation
// runs as a single critical section against it.
type Room struct {
	Id string

	// Members in join order, unique by player id.
	Members []*Player

	// Answers collected for the round in progress, player id -> correct.
	// Cleared when the next round starts.
	Answers map[string]bool

	// Scores persist across rounds, reset only by a unanimous vote.
	Scores map[string]int

	// Distinct players that asked for a reset.
	ResetVotes map[string]struct{}

	// Finished flips once a player reaches the win threshold and
	// suppresses all further round processing.
	Finished bool

	// Concurrency control
	Mu sync.RWMutex `json:"-"`
}

type Response struct {
	StatusCode    int   `json:"status_code"`
	RespStartTime int64 `json:"resp_time_start_ms"`
	RespEndTime   int64 `json:"resp_time_end_ms"`
	NetRespTime   int64 `json:"net_resp_time_ms"`
	Data          any   `json:"data"`
}
