package internal

type Message[T any] struct {
	Type string `json:"type"`
	Data T      `json:"data"`
}

// Inbound event types (connection -> server).
const (
	EventJoin         = "join"
	EventAnswer       = "answer"
	EventRequestReset = "request-reset"
)

// Outbound event types (server -> room group, or a single connection
// for EventError).
const (
	EventError            = "error"
	EventMembersUpdated   = "members-updated"
	EventRoundResult      = "round-result"
	EventGameOver         = "game-over"
	EventNewRound         = "new-round"
	EventRoomReset        = "room-reset"
	EventResetVoteUpdated = "reset-vote-updated"
)

type JoinData struct {
	Room string `json:"room"`
	Name string `json:"name"`
}

type AnswerData struct {
	Room    string `json:"room"`
	Correct bool   `json:"correct"`
}

type PlayerInfo struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type AnswerResult struct {
	Name    string `json:"name"`
	Correct bool   `json:"correct"`
}

type RankEntry struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}
