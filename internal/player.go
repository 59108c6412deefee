package internal

// Conn is the write side of a client connection as seen by the game
// core. *websocket.Conn is wrapped to satisfy it in the transport
// layer; tests substitute a recording fake.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Player is one room membership entry. Identity is the connection id;
// a player has no identity independent of its live connection.
type Player struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Conn Conn   `json:"-"`
}

func (p *Player) ToPublicPlayer() PlayerInfo {
	return PlayerInfo{
		Id:   p.Id,
		Name: p.Name,
	}
}

// SafeWriteJSON sends to the player's connection, tolerating members
// that have no live connection attached.
func (p *Player) SafeWriteJSON(v any) error {
	if p.Conn == nil {
		return nil
	}
	return p.Conn.WriteJSON(v)
}
