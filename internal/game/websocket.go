package game

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/quizrush/quizrush-backend/internal"
)

// =============================================================================
// WEBSOCKET CONNECTION HANDLING
// =============================================================================

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// safeConn serializes writes to one websocket connection. A connection
// can be a member of several rooms at once, so the write mutex lives
// here rather than on the per-room player entry.
type safeConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *safeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *safeConn) Close() error {
	return c.conn.Close()
}

// HandleWebSocket upgrades the HTTP connection and starts the per
// connection read loop. The connection id assigned here is the
// player's identity for its whole lifetime.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade failed: ", err)
		return
	}

	connId := uuid.New().String()
	log.Printf("[HandleWebSocket] Connection %s established", connId)

	go h.handleMessages(connId, &safeConn{conn: conn})
}

// handleMessages reads inbound events for one connection and routes
// them to the room state machine. A read error means the client is
// gone: the connection is closed and removed from every room it
// joined.
func (h *Hub) handleMessages(connId string, conn *safeConn) {
	defer func() {
		conn.Close()
		h.Disconnect(connId)
		log.Printf("[handleMessages] Connection %s closed", connId)
	}()

	for {
		_, rawMessage, err := conn.conn.ReadMessage()
		if err != nil {
			log.Printf("[handleMessages] Read error on connection %s: %v", connId, err)
			break
		}

		var baseMsg internal.Message[json.RawMessage]
		if err := json.Unmarshal(rawMessage, &baseMsg); err != nil {
			log.Printf("[handleMessages] Failed to parse base message: %v", err)
			continue
		}

		switch baseMsg.Type {
		case internal.EventJoin:
			var data internal.JoinData
			if err := json.Unmarshal(baseMsg.Data, &data); err != nil {
				log.Println("Error parsing data, wrong json", err)
				continue
			}
			h.Join(data.Room, &internal.Player{
				Id:   connId,
				Name: data.Name,
				Conn: conn,
			})

		case internal.EventAnswer:
			var data internal.AnswerData
			if err := json.Unmarshal(baseMsg.Data, &data); err != nil {
				log.Println("Error parsing data, wrong json", err)
				continue
			}
			h.Answer(data.Room, connId, data.Correct)

		case internal.EventRequestReset:
			var roomId string
			if err := json.Unmarshal(baseMsg.Data, &roomId); err != nil {
				log.Println("Error parsing data, wrong json", err)
				continue
			}
			h.SolicitReset(roomId, connId)

		default:
			log.Printf("[handleMessages] Unknown message type %q from connection %s", baseMsg.Type, connId)
		}
	}
}
