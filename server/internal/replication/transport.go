package replication

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait mirrors the teacher's constants.go writeWait: the deadline a
// single WriteMessage call gets before it is treated as a dead connection.
const writeWait = 10 * time.Second

// Transport delivers one Session's framed tick payloads over a websocket
// connection, grounded on hub.go's per-subscriber write path
// (SetWriteDeadline before WriteMessage, connection dropped on error)
// generalized from the teacher's single JSON TextMessage broadcast to a
// binary payload carrying this package's own packet framing.
type Transport struct {
	conn *websocket.Conn
}

// NewTransport wraps an already-upgraded connection.
func NewTransport(conn *websocket.Conn) *Transport {
	return &Transport{conn: conn}
}

// Send writes one tick's framed payload as a single binary message.
func (t *Transport) Send(payload []byte) error {
	t.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := t.conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
		return fmt.Errorf("replication: write failed: %w", err)
	}
	return nil
}

// Receive reads one inbound binary message and splits it into its
// constituent packets, ready for Decode.
func (t *Transport) Receive() ([][]byte, error) {
	kind, data, err := t.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("replication: read failed: %w", err)
	}
	if kind != websocket.BinaryMessage {
		return nil, fmt.Errorf("replication: expected binary message, got type %d", kind)
	}
	return SplitFrames(data)
}

// Close closes the underlying connection.
func (t *Transport) Close() error { return t.conn.Close() }
