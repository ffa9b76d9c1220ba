package ws

import (
	"candidate-notes/contract"
	"candidate-notes/domain"
	"candidate-notes/domain/event"
	"candidate-notes/errors"
	"candidate-notes/sink"
	"encoding/json"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

// Client-initiated room operations.
const (
	JoinRoom      = "join_room"
	LeaveRoom     = "leave_room"
	JoinUserRoom  = "join_user_room"
	LeaveUserRoom = "leave_user_room"

	errorEvent      = "error"
	replyBufferSize = 8
)

// frame is the envelope of every message on the socket, both directions.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type client struct {
	log     *slog.Logger
	hub     contract.IHub
	conn    *websocket.Conn
	connID  domain.ConnectionID
	sink    *sink.ConnectionSink
	replies chan frame
}

// readPump handles client frames until the socket fails, then tears the connection down.
func (c *client) readPump(readLimit int64) {
	defer func() {
		c.hub.OnDisconnect(c.connID)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("WebSocket read failed", "error", err)
			}
			return
		}

		var in frame
		if err := json.Unmarshal(message, &in); err != nil {
			c.log.Debug("Malformed frame ignored", "error", err)
			continue
		}
		var id string
		if err := json.Unmarshal(in.Data, &id); err != nil || id == "" {
			c.log.Debug("Frame without a room id ignored", "event", in.Event)
			continue
		}
		if err := c.handle(in.Event, id); err != nil {
			c.reply(err)
		}
	}
}

func (c *client) handle(name, id string) error {
	switch name {
	case JoinRoom:
		return c.hub.JoinCandidateRoom(c.connID, id)
	case LeaveRoom:
		c.hub.LeaveCandidateRoom(c.connID, id)
		return nil
	case JoinUserRoom:
		return c.hub.JoinOwnRoom(c.connID, domain.UserID(id))
	case LeaveUserRoom:
		return c.hub.LeaveOwnRoom(c.connID, domain.UserID(id))
	default:
		c.log.Debug("Unknown event ignored", "event", name)
		return nil
	}
}

// reply reports a refused operation to the client without closing the connection.
// It never blocks the read loop: a client ignoring its replies loses them.
func (c *client) reply(err error) {
	msg := "request failed"
	if stdErrors.Is(err, errors.ErrAuthorizationDenied) {
		msg = errors.ErrAuthorizationDenied.Error()
	}
	data, _ := json.Marshal(map[string]string{"msg": msg})
	select {
	case c.replies <- frame{Event: errorEvent, Data: data}:
	default:
	}
}

// writePump is the only writer of the socket. It stops once the sink is closed.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case e := <-c.sink.Events():
			out, err := encode(e)
			if err != nil {
				c.log.Error("Event encoding failed", "event", e.Name(), "error", err)
				continue
			}
			if err := c.write(out); err != nil {
				return
			}
		case out := <-c.replies:
			if err := c.write(out); err != nil {
				return
			}
		case <-c.sink.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *client) write(out frame) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(out); err != nil {
		c.log.Debug("WebSocket write failed", "error", err)
		return err
	}
	return nil
}

// encode wraps the event payload the way clients expect it: the populated
// note or notification itself, under the event name.
func encode(e event.Event) (frame, error) {
	var payload any
	switch ev := e.(type) {
	case event.NewNote:
		payload = ev.Note
	case event.NewNotification:
		payload = ev.Notification
	default:
		payload = e
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return frame{}, err
	}
	return frame{Event: string(e.Name()), Data: data}, nil
}
