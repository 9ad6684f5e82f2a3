/*
Package livechat implements the two-party chat relay between site visitors and
the pastor console.

This file defines the Client struct wrapping one websocket connection. It runs
the read/write pumps, feeds inbound chat_message frames into the Registry, and
implements the Outbox interface used for outbound delivery.
*/
package livechat

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/logx"
)

const (
	// timeout for writing a frame to the websocket connection.
	writeWait = 10 * time.Second

	// maximum time the server waits for a Pong from the client.
	pongWait = 60 * time.Second

	// frequency of server Ping frames.
	pingPeriod = (pongWait * 9) / 10

	// maximum allowed size (in bytes) of an inbound frame.
	maxMessageSize = 8192

	// capacity of the outbound send queue per connection.
	sendQueueSize = 256
)

// Client is one active websocket connection registered with the Registry.
type Client struct {
	registry *Registry

	// underlying websocket connection.
	conn *websocket.Conn

	// id is the transport-assigned connection id, fixed for the session.
	id string

	// send queues marshaled frames waiting to go out to the peer.
	send chan []byte

	// closeSend guards against double-closing the send channel.
	closeSend sync.Once

	logger zerolog.Logger
}

// NewClient constructs a Client for an upgraded websocket connection.
func NewClient(registry *Registry, conn *websocket.Conn, connectionID string) *Client {
	clientLogger := logx.Logger().With().
		Str("component", "livechat").
		Str("connection_id", connectionID).
		Logger()

	return &Client{
		registry: registry,
		conn:     conn,
		id:       connectionID,
		send:     make(chan []byte, sendQueueSize),
		logger:   clientLogger,
	}
}

// Send implements Outbox. It marshals the event and enqueues it without
// blocking; a full queue drops the frame, keeping delivery best-effort from
// the registry's perspective.
func (c *Client) Send(ev Event) {
	frame, err := json.Marshal(ev)
	if err != nil {
		c.logger.Error().Err(err).Str("event", ev.Event).Msg("Error marshaling event for client")
		return
	}

	select {
	case c.send <- frame:
	default:
		c.logger.Warn().Int("queue_len", len(c.send)).Str("event", ev.Event).Msg("Client send queue full, dropping event")
	}
}

// ReadPump reads frames from the websocket until the connection dies, feeding
// chat messages into the registry. It performs the disconnect cleanup on exit,
// which makes the transport's close/timeout/failure cases all surface as one
// disconnect event.
func (c *Client) ReadPump() {
	defer c.cleanupOnDisconnect()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info().Err(err).Msg("Error reading frame (client close/going away)")
			}
			break
		}

		c.processInboundFrame(frame)
	}
}

// cleanupOnDisconnect unregisters the connection and tears down the transport.
// The order matters: after Disconnect returns, the registry can no longer
// route to this client, so closing the send channel is safe.
func (c *Client) cleanupOnDisconnect() {
	c.registry.Disconnect(c.id)

	c.closeSend.Do(func() { close(c.send) })

	if err := c.conn.Close(); err != nil {
		c.logger.Debug().Err(err).Msg("Client connection close error")
	}
}

// processInboundFrame parses one raw frame. Only chat_message is accepted
// from clients; everything else is logged and ignored.
func (c *Client) processInboundFrame(frame []byte) {
	var inbound struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data,omitempty"`
	}

	if err := json.Unmarshal(frame, &inbound); err != nil {
		c.logger.Warn().Err(err).Bytes("frame", frame).Msg("Client sent invalid JSON")
		return
	}

	if inbound.Event != EventChatMessage {
		c.logger.Warn().Str("event", inbound.Event).Msg("Client sent unsupported event")
		return
	}

	var payload ChatPayload
	if err := json.Unmarshal(inbound.Data, &payload); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid chat_message payload")
		return
	}

	c.registry.HandleMessage(c.id, payload)
}

// WritePump drains the send queue to the websocket and keeps the connection
// alive with periodic pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()

		if err := c.conn.Close(); err != nil {
			c.logger.Debug().Err(err).Msg("Client connection close error in WritePump")
		}
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if !c.writeQueuedFrame(frame, ok) {
				return
			}

		case <-ticker.C:
			if !c.writePing() {
				return
			}
		}
	}
}

// writeQueuedFrame writes one queued frame. Returns false when the pump
// should terminate.
func (c *Client) writeQueuedFrame(frame []byte, ok bool) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline")
		return false
	}

	if !ok {
		if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
			c.logger.Debug().Err(err).Msg("Error writing close message")
		}
		return false
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		c.logger.Error().Err(err).Msg("Error writing frame")
		return false
	}

	return true
}

// writePing sends a keepalive Ping. Returns false when the pump should
// terminate due to a write failure.
func (c *Client) writePing() bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
		return false
	}

	if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		c.logger.Error().Err(err).Msg("Error writing ping")
		return false
	}

	return true
}
