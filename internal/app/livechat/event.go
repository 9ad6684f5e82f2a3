/*
Package livechat implements the two-party chat relay between site visitors and
the pastor console.

This file defines the websocket event envelope and the payloads exchanged over
it. Field names match the browser clients and are part of the wire contract.
*/
package livechat

// Event names carried in the envelope.
const (
	EventPastorStatus     = "pastor_status"
	EventUserConnected    = "user_connected"
	EventUserDisconnected = "user_disconnected"
	EventChatMessage      = "chat_message"
)

// Pastor status values.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Event is the JSON envelope for every frame sent over the chat transport.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// StatusPayload is broadcast whenever the pastor's availability changes, and
// unicast to each visitor right after it connects.
type StatusPayload struct {
	Status string `json:"status"`
}

// UserConnectedPayload notifies the pastor console that a visitor joined.
type UserConnectedPayload struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Room   string `json:"room"`
	Status string `json:"status"`
}

// UserDisconnectedPayload notifies the pastor console that a visitor left.
type UserDisconnectedPayload struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ChatPayload is the inbound chat_message body. Msg and Timestamp are
// client-supplied and passed through untouched; TargetUserID is required only
// on messages sent from the pastor console.
type ChatPayload struct {
	Msg          string `json:"msg"`
	Timestamp    string `json:"timestamp"`
	TargetUserID string `json:"target_user_id,omitempty"`
}

// VisitorMessage is the outbound form of a visitor's message: delivered to the
// pastor console and echoed back to the visitor with identical content. Email
// and phone stay present even when empty so the console list renders stably.
type VisitorMessage struct {
	Msg       string `json:"msg"`
	Timestamp string `json:"timestamp"`
	Sender    string `json:"sender"`
	UserType  string `json:"user_type"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// PastorMessage is the outbound form of a pastor's message. The copy unicast
// to the target visitor omits Recipient and TargetUserID; the echo copy sent
// back to the console carries both so its UI can attribute the message.
type PastorMessage struct {
	Msg          string `json:"msg"`
	Timestamp    string `json:"timestamp"`
	Sender       string `json:"sender"`
	UserType     string `json:"user_type"`
	Recipient    string `json:"recipient,omitempty"`
	TargetUserID string `json:"target_user_id,omitempty"`
}
