/*
Package livechat implements the two-party chat relay between site visitors and
the pastor console.

This file defines the Registry, the single process-wide table of live
connections. It owns the pastor online flag, assigns each visitor its inbox
room, and routes chat events between the pastor console and the right visitor.
*/
package livechat

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/logx"
)

// PastorRoom is the shared delivery address of the pastor console.
const PastorRoom = "pastor_room"

// AnonymousName is substituted when a visitor connects without a name.
const AnonymousName = "Anonymous"

// Role is the connection role, fixed at connect time.
type Role int

const (
	// RoleVisitor is an anonymous or self-identified site visitor.
	RoleVisitor Role = iota

	// RolePastor is the privileged console role allowed to answer visitor chats.
	RolePastor
)

// Meta carries the visitor-supplied identity fields from the connect request.
// All values are untrusted strings; missing values degrade to defaults.
type Meta struct {
	Name  string
	Email string
	Phone string
}

// Outbox is the delivery target for one connection. Send must not block:
// implementations queue or drop. Tests substitute an in-memory double.
type Outbox interface {
	Send(ev Event)
}

// session is one registered connection. Entries live exactly from Connect to
// Disconnect; nothing routes to a removed session.
type session struct {
	id    string
	role  Role
	name  string
	email string
	phone string

	// room is the logical inbox address: "user_<id>" for visitors,
	// PastorRoom for pastor connections.
	room string

	out Outbox
}

// VisitorRoom derives a visitor's unique inbox room from its connection id.
// Connection ids are unique among live connections, so rooms never collide.
func VisitorRoom(connectionID string) string {
	return "user_" + connectionID
}

// Registry tracks every live chat connection and routes events between them.
// One mutex serializes every read and write; there is exactly one pastor
// online flag and one connection table per process, and none of it survives
// a restart.
type Registry struct {
	mu sync.Mutex

	sessions map[string]*session

	// pastors holds the ids of registered pastor connections in connect
	// order. The last entry is the current routing target for visitor
	// traffic (last-connect-wins).
	pastors []string

	logger zerolog.Logger
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*session),
		logger:   logx.Logger().With().Str("component", "livechat").Logger(),
	}
}

// Connect registers a new connection. The transport layer guarantees the id
// is fresh; a duplicate id is a transport contract violation and is not
// handled here.
//
// A pastor connect marks the pastor online and broadcasts the status to every
// registered connection. A visitor connect is answered with the current
// pastor status, and the pastor console (if any) is told about the new
// visitor so it can populate its list.
func (r *Registry) Connect(id string, role Role, meta Meta, out Outbox) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if role == RolePastor {
		r.sessions[id] = &session{id: id, role: RolePastor, room: PastorRoom, out: out}
		r.pastors = append(r.pastors, id)

		r.broadcastLocked(Event{Event: EventPastorStatus, Data: StatusPayload{Status: StatusOnline}})
		r.logger.Info().Str("connection_id", id).Msg("Pastor connected")
		return
	}

	name := meta.Name
	if name == "" {
		name = AnonymousName
	}

	s := &session{
		id:    id,
		role:  RoleVisitor,
		name:  name,
		email: meta.Email,
		phone: meta.Phone,
		room:  VisitorRoom(id),
		out:   out,
	}
	r.sessions[id] = s

	status := StatusOffline
	if len(r.pastors) > 0 {
		status = StatusOnline
	}
	s.out.Send(Event{Event: EventPastorStatus, Data: StatusPayload{Status: status}})

	if pastor := r.currentPastorLocked(); pastor != nil {
		pastor.out.Send(Event{
			Event: EventUserConnected,
			Data: UserConnectedPayload{
				UserID: s.id,
				Name:   s.name,
				Email:  s.email,
				Phone:  s.phone,
				Room:   s.room,
				Status: "connected",
			},
		})
	}

	r.logger.Info().Str("connection_id", id).Str("room", s.room).Msg("Visitor connected")
}

// Disconnect removes the connection from the registry. It is idempotent:
// disconnect events may trail a connection that was already evicted.
//
// When the last pastor connection leaves, the offline status is broadcast to
// every remaining connection. When a visitor leaves while a pastor is online,
// the console is told so it can drop the visitor from its list.
func (r *Registry) Disconnect(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return
	}
	delete(r.sessions, id)

	if s.role == RolePastor {
		r.removePastorLocked(id)

		if len(r.pastors) == 0 {
			r.broadcastLocked(Event{Event: EventPastorStatus, Data: StatusPayload{Status: StatusOffline}})
		}
		r.logger.Info().Str("connection_id", id).Msg("Pastor disconnected")
		return
	}

	if pastor := r.currentPastorLocked(); pastor != nil {
		pastor.out.Send(Event{
			Event: EventUserDisconnected,
			Data: UserDisconnectedPayload{
				UserID: s.id,
				Name:   s.name,
				Status: "disconnected",
			},
		})
	}
	r.logger.Info().Str("connection_id", id).Msg("Visitor disconnected")
}

// HandleMessage routes one chat message from the named sender.
//
// Pastor messages need a registered target visitor: the message goes to the
// visitor's inbox and an enriched echo copy returns to the console. Visitor
// messages need an online pastor: the message goes to the console and an
// identical echo returns to the visitor. Anything unroutable is dropped
// silently; this relay is best-effort and never queues.
func (r *Registry) HandleMessage(senderID string, payload ChatPayload) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sender, ok := r.sessions[senderID]
	if !ok {
		// Message raced a disconnect.
		return
	}

	if sender.role == RolePastor {
		target, ok := r.sessions[payload.TargetUserID]
		if !ok || target.role != RoleVisitor {
			r.logger.Warn().
				Str("connection_id", senderID).
				Str("target_user_id", payload.TargetUserID).
				Msg("Pastor message dropped: target visitor not registered")
			return
		}

		target.out.Send(Event{
			Event: EventChatMessage,
			Data: PastorMessage{
				Msg:       payload.Msg,
				Timestamp: payload.Timestamp,
				Sender:    "Pastor",
				UserType:  "pastor",
			},
		})

		if pastor := r.currentPastorLocked(); pastor != nil {
			pastor.out.Send(Event{
				Event: EventChatMessage,
				Data: PastorMessage{
					Msg:          payload.Msg,
					Timestamp:    payload.Timestamp,
					Sender:       "Pastor",
					UserType:     "pastor",
					Recipient:    target.name,
					TargetUserID: target.id,
				},
			})
		}

		r.logger.Info().Str("target_user_id", target.id).Msg("Pastor message delivered")
		return
	}

	pastor := r.currentPastorLocked()
	if pastor == nil {
		r.logger.Info().Str("connection_id", senderID).Msg("Visitor message dropped: pastor offline")
		return
	}

	msg := VisitorMessage{
		Msg:       payload.Msg,
		Timestamp: payload.Timestamp,
		Sender:    sender.name,
		UserType:  "user",
		UserID:    sender.id,
		Email:     sender.email,
		Phone:     sender.phone,
	}

	pastor.out.Send(Event{Event: EventChatMessage, Data: msg})
	sender.out.Send(Event{Event: EventChatMessage, Data: msg})

	r.logger.Info().Str("connection_id", senderID).Msg("Visitor message forwarded to pastor")
}

// PastorOnline reports whether at least one pastor connection is registered.
func (r *Registry) PastorOnline() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pastors) > 0
}

// currentPastorLocked returns the most recently connected live pastor
// session, or nil. Caller must hold r.mu.
func (r *Registry) currentPastorLocked() *session {
	if len(r.pastors) == 0 {
		return nil
	}
	return r.sessions[r.pastors[len(r.pastors)-1]]
}

// removePastorLocked drops id from the pastor connect-order list. Caller must
// hold r.mu.
func (r *Registry) removePastorLocked(id string) {
	for i, pid := range r.pastors {
		if pid == id {
			r.pastors = append(r.pastors[:i], r.pastors[i+1:]...)
			return
		}
	}
}

// broadcastLocked delivers ev to every registered connection. Caller must
// hold r.mu. Delivery is fire-and-forget; a send that fails because the peer
// vanished never feeds back into registry state.
func (r *Registry) broadcastLocked(ev Event) {
	for _, s := range r.sessions {
		s.out.Send(ev)
	}
}
