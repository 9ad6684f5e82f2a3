package livechat

import (
	"sync"
	"testing"
)

// recorder is an in-memory Outbox capturing every delivered event.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Send(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recorder) byName(name string) []Event {
	var out []Event
	for _, ev := range r.all() {
		if ev.Event == name {
			out = append(out, ev)
		}
	}
	return out
}

func (r *recorder) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func lastStatus(t *testing.T, r *recorder) string {
	t.Helper()
	statuses := r.byName(EventPastorStatus)
	if len(statuses) == 0 {
		t.Fatal("no pastor_status events delivered")
	}
	payload, ok := statuses[len(statuses)-1].Data.(StatusPayload)
	if !ok {
		t.Fatalf("pastor_status carried %T, want StatusPayload", statuses[len(statuses)-1].Data)
	}
	return payload.Status
}

func TestPastorStatusFollowsRegistration(t *testing.T) {
	reg := NewRegistry()
	visitor := &recorder{}
	reg.Connect("v1", RoleVisitor, Meta{Name: "Lee"}, visitor)

	if reg.PastorOnline() {
		t.Fatal("pastor reported online with no pastor connection")
	}
	if got := lastStatus(t, visitor); got != StatusOffline {
		t.Fatalf("visitor got status %q on connect, want offline", got)
	}

	p1 := &recorder{}
	reg.Connect("p1", RolePastor, Meta{}, p1)
	if !reg.PastorOnline() {
		t.Fatal("pastor not reported online after pastor connect")
	}
	if got := lastStatus(t, visitor); got != StatusOnline {
		t.Fatalf("visitor saw status %q after pastor connect, want online", got)
	}

	// A second pastor connection supersedes the first as routing target but
	// both stay registered.
	p2 := &recorder{}
	reg.Connect("p2", RolePastor, Meta{}, p2)
	visitor.clear()
	p1.clear()
	p2.clear()

	reg.HandleMessage("v1", ChatPayload{Msg: "hi", Timestamp: "t0"})
	if got := len(p2.byName(EventChatMessage)); got != 1 {
		t.Fatalf("newest pastor received %d chat messages, want 1", got)
	}
	if got := len(p1.byName(EventChatMessage)); got != 0 {
		t.Fatalf("superseded pastor received %d chat messages, want 0", got)
	}

	// When the newest pastor leaves, the older live pastor becomes the
	// target and the flag stays up with no offline broadcast.
	visitor.clear()
	p1.clear()
	reg.Disconnect("p2")
	if !reg.PastorOnline() {
		t.Fatal("pastor flag dropped while an older pastor connection is still live")
	}
	if got := len(visitor.byName(EventPastorStatus)); got != 0 {
		t.Fatalf("visitor received %d status broadcasts on non-final pastor disconnect, want 0", got)
	}

	reg.HandleMessage("v1", ChatPayload{Msg: "again", Timestamp: "t1"})
	if got := len(p1.byName(EventChatMessage)); got != 1 {
		t.Fatalf("promoted pastor received %d chat messages, want 1", got)
	}

	// The last pastor leaving flips the flag and broadcasts offline.
	reg.Disconnect("p1")
	if reg.PastorOnline() {
		t.Fatal("pastor still reported online after last pastor disconnect")
	}
	if got := lastStatus(t, visitor); got != StatusOffline {
		t.Fatalf("visitor saw status %q after last pastor disconnect, want offline", got)
	}
}

func TestVisitorMessageEchoedExactlyOnce(t *testing.T) {
	reg := NewRegistry()
	pastor := &recorder{}
	visitor := &recorder{}
	reg.Connect("p1", RolePastor, Meta{}, pastor)
	reg.Connect("v1", RoleVisitor, Meta{Name: "Kim", Email: "k@x.com"}, visitor)
	pastor.clear()
	visitor.clear()

	reg.HandleMessage("v1", ChatPayload{Msg: "Hello", Timestamp: "t1"})

	toPastor := pastor.byName(EventChatMessage)
	toVisitor := visitor.byName(EventChatMessage)
	if len(toPastor) != 1 || len(toVisitor) != 1 {
		t.Fatalf("deliveries pastor=%d visitor=%d, want exactly 1 each", len(toPastor), len(toVisitor))
	}

	want := VisitorMessage{
		Msg:       "Hello",
		Timestamp: "t1",
		Sender:    "Kim",
		UserType:  "user",
		UserID:    "v1",
		Email:     "k@x.com",
		Phone:     "",
	}
	for _, ev := range []Event{toPastor[0], toVisitor[0]} {
		got, ok := ev.Data.(VisitorMessage)
		if !ok {
			t.Fatalf("chat_message carried %T, want VisitorMessage", ev.Data)
		}
		if got != want {
			t.Fatalf("chat_message payload = %+v, want %+v", got, want)
		}
	}
}

func TestPastorMessageRouting(t *testing.T) {
	reg := NewRegistry()
	pastor := &recorder{}
	v1 := &recorder{}
	v2 := &recorder{}
	reg.Connect("p1", RolePastor, Meta{}, pastor)
	reg.Connect("v1", RoleVisitor, Meta{Name: "Kim"}, v1)
	reg.Connect("v2", RoleVisitor, Meta{}, v2)
	pastor.clear()

	reg.HandleMessage("p1", ChatPayload{Msg: "Welcome", Timestamp: "t2", TargetUserID: "v1"})

	got := v1.byName(EventChatMessage)
	if len(got) != 1 {
		t.Fatalf("target visitor received %d messages, want 1", len(got))
	}
	visitorCopy := got[0].Data.(PastorMessage)
	if visitorCopy.Sender != "Pastor" || visitorCopy.UserType != "pastor" {
		t.Fatalf("visitor copy = %+v, want sender Pastor, user_type pastor", visitorCopy)
	}
	if visitorCopy.Recipient != "" || visitorCopy.TargetUserID != "" {
		t.Fatalf("visitor copy leaked console-only fields: %+v", visitorCopy)
	}

	echoes := pastor.byName(EventChatMessage)
	if len(echoes) != 1 {
		t.Fatalf("pastor received %d echo copies, want 1", len(echoes))
	}
	echo := echoes[0].Data.(PastorMessage)
	if echo.Recipient != "Kim" || echo.TargetUserID != "v1" {
		t.Fatalf("echo copy = %+v, want recipient Kim, target_user_id v1", echo)
	}
	if echo.Msg != "Welcome" || echo.Timestamp != "t2" {
		t.Fatalf("echo copy content = %+v, want msg/timestamp passed through", echo)
	}

	if got := len(v2.byName(EventChatMessage)); got != 0 {
		t.Fatalf("non-target visitor received %d messages, want 0", got)
	}
}

func TestPastorMessageDroppedForUnknownTarget(t *testing.T) {
	reg := NewRegistry()
	pastor := &recorder{}
	reg.Connect("p1", RolePastor, Meta{}, pastor)
	pastor.clear()

	reg.HandleMessage("p1", ChatPayload{Msg: "hi", Timestamp: "t1", TargetUserID: "ghost"})
	if got := len(pastor.all()); got != 0 {
		t.Fatalf("pastor received %d events for a dropped message, want 0", got)
	}

	// A pastor connection id is not a valid visitor target.
	p2 := &recorder{}
	reg.Connect("p2", RolePastor, Meta{}, p2)
	p2.clear()
	reg.HandleMessage("p2", ChatPayload{Msg: "hi", Timestamp: "t1", TargetUserID: "p1"})
	if got := len(p2.byName(EventChatMessage)); got != 0 {
		t.Fatalf("pastor received %d echoes for message targeting a pastor id, want 0", got)
	}
}

func TestVisitorMessageDroppedWhenPastorOffline(t *testing.T) {
	reg := NewRegistry()
	visitor := &recorder{}
	reg.Connect("v1", RoleVisitor, Meta{Name: "Kim"}, visitor)
	visitor.clear()

	reg.HandleMessage("v1", ChatPayload{Msg: "anyone?", Timestamp: "t1"})

	if got := len(visitor.all()); got != 0 {
		t.Fatalf("visitor received %d events while pastor offline, want 0 (no echo, no error)", got)
	}
}

func TestDisconnectCleanup(t *testing.T) {
	reg := NewRegistry()
	pastor := &recorder{}
	visitor := &recorder{}
	reg.Connect("p1", RolePastor, Meta{}, pastor)
	reg.Connect("v1", RoleVisitor, Meta{Name: "Kim"}, visitor)

	reg.Disconnect("v1")

	disc := pastor.byName(EventUserDisconnected)
	if len(disc) != 1 {
		t.Fatalf("pastor received %d user_disconnected events, want 1", len(disc))
	}
	payload := disc[0].Data.(UserDisconnectedPayload)
	if payload.UserID != "v1" || payload.Name != "Kim" || payload.Status != "disconnected" {
		t.Fatalf("user_disconnected payload = %+v", payload)
	}

	// Messages from or to the removed connection deliver nothing.
	pastor.clear()
	visitor.clear()
	reg.HandleMessage("v1", ChatPayload{Msg: "late", Timestamp: "t9"})
	reg.HandleMessage("p1", ChatPayload{Msg: "late", Timestamp: "t9", TargetUserID: "v1"})
	if got := len(pastor.all()) + len(visitor.all()); got != 0 {
		t.Fatalf("%d events delivered involving a removed connection, want 0", got)
	}
}

func TestDisconnectIdempotent(t *testing.T) {
	reg := NewRegistry()
	pastor := &recorder{}
	visitor := &recorder{}
	reg.Connect("p1", RolePastor, Meta{}, pastor)
	reg.Connect("v1", RoleVisitor, Meta{}, visitor)

	reg.Disconnect("p1")
	offline := len(visitor.byName(EventPastorStatus))

	reg.Disconnect("p1")
	if got := len(visitor.byName(EventPastorStatus)); got != offline {
		t.Fatalf("repeat disconnect produced %d extra status broadcasts", got-offline)
	}

	// Unknown ids are a no-op too.
	reg.Disconnect("never-registered")
}

// TestConnectSequenceScenario walks the visitor-then-pastor connect sequence
// end to end: status unicast, status broadcast, no retroactive visitor
// notification, then a full message round trip.
func TestConnectSequenceScenario(t *testing.T) {
	reg := NewRegistry()

	visitor := &recorder{}
	reg.Connect("v1", RoleVisitor, Meta{Name: "Kim", Email: "k@x.com"}, visitor)
	if got := lastStatus(t, visitor); got != StatusOffline {
		t.Fatalf("visitor got status %q before pastor connect, want offline", got)
	}

	pastor := &recorder{}
	reg.Connect("p1", RolePastor, Meta{}, pastor)
	if got := lastStatus(t, visitor); got != StatusOnline {
		t.Fatalf("visitor got status %q after pastor connect, want online", got)
	}

	// Visitors registered before the pastor do not fire user_connected
	// retroactively.
	if got := len(pastor.byName(EventUserConnected)); got != 0 {
		t.Fatalf("pastor received %d retroactive user_connected events, want 0", got)
	}

	// Visitors connecting afterwards do.
	v2 := &recorder{}
	reg.Connect("v2", RoleVisitor, Meta{}, v2)
	conns := pastor.byName(EventUserConnected)
	if len(conns) != 1 {
		t.Fatalf("pastor received %d user_connected events, want 1", len(conns))
	}
	info := conns[0].Data.(UserConnectedPayload)
	if info.UserID != "v2" || info.Name != AnonymousName || info.Room != VisitorRoom("v2") || info.Status != "connected" {
		t.Fatalf("user_connected payload = %+v", info)
	}

	pastor.clear()
	visitor.clear()
	reg.HandleMessage("v1", ChatPayload{Msg: "Hello", Timestamp: "t1"})

	want := VisitorMessage{
		Msg:       "Hello",
		Timestamp: "t1",
		Sender:    "Kim",
		UserType:  "user",
		UserID:    "v1",
		Email:     "k@x.com",
		Phone:     "",
	}
	if got := pastor.byName(EventChatMessage)[0].Data.(VisitorMessage); got != want {
		t.Fatalf("pastor delivery = %+v, want %+v", got, want)
	}
	if got := visitor.byName(EventChatMessage)[0].Data.(VisitorMessage); got != want {
		t.Fatalf("visitor echo = %+v, want %+v", got, want)
	}
}

func TestVisitorRoomDerivation(t *testing.T) {
	if VisitorRoom("abc") != "user_abc" {
		t.Fatalf("VisitorRoom(abc) = %q", VisitorRoom("abc"))
	}
	if VisitorRoom("a") == VisitorRoom("b") {
		t.Fatal("distinct connection ids must map to distinct rooms")
	}
}
