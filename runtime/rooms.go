package runtime

import (
	"candidate-notes/contract"
	"candidate-notes/domain"
	"candidate-notes/domain/event"
	"candidate-notes/errors"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
)

// RoomTable tracks which connections are joined to which room.
//
// Membership mutation and the membership snapshot taken by Broadcast are
// mutually exclusive. Teardown (Evict) removes a connection from every room
// and from the session registry in one critical section, so a broadcast sees
// a connection either fully alive or fully gone.
//
// Lock order is rooms then sessions; the session registry never calls back here.
type RoomTable struct {
	mu          sync.RWMutex
	log         *slog.Logger
	sessions    *SessionRegistry
	members     map[domain.RoomID]Set[domain.ConnectionID] // room -> connections
	memberships map[domain.ConnectionID]Set[domain.RoomID] // connection -> rooms
	sinkTimeout time.Duration
}

func NewRoomTable(log *slog.Logger, sessions *SessionRegistry, sinkTimeout time.Duration) *RoomTable {
	return &RoomTable{
		log:         log,
		sessions:    sessions,
		members:     make(map[domain.RoomID]Set[domain.ConnectionID]),
		memberships: make(map[domain.ConnectionID]Set[domain.RoomID]),
		sinkTimeout: sinkTimeout,
	}
}

// Join adds the connection to the room, creating the room on the fly.
// A private room may only be joined by a connection of the identity it is named after.
// Joining with a connection that is not registered is a no-op.
func (t *RoomTable) Join(connID domain.ConnectionID, roomID domain.RoomID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	session, ok := t.sessions.Lookup(connID)
	if !ok {
		t.log.Debug("Join ignored, connection is gone", "connection_id", connID, "room_id", roomID)
		return nil
	}

	if roomID.Kind() == domain.RoomPrivate {
		owner, _ := roomID.Owner()
		if owner != session.UserID {
			t.log.Error("Attempt to join another user's room",
				"connection_id", connID,
				"user_id", session.UserID,
				"room_id", roomID)
			return errors.ErrAuthorizationDenied
		}
	}

	if _, ok := t.members[roomID]; !ok {
		t.members[roomID] = make(Set[domain.ConnectionID])
	}
	t.members[roomID][connID] = struct{}{}

	if _, ok := t.memberships[connID]; !ok {
		t.memberships[connID] = make(Set[domain.RoomID])
	}
	t.memberships[connID][roomID] = struct{}{}

	t.log.Debug("Connection joined room", "connection_id", connID, "user_id", session.UserID, "room_id", roomID)
	return nil
}

// Leave removes the connection from the room. Absent memberships are ignored.
func (t *RoomTable) Leave(connID domain.ConnectionID, roomID domain.RoomID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.leaveLocked(connID, roomID)
}

// LeaveAll removes the connection from every room it belongs to.
func (t *RoomTable) LeaveAll(connID domain.ConnectionID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.leaveAllLocked(connID)
}

// Evict tears a connection down: every membership and its registry entry are
// removed atomically with respect to Broadcast. Calling it twice is a no-op.
func (t *RoomTable) Evict(connID domain.ConnectionID) (Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.leaveAllLocked(connID)
	return t.sessions.Unregister(connID)
}

func (t *RoomTable) leaveAllLocked(connID domain.ConnectionID) {
	for roomID := range t.memberships[connID] {
		t.leaveLocked(connID, roomID)
	}
}

func (t *RoomTable) leaveLocked(connID domain.ConnectionID, roomID domain.RoomID) {
	if members, ok := t.members[roomID]; ok {
		delete(members, connID)
		// If no one is left in the room, remove the room entry entirely
		if len(members) == 0 {
			delete(t.members, roomID)
		}
	}
	if rooms, ok := t.memberships[connID]; ok {
		delete(rooms, roomID)
		if len(rooms) == 0 {
			delete(t.memberships, connID)
		}
	}
}

type target struct {
	connID domain.ConnectionID
	sink   contract.EventSink
}

// Broadcast delivers the event to the members of the room as observed when the
// call starts. Connections joining afterwards do not receive it. Delivery happens
// outside the lock, one member after the other, so each connection sees
// broadcasts in the order they were issued.
// It returns the connections the event was handed to.
func (t *RoomTable) Broadcast(ctx context.Context, roomID domain.RoomID, e event.Event) []domain.ConnectionID {
	targets := t.snapshot(roomID)
	if len(targets) == 0 {
		return nil
	}

	delivered := make([]domain.ConnectionID, 0, len(targets))
	for _, tg := range targets {
		sinkCtx, cancel := context.WithTimeout(ctx, t.sinkTimeout)
		err := tg.sink.Consume(sinkCtx, e)
		cancel()
		if err != nil {
			t.log.Warn("Event not delivered",
				"connection_id", tg.connID,
				"room_id", roomID,
				"event", e.Name(),
				"error", err)
			continue
		}
		delivered = append(delivered, tg.connID)
	}
	return delivered
}

func (t *RoomTable) snapshot(roomID domain.RoomID) []target {
	t.mu.RLock()
	defer t.mu.RUnlock()

	members, ok := t.members[roomID]
	if !ok {
		return nil
	}
	targets := make([]target, 0, len(members))
	for connID := range members {
		if session, exists := t.sessions.Lookup(connID); exists && session.Sink != nil {
			targets = append(targets, target{connID: connID, sink: session.Sink})
		}
	}
	return targets
}

// Members returns a snapshot of the connections joined to the room.
func (t *RoomTable) Members(roomID domain.RoomID) []domain.ConnectionID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return lo.Keys(t.members[roomID])
}

// RoomsOf returns a snapshot of the rooms the connection is joined to.
func (t *RoomTable) RoomsOf(connID domain.ConnectionID) []domain.RoomID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return lo.Keys(t.memberships[connID])
}

// RoomCount is the number of rooms with at least one member.
func (t *RoomTable) RoomCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.members)
}
