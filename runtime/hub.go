package runtime

import (
	"candidate-notes/contract"
	"candidate-notes/domain"
	"candidate-notes/errors"
	"context"
	"log/slog"
)

type closer interface {
	Close()
}

// Hub is what the transport layer drives: admission, teardown and
// client-initiated room operations of live connections.
type Hub struct {
	log        *slog.Logger
	gatekeeper contract.IGatekeeper
	sessions   *SessionRegistry
	rooms      *RoomTable
}

func NewHub(log *slog.Logger, gatekeeper contract.IGatekeeper, sessions *SessionRegistry, rooms *RoomTable) *Hub {
	return &Hub{log: log, gatekeeper: gatekeeper, sessions: sessions, rooms: rooms}
}

// OnConnect validates the credential once and admits the connection.
// A rejected connection leaves no state behind.
func (h *Hub) OnConnect(ctx context.Context, credential, clientDescriptor string,
	sink contract.EventSink) (domain.ConnectionID, domain.User, error) {
	user, err := h.gatekeeper.Validate(ctx, credential)
	if err != nil {
		h.log.Warn("Connection rejected", "client", clientDescriptor, "error", err)
		return "", domain.User{}, err
	}

	connID := h.sessions.Register(user.ID, clientDescriptor, sink)
	h.log.Info("Connection admitted",
		"connection_id", connID,
		"user_id", user.ID,
		"user_name", user.Name,
		"client", clientDescriptor,
		"connections", h.sessions.Count(user.ID))
	return connID, user, nil
}

// OnDisconnect tears the connection down. Whatever triggers it (transport
// closure or eviction), only the first call has an effect.
func (h *Hub) OnDisconnect(connID domain.ConnectionID) {
	session, ok := h.rooms.Evict(connID)
	if !ok {
		return
	}
	if c, ok := session.Sink.(closer); ok {
		c.Close()
	}
	h.log.Info("Connection closed",
		"connection_id", connID,
		"user_id", session.UserID,
		"remaining_connections", h.sessions.Count(session.UserID),
		"online_users", h.sessions.OnlineUsers())
}

// Evict is a server-side disconnect.
func (h *Hub) Evict(connID domain.ConnectionID) {
	h.OnDisconnect(connID)
}

// EvictUser disconnects every live connection of userID.
func (h *Hub) EvictUser(userID domain.UserID) int {
	conns := h.sessions.ConnectionsOf(userID)
	for _, connID := range conns {
		h.OnDisconnect(connID)
	}
	return len(conns)
}

func (h *Hub) JoinCandidateRoom(connID domain.ConnectionID, candidateID string) error {
	if candidateID == "" {
		return errors.ErrInvalidRequest
	}
	return h.rooms.Join(connID, domain.CandidateRoom(candidateID))
}

func (h *Hub) LeaveCandidateRoom(connID domain.ConnectionID, candidateID string) {
	h.rooms.Leave(connID, domain.CandidateRoom(candidateID))
}

// JoinOwnRoom subscribes the connection to the private room of claimed.
// The claim must be the identity owning the connection.
func (h *Hub) JoinOwnRoom(connID domain.ConnectionID, claimed domain.UserID) error {
	if err := h.checkClaim(connID, claimed); err != nil {
		return err
	}
	return h.rooms.Join(connID, domain.PrivateRoom(claimed))
}

func (h *Hub) LeaveOwnRoom(connID domain.ConnectionID, claimed domain.UserID) error {
	if err := h.checkClaim(connID, claimed); err != nil {
		return err
	}
	h.rooms.Leave(connID, domain.PrivateRoom(claimed))
	return nil
}

func (h *Hub) checkClaim(connID domain.ConnectionID, claimed domain.UserID) error {
	session, ok := h.sessions.Lookup(connID)
	if !ok {
		return nil
	}
	if session.UserID != claimed {
		h.log.Error("Attempt to use another user's room",
			"connection_id", connID,
			"user_id", session.UserID,
			"claimed_user_id", claimed)
		return errors.ErrAuthorizationDenied
	}
	return nil
}
