package runtime

import (
	"candidate-notes/contract"
	"candidate-notes/domain"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Set[K comparable] map[K]struct{}

// Session is one admitted connection.
type Session struct {
	ConnectionID     domain.ConnectionID
	UserID           domain.UserID
	ClientDescriptor string
	EstablishedAt    time.Time
	Sink             contract.EventSink
}

// CredentialRecord is the bookkeeping kept for the last credential issued to a user.
type CredentialRecord struct {
	UserID           domain.UserID
	ClientDescriptor string
	IssuedAt         time.Time
}

// SessionRegistry tracks, per identity, every live connection it owns.
// An identity may own any number of connections at once; a new one never
// invalidates the others.
type SessionRegistry struct {
	mu          sync.RWMutex
	log         *slog.Logger
	now         func() time.Time
	lifetime    time.Duration
	sessions    map[domain.ConnectionID]Session            // connection -> session
	byUser      map[domain.UserID]Set[domain.ConnectionID] // user -> connections
	credentials map[domain.UserID]CredentialRecord
}

// NewSessionRegistry builds an empty registry. credentialLifetime bounds how long
// credential bookkeeping survives without an explicit logout.
func NewSessionRegistry(log *slog.Logger, credentialLifetime time.Duration) *SessionRegistry {
	return &SessionRegistry{
		log:         log,
		now:         time.Now,
		lifetime:    credentialLifetime,
		sessions:    make(map[domain.ConnectionID]Session),
		byUser:      make(map[domain.UserID]Set[domain.ConnectionID]),
		credentials: make(map[domain.UserID]CredentialRecord),
	}
}

// Register records a new connection for an already validated identity and returns its id.
func (r *SessionRegistry) Register(userID domain.UserID, clientDescriptor string, sink contract.EventSink) domain.ConnectionID {
	connID := domain.ConnectionID(uuid.NewString())

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[connID] = Session{
		ConnectionID:     connID,
		UserID:           userID,
		ClientDescriptor: clientDescriptor,
		EstablishedAt:    r.now().UTC(),
		Sink:             sink,
	}
	if _, ok := r.byUser[userID]; !ok {
		r.byUser[userID] = make(Set[domain.ConnectionID])
	}
	if existing := len(r.byUser[userID]); existing > 0 {
		r.log.Info("User already has active connections", "user_id", userID, "count", existing)
	}
	r.byUser[userID][connID] = struct{}{}

	r.log.Debug("Connection registered",
		"connection_id", connID,
		"user_id", userID,
		"client", clientDescriptor,
		"connections", len(r.byUser[userID]),
		"online_users", len(r.byUser))
	return connID
}

// Unregister removes the connection. Unknown ids are ignored.
// It returns the removed session, if any.
func (r *SessionRegistry) Unregister(connID domain.ConnectionID) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unregisterLocked(connID)
}

func (r *SessionRegistry) unregisterLocked(connID domain.ConnectionID) (Session, bool) {
	session, ok := r.sessions[connID]
	if !ok {
		return Session{}, false
	}
	delete(r.sessions, connID)

	if conns, ok := r.byUser[session.UserID]; ok {
		delete(conns, connID)
		// Last connection gone: the user is offline
		if len(conns) == 0 {
			delete(r.byUser, session.UserID)
			r.log.Debug("User has no more active connections", "user_id", session.UserID)
		}
	}
	return session, true
}

func (r *SessionRegistry) Lookup(connID domain.ConnectionID) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[connID]
	return session, ok
}

// ConnectionsOf returns a snapshot of the connections owned by userID.
func (r *SessionRegistry) ConnectionsOf(userID domain.UserID) []domain.ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.byUser[userID])
}

func (r *SessionRegistry) Count(userID domain.UserID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID])
}

// OnlineUsers is the number of identities with at least one live connection.
func (r *SessionRegistry) OnlineUsers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser)
}

// TrackCredential records the credential just issued to userID, replacing any previous record.
func (r *SessionRegistry) TrackCredential(userID domain.UserID, clientDescriptor string, issuedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.credentials[userID]; ok {
		r.log.Info("User already has an active session, creating new one", "user_id", userID)
	}
	r.credentials[userID] = CredentialRecord{
		UserID:           userID,
		ClientDescriptor: clientDescriptor,
		IssuedAt:         issuedAt,
	}
}

func (r *SessionRegistry) Credential(userID domain.UserID) (CredentialRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.credentials[userID]
	return record, ok
}

// ForgetCredential drops the credential bookkeeping of userID. Live connections are untouched.
func (r *SessionRegistry) ForgetCredential(userID domain.UserID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.credentials[userID]
	delete(r.credentials, userID)
	return ok
}

// SweepCredentials removes credential records older than the credential lifetime.
// Live connections are never evicted here: they were validated at admission.
func (r *SessionRegistry) SweepCredentials(now time.Time) []domain.UserID {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []domain.UserID
	for userID, record := range r.credentials {
		if now.Sub(record.IssuedAt) > r.lifetime {
			delete(r.credentials, userID)
			expired = append(expired, userID)
		}
	}
	for _, userID := range expired {
		r.log.Info("Cleaned up expired session", "user_id", userID)
	}
	return expired
}
