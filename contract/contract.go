//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"candidate-notes/domain"
	"candidate-notes/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the outbound side of one live connection.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// IGatekeeper admits a connection or a request by validating its credential.
type IGatekeeper interface {
	Validate(ctx context.Context, credential string) (domain.User, error)
}

// IBroadcaster delivers an event to every connection joined to a room.
type IBroadcaster interface {
	Broadcast(ctx context.Context, roomID domain.RoomID, e event.Event) []domain.ConnectionID
}

type IDispatcher interface {
	OnNoteCreated(ctx context.Context, draft domain.NoteDraft) (domain.PopulatedNote, error)
}

// IHub is the lifecycle surface the transport layer drives.
type IHub interface {
	OnConnect(ctx context.Context, credential, clientDescriptor string, sink EventSink) (domain.ConnectionID, domain.User, error)
	OnDisconnect(connID domain.ConnectionID)
	JoinCandidateRoom(connID domain.ConnectionID, candidateID string) error
	LeaveCandidateRoom(connID domain.ConnectionID, candidateID string)
	JoinOwnRoom(connID domain.ConnectionID, claimed domain.UserID) error
	LeaveOwnRoom(connID domain.ConnectionID, claimed domain.UserID) error
}

// ICredentialTracker keeps the bookkeeping of issued credentials.
type ICredentialTracker interface {
	TrackCredential(userID domain.UserID, clientDescriptor string, issuedAt time.Time)
	ForgetCredential(userID domain.UserID) bool
}
