//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../mocks/mock_repository.go -package=mocks
package repositories

import (
	"candidate-notes/domain"
	"context"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, name, email, hashedPassword string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByID(ctx context.Context, id domain.UserID) (domain.User, error)
	// FindUserByName resolves an exact display name. When several users share
	// the name, the first one created wins.
	FindUserByName(ctx context.Context, name string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type ICandidateRepository interface {
	CreateCandidate(ctx context.Context, name, email string) (domain.Candidate, error)
	GetCandidate(ctx context.Context, id string) (domain.Candidate, error)
	ListCandidates(ctx context.Context) ([]domain.Candidate, error)
}

type INoteRepository interface {
	CreateNote(ctx context.Context, draft domain.NoteDraft) (domain.Note, error)
	GetNote(ctx context.Context, id string) (domain.Note, error)
	// GetNotes returns the notes of a candidate, oldest first.
	GetNotes(ctx context.Context, candidateID string) ([]domain.Note, error)
}

type INotificationRepository interface {
	CreateNotification(ctx context.Context, recipientID domain.UserID, noteID string) (domain.Notification, error)
	GetNotification(ctx context.Context, id string) (domain.Notification, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context, userID domain.UserID) error
	// GetNotifications returns the notifications of a user, newest first.
	GetNotifications(ctx context.Context, userID domain.UserID) ([]domain.Notification, error)
}

// Store groups the repositories of one backend.
type Store struct {
	Users         IUserRepository
	Candidates    ICandidateRepository
	Notes         INoteRepository
	Notifications INotificationRepository
	Close         func() error
}
