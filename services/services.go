package services

import (
	"candidate-notes/auth"
	"candidate-notes/domain"
	"context"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest, clientDescriptor string) (Session, error)
	Login(ctx context.Context, req auth.LoginRequest, clientDescriptor string) (Session, error)
	Logout(ctx context.Context, userID domain.UserID)
}

type INoteService interface {
	AddNote(ctx context.Context, draft domain.NoteDraft) (domain.PopulatedNote, error)
	GetNotes(ctx context.Context, candidateID string) ([]domain.PopulatedNote, error)
}

type INotificationService interface {
	GetNotifications(ctx context.Context, userID domain.UserID) ([]domain.PopulatedNotification, error)
	MarkAsRead(ctx context.Context, userID domain.UserID, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID domain.UserID) error
}

type ICandidateService interface {
	CreateCandidate(ctx context.Context, req CreateCandidateRequest) (domain.Candidate, error)
	ListCandidates(ctx context.Context) ([]domain.Candidate, error)
}

type IUserService interface {
	ListOtherUsers(ctx context.Context, callerID domain.UserID) ([]domain.User, error)
}
