package services

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"candidate-notes/mocks"
	"candidate-notes/repositories"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	owned := domain.Notification{ID: "n-1", RecipientID: "u-dana", NoteID: "note-1"}

	t.Run("should mark the recipient's notification", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		notifications := mocks.NewMockINotificationRepository(ctrl)
		svc := NewNotificationService(slog.Default(), repositories.Store{Notifications: notifications})

		notifications.EXPECT().GetNotification(gomock.Any(), "n-1").Return(owned, nil)
		notifications.EXPECT().MarkAsRead(gomock.Any(), "n-1").Return(nil)

		req.NoError(svc.MarkAsRead(ctx, "u-dana", "n-1"))
	})

	t.Run("should refuse someone else's notification", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		notifications := mocks.NewMockINotificationRepository(ctrl)
		svc := NewNotificationService(slog.Default(), repositories.Store{Notifications: notifications})

		notifications.EXPECT().GetNotification(gomock.Any(), "n-1").Return(owned, nil)
		notifications.EXPECT().MarkAsRead(gomock.Any(), gomock.Any()).Times(0)

		err := svc.MarkAsRead(ctx, "u-mallory", "n-1")

		req.ErrorIs(err, errors.ErrNotificationNotOwned)
		req.ErrorIs(err, errors.ErrAuthorizationDenied)
	})

	t.Run("should report an unknown notification", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		notifications := mocks.NewMockINotificationRepository(ctrl)
		svc := NewNotificationService(slog.Default(), repositories.Store{Notifications: notifications})

		notifications.EXPECT().GetNotification(gomock.Any(), "missing").Return(domain.Notification{}, errors.ErrNotificationNotFound)

		req.ErrorIs(svc.MarkAsRead(ctx, "u-dana", "missing"), errors.ErrNotificationNotFound)
	})

	t.Run("should flag a store failure", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		notifications := mocks.NewMockINotificationRepository(ctrl)
		svc := NewNotificationService(slog.Default(), repositories.Store{Notifications: notifications})

		notifications.EXPECT().GetNotification(gomock.Any(), "n-1").Return(domain.Notification{}, fmt.Errorf("io error"))

		req.ErrorIs(svc.MarkAsRead(ctx, "u-dana", "n-1"), errors.ErrPersistence)
	})
}

func TestNotificationService_GetNotifications(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	notifications := mocks.NewMockINotificationRepository(ctrl)
	notes := mocks.NewMockINoteRepository(ctrl)
	candidates := mocks.NewMockICandidateRepository(ctrl)
	svc := NewNotificationService(slog.Default(), repositories.Store{
		Notifications: notifications,
		Notes:         notes,
		Candidates:    candidates,
	})

	note := domain.Note{ID: "note-1", CandidateID: "c-1", AuthorID: "u-alice", Message: "@dana"}
	notifications.EXPECT().GetNotifications(gomock.Any(), domain.UserID("u-dana")).Return([]domain.Notification{
		{ID: "n-2", RecipientID: "u-dana", NoteID: "note-1"},
		{ID: "n-1", RecipientID: "u-dana", NoteID: "note-1"},
	}, nil)
	notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil).Times(2)
	candidates.EXPECT().GetCandidate(gomock.Any(), "c-1").Return(domain.Candidate{ID: "c-1", Name: "Jane Roe"}, nil).Times(2)

	populated, err := svc.GetNotifications(ctx, "u-dana")

	req.NoError(err)
	req.Len(populated, 2)
	req.Equal("n-2", populated[0].ID)
	req.Equal("Jane Roe", populated[0].Note.Candidate.Name)
	req.Equal("@dana", populated[1].Note.Message)
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	notifications := mocks.NewMockINotificationRepository(ctrl)
	svc := NewNotificationService(slog.Default(), repositories.Store{Notifications: notifications})

	notifications.EXPECT().MarkAllAsRead(gomock.Any(), domain.UserID("u-dana")).Return(nil)

	req.NoError(svc.MarkAllAsRead(context.Background(), "u-dana"))
}
