package services

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"candidate-notes/repositories"
	"context"
	stdErrors "errors"
	"log/slog"
)

type NotificationService struct {
	log           *slog.Logger
	notifications repositories.INotificationRepository
	populator     repositories.Populator
}

func NewNotificationService(log *slog.Logger, store repositories.Store) *NotificationService {
	return &NotificationService{
		log:           log,
		notifications: store.Notifications,
		populator:     repositories.NewPopulator(store),
	}
}

// GetNotifications returns the notifications of userID, newest first.
func (s *NotificationService) GetNotifications(ctx context.Context, userID domain.UserID) ([]domain.PopulatedNotification, error) {
	notifications, err := s.notifications.GetNotifications(ctx, userID)
	if err != nil {
		return nil, stdErrors.Join(errors.ErrPersistence, err)
	}
	populated, err := s.populator.PopulateNotifications(ctx, notifications)
	if err != nil {
		return nil, stdErrors.Join(errors.ErrPersistence, err)
	}
	return populated, nil
}

// MarkAsRead only lets the recipient mark a notification.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID domain.UserID, notificationID string) error {
	notification, err := s.notifications.GetNotification(ctx, notificationID)
	if err != nil {
		return wrapStoreError(err, errors.ErrNotificationNotFound)
	}
	if notification.RecipientID != userID {
		s.log.Warn("Attempt to mark another user's notification",
			"user_id", userID,
			"notification_id", notificationID)
		return errors.ErrNotificationNotOwned
	}
	if err := s.notifications.MarkAsRead(ctx, notificationID); err != nil {
		return wrapStoreError(err, errors.ErrNotificationNotFound)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID domain.UserID) error {
	if err := s.notifications.MarkAllAsRead(ctx, userID); err != nil {
		return stdErrors.Join(errors.ErrPersistence, err)
	}
	return nil
}
