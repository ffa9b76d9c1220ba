package sqlite

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"context"
	"database/sql"
	stdErrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

const notificationColumns = `id, user_id, note_id, is_read, created_at`

func (n NotificationRepository) CreateNotification(ctx context.Context, recipientID domain.UserID, noteID string) (domain.Notification, error) {
	notification := domain.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		NoteID:      noteID,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := n.db.ExecContext(ctx,
		`INSERT INTO notifications (`+notificationColumns+`) VALUES (?, ?, ?, 0, ?)`,
		notification.ID, string(recipientID), noteID, notification.CreatedAt.UnixNano()); err != nil {
		return domain.Notification{}, fmt.Errorf("failed to insert notification: %w", err)
	}
	return notification, nil
}

func (n NotificationRepository) GetNotification(ctx context.Context, id string) (domain.Notification, error) {
	row := n.db.QueryRowContext(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = ?`, id)
	return scanNotification(row)
}

func (n NotificationRepository) MarkAsRead(ctx context.Context, id string) error {
	result, err := n.db.ExecContext(ctx, `UPDATE notifications SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.ErrNotificationNotFound
	}
	return nil
}

func (n NotificationRepository) MarkAllAsRead(ctx context.Context, userID domain.UserID) error {
	if _, err := n.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE user_id = ? AND is_read = 0`, string(userID)); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// GetNotifications returns the notifications of a user, newest first.
func (n NotificationRepository) GetNotifications(ctx context.Context, userID domain.UserID) ([]domain.Notification, error) {
	rows, err := n.db.QueryContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`,
		string(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	return notifications, rows.Err()
}

func scanNotification(row rowScanner) (domain.Notification, error) {
	var (
		notification domain.Notification
		recipientID  string
		isRead       int
		createdAt    int64
	)
	err := row.Scan(&notification.ID, &recipientID, &notification.NoteID, &isRead, &createdAt)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return domain.Notification{}, errors.ErrNotificationNotFound
	}
	if err != nil {
		return domain.Notification{}, err
	}
	notification.RecipientID = domain.UserID(recipientID)
	notification.Read = isRead != 0
	notification.CreatedAt = toTime(createdAt)
	return notification, nil
}
