package repositories

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	notificationPrefix     = "notification:"
	userNotificationPrefix = "user-notification:"
)

type NotificationRepository struct {
	db *badger.DB
}

func NewNotificationRepository(db *badger.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationRecord struct {
	ID          string `cbor:"id"`
	RecipientID string `cbor:"recipient_id"`
	NoteID      string `cbor:"note_id"`
	Read        bool   `cbor:"read"`
	CreatedAt   int64  `cbor:"created_at"`
}

// Format: "user-notification:{user_id}\x00{timestamp_padded}:{uuid}"
func userNotificationKey(userID domain.UserID, at time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%s%s\x00%019d:%s", userNotificationPrefix, userID, at.UnixNano(), id))
}

func (n NotificationRepository) CreateNotification(_ context.Context, recipientID domain.UserID, noteID string) (domain.Notification, error) {
	notification := domain.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		NoteID:      noteID,
		CreatedAt:   time.Now().UTC(),
	}
	data, err := marshal(fromNotification(notification))
	if err != nil {
		return domain.Notification{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = n.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(notificationPrefix+notification.ID), data); err != nil {
			return err
		}
		return txn.Set(userNotificationKey(recipientID, notification.CreatedAt, notification.ID), []byte(notification.ID))
	})
	if err != nil {
		return domain.Notification{}, err
	}
	return notification, nil
}

func (n NotificationRepository) GetNotification(_ context.Context, id string) (domain.Notification, error) {
	var record notificationRecord
	err := n.db.View(func(txn *badger.Txn) error {
		return getRecord(txn, []byte(notificationPrefix+id), &record, errors.ErrNotificationNotFound)
	})
	if err != nil {
		return domain.Notification{}, err
	}
	return toNotification(record), nil
}

func (n NotificationRepository) MarkAsRead(_ context.Context, id string) error {
	return n.db.Update(func(txn *badger.Txn) error {
		return markAsRead(txn, id)
	})
}

func (n NotificationRepository) MarkAllAsRead(_ context.Context, userID domain.UserID) error {
	return n.db.Update(func(txn *badger.Txn) error {
		ids, err := notificationIDs(txn, userID, false)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := markAsRead(txn, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetNotifications scans the user index backwards so the newest notification comes first.
func (n NotificationRepository) GetNotifications(_ context.Context, userID domain.UserID) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := n.db.View(func(txn *badger.Txn) error {
		ids, err := notificationIDs(txn, userID, true)
		if err != nil {
			return err
		}
		for _, id := range ids {
			var record notificationRecord
			if err := getRecord(txn, []byte(notificationPrefix+id), &record, errors.ErrNotificationNotFound); err != nil {
				return err
			}
			notifications = append(notifications, toNotification(record))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func notificationIDs(txn *badger.Txn, userID domain.UserID, newestFirst bool) ([]string, error) {
	prefix := []byte(userNotificationPrefix + string(userID) + "\x00")
	it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, Reverse: newestFirst, PrefetchValues: true, PrefetchSize: 100})
	defer it.Close()

	// In reverse mode, seek past the last key of the prefix first
	seekKey := prefix
	if newestFirst {
		seekKey = append(append([]byte{}, prefix...), 0xFF)
	}

	var ids []string
	for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
		id, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		ids = append(ids, string(id))
	}
	return ids, nil
}

func markAsRead(txn *badger.Txn, id string) error {
	var record notificationRecord
	if err := getRecord(txn, []byte(notificationPrefix+id), &record, errors.ErrNotificationNotFound); err != nil {
		return err
	}
	if record.Read {
		return nil
	}
	record.Read = true
	data, err := marshal(record)
	if err != nil {
		return err
	}
	return txn.Set([]byte(notificationPrefix+id), data)
}

func fromNotification(notification domain.Notification) notificationRecord {
	return notificationRecord{
		ID:          notification.ID,
		RecipientID: string(notification.RecipientID),
		NoteID:      notification.NoteID,
		Read:        notification.Read,
		CreatedAt:   notification.CreatedAt.UnixNano(),
	}
}

func toNotification(record notificationRecord) domain.Notification {
	return domain.Notification{
		ID:          record.ID,
		RecipientID: domain.UserID(record.RecipientID),
		NoteID:      record.NoteID,
		Read:        record.Read,
		CreatedAt:   time.Unix(0, record.CreatedAt).UTC(),
	}
}
