package event

import "candidate-notes/domain"

type Name string

const (
	NewNoteName         Name = "new_note"
	NewNotificationName Name = "new_notification"
)

// Event is anything delivered to a live connection.
type Event interface {
	Name() Name
}

// NewNote is broadcast to the candidate room once a note is persisted.
type NewNote struct {
	CandidateID string               `json:"candidateId"`
	Note        domain.PopulatedNote `json:"note"`
}

func (NewNote) Name() Name { return NewNoteName }

// NewNotification is broadcast to the private room of the mentioned user.
type NewNotification struct {
	RecipientID  domain.UserID                `json:"recipientId"`
	Notification domain.PopulatedNotification `json:"notification"`
}

func (NewNotification) Name() Name { return NewNotificationName }
