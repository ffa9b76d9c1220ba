// Package domain contains core concepts of the annotation system.
// This file defines notes, candidates and notifications.
// Notes are immutable once persisted.
package domain

import "time"

type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CandidateRef is the projection of a candidate embedded in populated notifications.
type CandidateRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NoteDraft is what a caller asks to persist.
type NoteDraft struct {
	CandidateID string
	AuthorID    UserID
	Message     string
}

type Note struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate"`
	AuthorID    UserID    `json:"-"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"timestamp"`
}

// PopulatedNote is a note enriched with its author's display name.
type PopulatedNote struct {
	Note
	Author Author `json:"author"`
}

type Notification struct {
	ID          string    `json:"id"`
	RecipientID UserID    `json:"user"`
	NoteID      string    `json:"-"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NotificationNote is the note referenced by a populated notification.
type NotificationNote struct {
	Note
	Candidate CandidateRef `json:"candidate"`
}

// PopulatedNotification is a notification enriched with its note and the note's candidate name.
type PopulatedNotification struct {
	Notification
	Note NotificationNote `json:"note"`
}
