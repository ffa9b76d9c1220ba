package repositories

import (
	"candidate-notes/domain"
	"context"
	"fmt"
)

// Populator joins notes and notifications with the records they reference.
type Populator struct {
	users      IUserRepository
	candidates ICandidateRepository
	notes      INoteRepository
}

func NewPopulator(store Store) Populator {
	return Populator{users: store.Users, candidates: store.Candidates, notes: store.Notes}
}

// PopulateNote adds the author's display name to the note.
func (p Populator) PopulateNote(ctx context.Context, note domain.Note) (domain.PopulatedNote, error) {
	author, err := p.users.GetUserByID(ctx, note.AuthorID)
	if err != nil {
		return domain.PopulatedNote{}, fmt.Errorf("populate author of note %s: %w", note.ID, err)
	}
	return domain.PopulatedNote{Note: note, Author: author.Author()}, nil
}

// PopulateNotes populates a batch, looking each author up only once.
func (p Populator) PopulateNotes(ctx context.Context, notes []domain.Note) ([]domain.PopulatedNote, error) {
	authors := make(map[domain.UserID]domain.Author)
	populated := make([]domain.PopulatedNote, 0, len(notes))
	for _, note := range notes {
		author, ok := authors[note.AuthorID]
		if !ok {
			user, err := p.users.GetUserByID(ctx, note.AuthorID)
			if err != nil {
				return nil, fmt.Errorf("populate author of note %s: %w", note.ID, err)
			}
			author = user.Author()
			authors[note.AuthorID] = author
		}
		populated = append(populated, domain.PopulatedNote{Note: note, Author: author})
	}
	return populated, nil
}

// PopulateNotification adds the referenced note and the name of its candidate.
func (p Populator) PopulateNotification(ctx context.Context, notification domain.Notification) (domain.PopulatedNotification, error) {
	note, err := p.notes.GetNote(ctx, notification.NoteID)
	if err != nil {
		return domain.PopulatedNotification{}, fmt.Errorf("populate note of notification %s: %w", notification.ID, err)
	}
	return p.populateWithNote(ctx, notification, note)
}

func (p Populator) populateWithNote(ctx context.Context, notification domain.Notification, note domain.Note) (domain.PopulatedNotification, error) {
	candidate, err := p.candidates.GetCandidate(ctx, note.CandidateID)
	if err != nil {
		return domain.PopulatedNotification{}, fmt.Errorf("populate candidate of notification %s: %w", notification.ID, err)
	}
	return domain.PopulatedNotification{
		Notification: notification,
		Note: domain.NotificationNote{
			Note:      note,
			Candidate: domain.CandidateRef{ID: candidate.ID, Name: candidate.Name},
		},
	}, nil
}

// PopulateNotificationWithNote is used when the caller already holds the note.
func (p Populator) PopulateNotificationWithNote(ctx context.Context, notification domain.Notification, note domain.Note) (domain.PopulatedNotification, error) {
	return p.populateWithNote(ctx, notification, note)
}

func (p Populator) PopulateNotifications(ctx context.Context, notifications []domain.Notification) ([]domain.PopulatedNotification, error) {
	populated := make([]domain.PopulatedNotification, 0, len(notifications))
	for _, notification := range notifications {
		pn, err := p.PopulateNotification(ctx, notification)
		if err != nil {
			return nil, err
		}
		populated = append(populated, pn)
	}
	return populated, nil
}
