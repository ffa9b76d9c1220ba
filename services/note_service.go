package services

import (
	"candidate-notes/contract"
	"candidate-notes/domain"
	"candidate-notes/errors"
	"candidate-notes/repositories"
	"context"
	stdErrors "errors"
)

// NoteService is the write and history entry point for notes. Writes go
// through the dispatcher so watchers and mentioned users are told in real time.
type NoteService struct {
	candidates repositories.ICandidateRepository
	notes      repositories.INoteRepository
	populator  repositories.Populator
	dispatcher contract.IDispatcher
}

func NewNoteService(store repositories.Store, dispatcher contract.IDispatcher) *NoteService {
	return &NoteService{
		candidates: store.Candidates,
		notes:      store.Notes,
		populator:  repositories.NewPopulator(store),
		dispatcher: dispatcher,
	}
}

func (s *NoteService) AddNote(ctx context.Context, draft domain.NoteDraft) (domain.PopulatedNote, error) {
	draft, ok := draft.Validate()
	if !ok {
		return domain.PopulatedNote{}, errors.ErrInvalidRequest
	}
	if _, err := s.candidates.GetCandidate(ctx, draft.CandidateID); err != nil {
		return domain.PopulatedNote{}, wrapStoreError(err, errors.ErrCandidateNotFound)
	}
	return s.dispatcher.OnNoteCreated(ctx, draft)
}

// GetNotes returns the history of a candidate, oldest first.
func (s *NoteService) GetNotes(ctx context.Context, candidateID string) ([]domain.PopulatedNote, error) {
	notes, err := s.notes.GetNotes(ctx, candidateID)
	if err != nil {
		return nil, stdErrors.Join(errors.ErrPersistence, err)
	}
	populated, err := s.populator.PopulateNotes(ctx, notes)
	if err != nil {
		return nil, stdErrors.Join(errors.ErrPersistence, err)
	}
	return populated, nil
}

// wrapStoreError keeps the expected not-found sentinel as is and flags anything else as a store failure.
func wrapStoreError(err, notFound error) error {
	if stdErrors.Is(err, notFound) {
		return err
	}
	return stdErrors.Join(errors.ErrPersistence, err)
}
