package repositories

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	notePrefix          = "note:"
	candidateNotePrefix = "candidate-note:"
)

type NoteRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewNoteRepository(db *badger.DB, log *slog.Logger) *NoteRepository {
	return &NoteRepository{db: db, log: log}
}

type noteRecord struct {
	ID          string `cbor:"id"`
	CandidateID string `cbor:"candidate_id"`
	AuthorID    string `cbor:"author_id"`
	Message     string `cbor:"message"`
	CreatedAt   int64  `cbor:"created_at"`
}

// candidateNoteKey indexes the notes of a candidate in chronological order.
// The key is formatted as "candidate-note:{candidate_id}\x00{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Keep two notes created at the same nanosecond apart thanks to the uuid.
func candidateNoteKey(candidateID string, at time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%s%s\x00%019d:%s", candidateNotePrefix, candidateID, at.UnixNano(), id))
}

// CreateNote persists the note and its chronological index entry in one transaction.
func (n NoteRepository) CreateNote(_ context.Context, draft domain.NoteDraft) (domain.Note, error) {
	note := domain.Note{
		ID:          uuid.NewString(),
		CandidateID: draft.CandidateID,
		AuthorID:    draft.AuthorID,
		Message:     draft.Message,
		CreatedAt:   time.Now().UTC(),
	}
	data, err := marshal(fromNote(note))
	if err != nil {
		return domain.Note{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = n.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(notePrefix+note.ID), data); err != nil {
			return err
		}
		return txn.Set(candidateNoteKey(note.CandidateID, note.CreatedAt, note.ID), []byte(note.ID))
	})
	if err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

func (n NoteRepository) GetNote(_ context.Context, id string) (domain.Note, error) {
	var record noteRecord
	err := n.db.View(func(txn *badger.Txn) error {
		return getRecord(txn, []byte(notePrefix+id), &record, errors.ErrNoteNotFound)
	})
	if err != nil {
		return domain.Note{}, err
	}
	return toNote(record), nil
}

// GetNotes retrieves the notes of a candidate using a prefix scan on the index.
// Thanks to the padded timestamp in the key, notes come out oldest first.
func (n NoteRepository) GetNotes(_ context.Context, candidateID string) ([]domain.Note, error) {
	var notes []domain.Note
	err := n.db.View(func(txn *badger.Txn) error {
		prefix := []byte(candidateNotePrefix + candidateID + "\x00")
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: true, PrefetchSize: 100})
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			id, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var record noteRecord
			if err := getRecord(txn, []byte(notePrefix+string(id)), &record, errors.ErrNoteNotFound); err != nil {
				n.log.Warn("Dangling note index entry", "candidate_id", candidateID, "note_id", string(id), "error", err)
				continue
			}
			notes = append(notes, toNote(record))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func fromNote(note domain.Note) noteRecord {
	return noteRecord{
		ID:          note.ID,
		CandidateID: note.CandidateID,
		AuthorID:    string(note.AuthorID),
		Message:     note.Message,
		CreatedAt:   note.CreatedAt.UnixNano(),
	}
}

func toNote(record noteRecord) domain.Note {
	return domain.Note{
		ID:          record.ID,
		CandidateID: record.CandidateID,
		AuthorID:    domain.UserID(record.AuthorID),
		Message:     record.Message,
		CreatedAt:   time.Unix(0, record.CreatedAt).UTC(),
	}
}
