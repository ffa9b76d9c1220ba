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

type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = `id, candidate_id, author_id, message, created_at`

func (n NoteRepository) CreateNote(ctx context.Context, draft domain.NoteDraft) (domain.Note, error) {
	note := domain.Note{
		ID:          uuid.NewString(),
		CandidateID: draft.CandidateID,
		AuthorID:    draft.AuthorID,
		Message:     draft.Message,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := n.db.ExecContext(ctx,
		`INSERT INTO notes (`+noteColumns+`) VALUES (?, ?, ?, ?, ?)`,
		note.ID, note.CandidateID, string(note.AuthorID), note.Message, note.CreatedAt.UnixNano()); err != nil {
		return domain.Note{}, fmt.Errorf("failed to insert note: %w", err)
	}
	return note, nil
}

func (n NoteRepository) GetNote(ctx context.Context, id string) (domain.Note, error) {
	row := n.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	return scanNote(row)
}

// GetNotes returns the notes of a candidate, oldest first.
func (n NoteRepository) GetNotes(ctx context.Context, candidateID string) ([]domain.Note, error) {
	rows, err := n.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE candidate_id = ? ORDER BY created_at, rowid`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func scanNote(row rowScanner) (domain.Note, error) {
	var (
		note      domain.Note
		authorID  string
		createdAt int64
	)
	err := row.Scan(&note.ID, &note.CandidateID, &authorID, &note.Message, &createdAt)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return domain.Note{}, errors.ErrNoteNotFound
	}
	if err != nil {
		return domain.Note{}, err
	}
	note.AuthorID = domain.UserID(authorID)
	note.CreatedAt = toTime(createdAt)
	return note, nil
}
