package sqlite

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"context"
	"database/sql"
	stdErrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CandidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

const candidateColumns = `id, name, email, created_at`

func (c CandidateRepository) CreateCandidate(ctx context.Context, name, email string) (domain.Candidate, error) {
	candidate := domain.Candidate{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CreatedAt: time.Now().UTC(),
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Candidate{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM candidates WHERE email = ?`, candidate.Email).Scan(&exists); err != nil {
		return domain.Candidate{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists > 0 {
		return domain.Candidate{}, errors.ErrCandidateAlreadyExists
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO candidates (`+candidateColumns+`) VALUES (?, ?, ?, ?)`,
		candidate.ID, candidate.Name, candidate.Email, candidate.CreatedAt.UnixNano()); err != nil {
		return domain.Candidate{}, fmt.Errorf("failed to insert candidate: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Candidate{}, err
	}
	return candidate, nil
}

func (c CandidateRepository) GetCandidate(ctx context.Context, id string) (domain.Candidate, error) {
	row := c.db.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = ?`, id)
	return scanCandidate(row)
}

func (c CandidateRepository) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

func scanCandidate(row rowScanner) (domain.Candidate, error) {
	var (
		candidate domain.Candidate
		createdAt int64
	)
	err := row.Scan(&candidate.ID, &candidate.Name, &candidate.Email, &createdAt)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return domain.Candidate{}, errors.ErrCandidateNotFound
	}
	if err != nil {
		return domain.Candidate{}, err
	}
	candidate.CreatedAt = toTime(createdAt)
	return candidate, nil
}
