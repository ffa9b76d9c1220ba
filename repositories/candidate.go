package repositories

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"context"
	stdErrors "errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	candidatePrefix      = "candidate:"
	candidateEmailPrefix = "candidate-email:"
)

type CandidateRepository struct {
	db *badger.DB
}

func NewCandidateRepository(db *badger.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

type candidateRecord struct {
	ID        string `cbor:"id"`
	Name      string `cbor:"name"`
	Email     string `cbor:"email"`
	CreatedAt int64  `cbor:"created_at"`
}

func (c CandidateRepository) CreateCandidate(_ context.Context, name, email string) (domain.Candidate, error) {
	email = normalizeEmail(email)
	candidate := domain.Candidate{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	data, err := marshal(candidateRecord{
		ID:        candidate.ID,
		Name:      candidate.Name,
		Email:     candidate.Email,
		CreatedAt: candidate.CreatedAt.UnixNano(),
	})
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		emailKey := []byte(candidateEmailPrefix + email)
		if _, err := txn.Get(emailKey); err == nil {
			return errors.ErrCandidateAlreadyExists
		} else if !stdErrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set([]byte(candidatePrefix+candidate.ID), data); err != nil {
			return err
		}
		return txn.Set(emailKey, []byte(candidate.ID))
	})
	if err != nil {
		return domain.Candidate{}, err
	}
	return candidate, nil
}

func (c CandidateRepository) GetCandidate(_ context.Context, id string) (domain.Candidate, error) {
	var record candidateRecord
	err := c.db.View(func(txn *badger.Txn) error {
		return getRecord(txn, []byte(candidatePrefix+id), &record, errors.ErrCandidateNotFound)
	})
	if err != nil {
		return domain.Candidate{}, err
	}
	return toCandidate(record), nil
}

// ListCandidates returns every candidate, oldest first.
func (c CandidateRepository) ListCandidates(_ context.Context) ([]domain.Candidate, error) {
	var records []candidateRecord
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := []byte(candidatePrefix)
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: true, PrefetchSize: 100})
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			var record candidateRecord
			if err := it.Item().Value(func(val []byte) error {
				return unmarshal(val, &record)
			}); err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt < records[j].CreatedAt
	})
	return lo.Map(records, func(r candidateRecord, _ int) domain.Candidate {
		return toCandidate(r)
	}), nil
}

func toCandidate(record candidateRecord) domain.Candidate {
	return domain.Candidate{
		ID:        record.ID,
		Name:      record.Name,
		Email:     record.Email,
		CreatedAt: time.Unix(0, record.CreatedAt).UTC(),
	}
}
