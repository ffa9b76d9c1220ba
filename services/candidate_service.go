package services

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"candidate-notes/repositories"
	"context"
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type CreateCandidateRequest struct {
	Name  string `json:"name" validate:"required,max=128"`
	Email string `json:"email" validate:"required,email"`
}

type CandidateService struct {
	candidates repositories.ICandidateRepository
}

func NewCandidateService(candidates repositories.ICandidateRepository) *CandidateService {
	return &CandidateService{candidates: candidates}
}

func (s *CandidateService) CreateCandidate(ctx context.Context, req CreateCandidateRequest) (domain.Candidate, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		return domain.Candidate{}, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	candidate, err := s.candidates.CreateCandidate(ctx, req.Name, req.Email)
	if err != nil {
		return domain.Candidate{}, wrapStoreError(err, errors.ErrCandidateAlreadyExists)
	}
	return candidate, nil
}

// ListCandidates returns every candidate, oldest first.
func (s *CandidateService) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.candidates.ListCandidates(ctx)
	if err != nil {
		return nil, stdErrors.Join(errors.ErrPersistence, err)
	}
	return candidates, nil
}
