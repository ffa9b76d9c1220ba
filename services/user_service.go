package services

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"candidate-notes/repositories"
	"context"
	stdErrors "errors"

	"github.com/samber/lo"
)

type UserService struct {
	users repositories.IUserRepository
}

func NewUserService(users repositories.IUserRepository) *UserService {
	return &UserService{users: users}
}

// ListOtherUsers feeds mention autocompletion: everyone but the caller, sorted by name.
func (s *UserService) ListOtherUsers(ctx context.Context, callerID domain.UserID) ([]domain.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, stdErrors.Join(errors.ErrPersistence, err)
	}
	return lo.Filter(users, func(u domain.User, _ int) bool {
		return u.ID != callerID
	}), nil
}
