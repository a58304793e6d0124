package services

import (
	"context"

	"ticket-desk.com/ticket-desk/internal/constants"
	apperrors "ticket-desk.com/ticket-desk/internal/errors"
	model "ticket-desk.com/ticket-desk/internal/models"
	repository "ticket-desk.com/ticket-desk/internal/repositories"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Register(ctx context.Context, email, password string, role constants.Role) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.ErrCredentialsRequired
	}
	if role == "" {
		role = constants.RoleUser
	}
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}
	return s.repo.Register(ctx, email, password, role)
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.repo.FindByCredentials(ctx, email, password)
}
