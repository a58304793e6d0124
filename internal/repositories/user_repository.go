package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ticket-desk.com/ticket-desk/internal/constants"
	apperrors "ticket-desk.com/ticket-desk/internal/errors"
	model "ticket-desk.com/ticket-desk/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Register inserts a user. The unique index on email is the only duplicate
// check, so concurrent registrations cannot race past it.
func (r *UserRepository) Register(ctx context.Context, email, password string, role constants.Role) (*model.User, error) {
	user := &model.User{
		Email:    email,
		Password: password,
		Role:     role,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, wrapStore(err)
	}

	return user, nil
}

// FindByCredentials does an exact match on email and password, mirroring the
// stored representation. See DESIGN.md on plaintext credentials.
func (r *UserRepository) FindByCredentials(ctx context.Context, email, password string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("email = ? AND password = ?", email, password).First(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, wrapStore(err)
	}
	return &user, nil
}
