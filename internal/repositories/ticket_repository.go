package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ticket-desk.com/ticket-desk/internal/constants"
	apperrors "ticket-desk.com/ticket-desk/internal/errors"
	model "ticket-desk.com/ticket-desk/internal/models"
)

// TicketRepository runs every operation inside its own transaction so a
// backend failure can never leave a partial write visible.
type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, subject, initialMessage string) (*model.Ticket, error) {
	ticket := &model.Ticket{
		Subject:        subject,
		InitialMessage: initialMessage,
		Status:         constants.StatusOpen,
		CreatedAt:      time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(ticket).Error
	})
	if err != nil {
		return nil, wrapStore(err)
	}

	return ticket, nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.First(&ticket, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, wrapStore(err)
	}
	return &ticket, nil
}

func (r *TicketRepository) List(ctx context.Context) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Order("id desc").Find(&tickets).Error
	})
	if err != nil {
		return nil, wrapStore(err)
	}
	return tickets, nil
}

// Update overwrites subject and initial_message in place. Status and
// created_at are never touched here.
func (r *TicketRepository) Update(ctx context.Context, id uint, subject, initialMessage string) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ticket, id).Error; err != nil {
			return err
		}
		return tx.Model(&ticket).Updates(map[string]interface{}{
			"subject":         subject,
			"initial_message": initialMessage,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, wrapStore(err)
	}
	return &ticket, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ticket model.Ticket
		if err := tx.First(&ticket, id).Error; err != nil {
			return err
		}
		return tx.Delete(&ticket).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTicketNotFound
		}
		return wrapStore(err)
	}
	return nil
}
