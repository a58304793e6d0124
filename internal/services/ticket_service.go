package services

import (
	"context"

	"ticket-desk.com/ticket-desk/internal/constants"
	apperrors "ticket-desk.com/ticket-desk/internal/errors"
	model "ticket-desk.com/ticket-desk/internal/models"
	"ticket-desk.com/ticket-desk/internal/queue"
	repository "ticket-desk.com/ticket-desk/internal/repositories"
)

type TicketService struct {
	repo      *repository.TicketRepository
	publisher queue.TaskPublisher
}

// NewTicketService wires the store and the optional task publisher. A nil
// publisher degrades silently: tickets are created, nothing is enqueued.
func NewTicketService(repo *repository.TicketRepository, publisher queue.TaskPublisher) *TicketService {
	return &TicketService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateTicket persists the ticket, then best-effort enqueues a notification
// task. The enqueue outcome never affects the result.
func (s *TicketService) CreateTicket(ctx context.Context, subject, initialMessage string) (*model.Ticket, error) {
	if subject == "" {
		return nil, apperrors.ErrSubjectRequired
	}

	ticket, err := s.repo.Create(ctx, subject, initialMessage)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.Publish(ctx, queue.Task{
			TicketID: ticket.ID,
			Subject:  ticket.Subject,
			Kind:     constants.TaskKindTicketCreated,
		})
	}

	return ticket, nil
}

func (s *TicketService) GetTicket(ctx context.Context, id uint) (*model.Ticket, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TicketService) ListTickets(ctx context.Context) ([]model.Ticket, error) {
	return s.repo.List(ctx)
}

func (s *TicketService) UpdateTicket(ctx context.Context, id uint, subject, initialMessage string) (*model.Ticket, error) {
	if subject == "" {
		return nil, apperrors.ErrSubjectRequired
	}
	return s.repo.Update(ctx, id, subject, initialMessage)
}

func (s *TicketService) DeleteTicket(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
