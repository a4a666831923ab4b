package usecases

import (
	"context"
	"time"

	"zarya/internal/domain/ticket"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type CreateTicketCommand struct {
	OwnerID uint
	Subject string
	Message string
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	notifier   Notifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "owner_id", cmd.OwnerID)

	t, err := ticket.NewTicket(cmd.OwnerID, cmd.Subject, cmd.Message)
	if err != nil {
		uc.logger.Warnw("invalid ticket submission", "owner_id", cmd.OwnerID, "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "owner_id", cmd.OwnerID, "error", err)
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyTicketCreated(ctx, t.ID(), t.Subject()); err != nil {
			uc.logger.Warnw("ticket notification failed", "ticket_id", t.ID(), "error", err)
		}
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "owner_id", cmd.OwnerID)
	return &CreateTicketResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
	}, nil
}
