package usecases

import (
	"context"
	"time"

	"zarya/internal/domain/ticket"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID uint
	UserID   uint
	IsStaff  bool
}

type CloseTicketResult struct {
	TicketID uint
	Status   string
	ClosedAt time.Time
}

type CloseTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCloseTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	uc.logger.Infow("executing close ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	if !cmd.IsStaff {
		uc.logger.Warnw("non-staff user attempted to close ticket", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)
		return nil, apperrors.NewForbiddenError("only staff can close tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.Close(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to close ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket closed successfully", "ticket_id", cmd.TicketID)
	return &CloseTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
		ClosedAt: t.UpdatedAt(),
	}, nil
}
