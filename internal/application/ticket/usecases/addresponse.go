package usecases

import (
	"context"
	"time"

	"zarya/internal/domain/ticket"
	"zarya/internal/shared/db"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type AddResponseCommand struct {
	TicketID uint
	AuthorID uint
	IsStaff  bool
	Message  string
}

type AddResponseResult struct {
	ResponseID   uint
	TicketStatus string
	CreatedAt    time.Time
}

type AddResponseUseCase struct {
	ticketRepo ticket.Repository
	txMgr      *db.TransactionManager
	notifier   Notifier
	logger     logger.Interface
}

func NewAddResponseUseCase(
	ticketRepo ticket.Repository,
	txMgr *db.TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *AddResponseUseCase {
	return &AddResponseUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AddResponseUseCase) Execute(ctx context.Context, cmd AddResponseCommand) (*AddResponseResult, error) {
	uc.logger.Infow("executing add response use case",
		"ticket_id", cmd.TicketID, "author_id", cmd.AuthorID, "is_staff", cmd.IsStaff)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeViewedBy(cmd.AuthorID, cmd.IsStaff) {
		uc.logger.Warnw("ticket not visible to user", "ticket_id", cmd.TicketID, "user_id", cmd.AuthorID)
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if t.Status().IsClosed() {
		uc.logger.Warnw("response rejected for closed ticket", "ticket_id", cmd.TicketID)
		return nil, apperrors.NewConflictError("ticket is closed")
	}

	response, err := ticket.NewResponse(cmd.TicketID, cmd.AuthorID, cmd.Message, cmd.IsStaff)
	if err != nil {
		uc.logger.Warnw("invalid response submission", "ticket_id", cmd.TicketID, "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	// Response save and the ticket status change are atomic; a concurrent
	// close surfaces as a version conflict from Update and rolls back the
	// saved response.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.SaveResponse(txCtx, response); err != nil {
			uc.logger.Errorw("failed to save response", "ticket_id", cmd.TicketID, "error", err)
			return err
		}

		if err := t.RegisterResponse(response); err != nil {
			return apperrors.NewConflictError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return err
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyResponseAdded(ctx, cmd.TicketID, t.OwnerID(), cmd.IsStaff); err != nil {
			uc.logger.Warnw("response notification failed", "ticket_id", cmd.TicketID, "error", err)
		}
	}

	uc.logger.Infow("response added successfully",
		"response_id", response.ID(), "ticket_id", cmd.TicketID, "ticket_status", t.Status().String())
	return &AddResponseResult{
		ResponseID:   response.ID(),
		TicketStatus: t.Status().String(),
		CreatedAt:    response.CreatedAt(),
	}, nil
}
