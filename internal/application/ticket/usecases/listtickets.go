package usecases

import (
	"context"

	"zarya/internal/application/ticket/dto"
	"zarya/internal/domain/ticket"
	"zarya/internal/shared/logger"
)

type ListTicketsQuery struct {
	UserID   uint
	IsStaff  bool
	Status   *string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets []dto.TicketListItemDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Infow("executing list tickets use case", "user_id", query.UserID, "is_staff", query.IsStaff)

	filter := ticket.Filter{
		Status:   query.Status,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	// Staff see the whole queue; everyone else only their own tickets.
	ownerID := query.UserID
	if query.IsStaff {
		ownerID = 0
	}

	tickets, total, err := uc.ticketRepo.GetUserTickets(ctx, ownerID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.UserID, "error", err)
		return nil, err
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{Tickets: items, Total: total}, nil
}
