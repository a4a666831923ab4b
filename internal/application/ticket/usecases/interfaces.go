package usecases

import (
	"context"

	"zarya/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type AddResponseExecutor interface {
	Execute(ctx context.Context, cmd AddResponseCommand) (*AddResponseResult, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error)
}

// Notifier delivers ticket lifecycle notifications: new tickets and
// customer replies go to the staff inbox, staff responses go to the
// ticket owner. Delivery failures must not fail the originating
// operation.
type Notifier interface {
	NotifyTicketCreated(ctx context.Context, ticketID uint, subject string) error
	NotifyResponseAdded(ctx context.Context, ticketID, ownerID uint, isStaffResponse bool) error
}
