package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zarya/internal/domain/ticket"
	vo "zarya/internal/domain/ticket/valueobjects"
)

func TestListTicketsUseCase_Execute_OwnerScopedForNonStaff(t *testing.T) {
	var requestedOwnerID uint
	repo := &mockTicketRepository{
		GetUserTicketsFunc: func(ctx context.Context, ownerID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			requestedOwnerID = ownerID
			return []*ticket.Ticket{reconstructTicket(t, 10, 7, vo.StatusOpen)}, 1, nil
		},
	}

	uc := NewListTicketsUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 7, IsStaff: false, Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Equal(t, uint(7), requestedOwnerID)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Tickets, 1)
	assert.Equal(t, uint(10), result.Tickets[0].ID)
}

func TestListTicketsUseCase_Execute_StaffSeesWholeQueue(t *testing.T) {
	var requestedOwnerID uint = 999
	repo := &mockTicketRepository{
		GetUserTicketsFunc: func(ctx context.Context, ownerID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			requestedOwnerID = ownerID
			return []*ticket.Ticket{
				reconstructTicket(t, 10, 7, vo.StatusOpen),
				reconstructTicket(t, 11, 8, vo.StatusInProgress),
			}, 2, nil
		},
	}

	uc := NewListTicketsUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 99, IsStaff: true, Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Equal(t, uint(0), requestedOwnerID)
	assert.Len(t, result.Tickets, 2)
}

func TestListTicketsUseCase_Execute_StatusFilterPassedThrough(t *testing.T) {
	status := "closed"
	var gotFilter ticket.Filter
	repo := &mockTicketRepository{
		GetUserTicketsFunc: func(ctx context.Context, ownerID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	uc := NewListTicketsUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 7, Status: &status, Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Empty(t, result.Tickets)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, "closed", *gotFilter.Status)
	assert.Equal(t, 2, gotFilter.Page)
	assert.Equal(t, 10, gotFilter.PageSize)
}
