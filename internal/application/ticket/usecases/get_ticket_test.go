package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zarya/internal/domain/ticket"
	vo "zarya/internal/domain/ticket/valueobjects"
	apperrors "zarya/internal/shared/errors"
)

func reconstructTicket(t *testing.T, id, ownerID uint, status vo.Status) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, ownerID, "subject", "message", status, 1, time.Now(), time.Now())
	require.NoError(t, err)
	return tk
}

func reconstructResponse(t *testing.T, id, ticketID, authorID uint, isStaff bool) *ticket.Response {
	t.Helper()
	r, err := ticket.ReconstructResponse(id, ticketID, authorID, "message", isStaff, time.Now())
	require.NoError(t, err)
	return r
}

func TestGetTicketUseCase_Execute_OwnerSeesOwnTicket(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTicket(t, 10, 7, vo.StatusOpen), nil
		},
		GetResponsesFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Response, error) {
			return []*ticket.Response{
				reconstructResponse(t, 1, 10, 7, false),
				reconstructResponse(t, 2, 10, 99, true),
			}, nil
		},
	}

	uc := NewGetTicketUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 10, UserID: 7, IsStaff: false})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(10), result.ID)
	require.Len(t, result.Responses, 2)
	assert.False(t, result.Responses[0].IsStaffResponse)
	assert.True(t, result.Responses[1].IsStaffResponse)
}

func TestGetTicketUseCase_Execute_ForeignTicketIsNotFound(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTicket(t, 10, 7, vo.StatusOpen), nil
		},
	}

	uc := NewGetTicketUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 10, UserID: 8, IsStaff: false})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetTicketUseCase_Execute_StaffSeesForeignTicket(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTicket(t, 10, 7, vo.StatusInProgress), nil
		},
	}

	uc := NewGetTicketUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 10, UserID: 99, IsStaff: true})

	require.NoError(t, err)
	assert.Equal(t, uint(10), result.ID)
	assert.Equal(t, "in_progress", result.Status)
}

func TestGetTicketUseCase_Execute_MissingTicket(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	uc := NewGetTicketUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 10, UserID: 7})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
