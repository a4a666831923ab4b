package usecases

import (
	"context"

	"zarya/internal/domain/ticket"
	"zarya/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc        func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetUserTicketsFunc func(ctx context.Context, ownerID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	SaveResponseFunc   func(ctx context.Context, r *ticket.Response) error
	GetResponsesFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Response, error)
	CountForUserFunc   func(ctx context.Context, ownerID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetUserTickets(ctx context.Context, ownerID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.GetUserTicketsFunc != nil {
		return m.GetUserTicketsFunc(ctx, ownerID, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) SaveResponse(ctx context.Context, r *ticket.Response) error {
	if m.SaveResponseFunc != nil {
		return m.SaveResponseFunc(ctx, r)
	}
	return nil
}

func (m *mockTicketRepository) GetResponses(ctx context.Context, ticketID uint) ([]*ticket.Response, error) {
	if m.GetResponsesFunc != nil {
		return m.GetResponsesFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountForUser(ctx context.Context, ownerID uint) (int64, error) {
	if m.CountForUserFunc != nil {
		return m.CountForUserFunc(ctx, ownerID)
	}
	return 0, nil
}

type mockNotifier struct {
	NotifyTicketCreatedFunc func(ctx context.Context, ticketID uint, subject string) error
	NotifyResponseAddedFunc func(ctx context.Context, ticketID, ownerID uint, isStaffResponse bool) error
}

func (m *mockNotifier) NotifyTicketCreated(ctx context.Context, ticketID uint, subject string) error {
	if m.NotifyTicketCreatedFunc != nil {
		return m.NotifyTicketCreatedFunc(ctx, ticketID, subject)
	}
	return nil
}

func (m *mockNotifier) NotifyResponseAdded(ctx context.Context, ticketID, ownerID uint, isStaffResponse bool) error {
	if m.NotifyResponseAddedFunc != nil {
		return m.NotifyResponseAddedFunc(ctx, ticketID, ownerID, isStaffResponse)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
