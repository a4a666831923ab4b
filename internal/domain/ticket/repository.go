package ticket

import "context"

// Repository persists tickets and their responses. Update applies a
// compare-and-set on the ticket's version and returns a conflict error
// when a concurrent writer got there first.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetUserTickets(ctx context.Context, ownerID uint, filter Filter) ([]*Ticket, int64, error)
	SaveResponse(ctx context.Context, r *Response) error
	GetResponses(ctx context.Context, ticketID uint) ([]*Response, error)
	CountForUser(ctx context.Context, ownerID uint) (int64, error)
}

// Filter narrows and paginates ticket listings.
type Filter struct {
	Status   *string
	Page     int
	PageSize int
}
