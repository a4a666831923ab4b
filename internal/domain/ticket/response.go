package ticket

import (
	"fmt"
	"time"
)

// Response is one message in a ticket's conversation thread. It is
// immutable once created; isStaffResponse records the author's staff flag
// at creation time.
type Response struct {
	id              uint
	ticketID        uint
	authorID        uint
	message         string
	isStaffResponse bool
	createdAt       time.Time
}

func NewResponse(ticketID, authorID uint, message string, isStaffResponse bool) (*Response, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message cannot be empty")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	return &Response{
		ticketID:        ticketID,
		authorID:        authorID,
		message:         message,
		isStaffResponse: isStaffResponse,
		createdAt:       time.Now().UTC(),
	}, nil
}

func ReconstructResponse(
	id uint,
	ticketID uint,
	authorID uint,
	message string,
	isStaffResponse bool,
	createdAt time.Time,
) (*Response, error) {
	if id == 0 {
		return nil, fmt.Errorf("response ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Response{
		id:              id,
		ticketID:        ticketID,
		authorID:        authorID,
		message:         message,
		isStaffResponse: isStaffResponse,
		createdAt:       createdAt,
	}, nil
}

func (r *Response) ID() uint              { return r.id }
func (r *Response) TicketID() uint        { return r.ticketID }
func (r *Response) AuthorID() uint        { return r.authorID }
func (r *Response) Message() string       { return r.message }
func (r *Response) IsStaffResponse() bool { return r.isStaffResponse }
func (r *Response) CreatedAt() time.Time  { return r.createdAt }

func (r *Response) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("response ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("response ID cannot be zero")
	}
	r.id = id
	return nil
}
