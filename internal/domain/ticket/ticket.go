// Package ticket contains the support ticket aggregate: the ticket itself,
// its responses, and the status state machine driven by who responds.
package ticket

import (
	"fmt"
	"time"

	vo "zarya/internal/domain/ticket/valueobjects"
)

const (
	maxSubjectLength = 200
	maxMessageLength = 5000
)

type Ticket struct {
	id        uint
	ownerID   uint
	subject   string
	message   string
	status    vo.Status
	version   int
	createdAt time.Time
	updatedAt time.Time
	responses []*Response
}

func NewTicket(ownerID uint, subject, message string) (*Ticket, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > maxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", maxSubjectLength)
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	now := time.Now().UTC()
	return &Ticket{
		ownerID:   ownerID,
		subject:   subject,
		message:   message,
		status:    vo.StatusOpen,
		version:   1,
		createdAt: now,
		updatedAt: now,
		responses: []*Response{},
	}, nil
}

func ReconstructTicket(
	id uint,
	ownerID uint,
	subject string,
	message string,
	status vo.Status,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:        id,
		ownerID:   ownerID,
		subject:   subject,
		message:   message,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
		responses: []*Response{},
	}, nil
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) OwnerID() uint        { return t.ownerID }
func (t *Ticket) Subject() string      { return t.subject }
func (t *Ticket) Message() string      { return t.message }
func (t *Ticket) Status() vo.Status    { return t.status }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

// Version returns the version the ticket was loaded with. The repository
// uses it as a compare-and-set guard so a concurrent status write loses
// cleanly instead of silently overwriting.
func (t *Ticket) Version() int { return t.version }

func (t *Ticket) Responses() []*Response {
	responsesCopy := make([]*Response, len(t.responses))
	copy(responsesCopy, t.responses)
	return responsesCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// CanBeViewedBy reports whether the caller may see this ticket. Staff see
// every ticket; everyone else only their own.
func (t *Ticket) CanBeViewedBy(userID uint, isStaff bool) bool {
	if isStaff {
		return true
	}
	return t.ownerID == userID
}

// RegisterResponse attaches a response and drives the status machine:
// an owner (non-staff) response moves the ticket to in_progress, a staff
// response leaves the status untouched. Responses to closed tickets are
// rejected.
func (t *Ticket) RegisterResponse(r *Response) error {
	if r == nil {
		return fmt.Errorf("response cannot be nil")
	}
	if r.TicketID() != t.id {
		return fmt.Errorf("response ticket ID mismatch")
	}
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}

	t.responses = append(t.responses, r)
	t.updatedAt = time.Now().UTC()

	if !r.IsStaffResponse() {
		t.status = vo.StatusInProgress
	}

	return nil
}

// Close moves the ticket to its terminal state. Closing an already closed
// ticket is a no-op.
func (t *Ticket) Close() error {
	if t.status.IsClosed() {
		return nil
	}
	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close ticket with status %s", t.status)
	}

	t.status = vo.StatusClosed
	t.updatedAt = time.Now().UTC()
	return nil
}
