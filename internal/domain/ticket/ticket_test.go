package ticket

import (
	"strings"
	"testing"
	"time"

	vo "zarya/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name    string
		ownerID uint
		subject string
		message string
		wantErr bool
	}{
		{"valid ticket", 1, "Printer broken", "It stopped printing yesterday", false},
		{"missing owner", 0, "Printer broken", "details", true},
		{"empty subject", 1, "", "details", true},
		{"subject too long", 1, strings.Repeat("a", maxSubjectLength+1), "details", true},
		{"empty message", 1, "Printer broken", "", true},
		{"message too long", 1, "Printer broken", strings.Repeat("a", maxMessageLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := NewTicket(tt.ownerID, tt.subject, tt.message)
			if tt.wantErr {
				if err == nil {
					t.Error("NewTicket() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTicket() error = %v, want nil", err)
			}
			if ticket.Status() != vo.StatusOpen {
				t.Errorf("new ticket status = %s, want %s", ticket.Status(), vo.StatusOpen)
			}
			if ticket.Version() != 1 {
				t.Errorf("new ticket version = %d, want 1", ticket.Version())
			}
		})
	}
}

func TestTicket_CanBeViewedBy(t *testing.T) {
	ticket := reconstructOpenTicket(t, 10, 7)

	tests := []struct {
		name     string
		userID   uint
		isStaff  bool
		expected bool
	}{
		{"owner", 7, false, true},
		{"other user", 8, false, false},
		{"staff viewing foreign ticket", 8, true, true},
		{"staff viewing own ticket", 7, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ticket.CanBeViewedBy(tt.userID, tt.isStaff); got != tt.expected {
				t.Errorf("CanBeViewedBy(%d, %v) = %v, want %v", tt.userID, tt.isStaff, got, tt.expected)
			}
		})
	}
}

func TestTicket_RegisterResponse_OwnerMovesToInProgress(t *testing.T) {
	ticket := reconstructOpenTicket(t, 10, 7)

	response, err := NewResponse(10, 7, "any update on this?", false)
	if err != nil {
		t.Fatalf("NewResponse() error = %v", err)
	}

	if err := ticket.RegisterResponse(response); err != nil {
		t.Fatalf("RegisterResponse() error = %v", err)
	}

	if ticket.Status() != vo.StatusInProgress {
		t.Errorf("status after owner response = %s, want %s", ticket.Status(), vo.StatusInProgress)
	}
	if len(ticket.Responses()) != 1 {
		t.Errorf("responses = %d, want 1", len(ticket.Responses()))
	}
}

func TestTicket_RegisterResponse_StaffKeepsStatus(t *testing.T) {
	tests := []struct {
		name   string
		status vo.Status
	}{
		{"staff response on open ticket", vo.StatusOpen},
		{"staff response on in_progress ticket", vo.StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := ReconstructTicket(10, 7, "subject", "message", tt.status, 1, time.Now(), time.Now())
			if err != nil {
				t.Fatalf("ReconstructTicket() error = %v", err)
			}

			response, err := NewResponse(10, 99, "we are looking into it", true)
			if err != nil {
				t.Fatalf("NewResponse() error = %v", err)
			}

			if err := ticket.RegisterResponse(response); err != nil {
				t.Fatalf("RegisterResponse() error = %v", err)
			}

			if ticket.Status() != tt.status {
				t.Errorf("status after staff response = %s, want %s", ticket.Status(), tt.status)
			}
		})
	}
}

func TestTicket_RegisterResponse_ClosedTicketRejected(t *testing.T) {
	ticket, err := ReconstructTicket(10, 7, "subject", "message", vo.StatusClosed, 2, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("ReconstructTicket() error = %v", err)
	}

	response, err := NewResponse(10, 7, "reopening?", false)
	if err != nil {
		t.Fatalf("NewResponse() error = %v", err)
	}

	if err := ticket.RegisterResponse(response); err == nil {
		t.Error("RegisterResponse() on closed ticket error = nil, want error")
	}
	if len(ticket.Responses()) != 0 {
		t.Errorf("responses = %d, want 0", len(ticket.Responses()))
	}
}

func TestTicket_RegisterResponse_TicketIDMismatch(t *testing.T) {
	ticket := reconstructOpenTicket(t, 10, 7)

	response, err := NewResponse(11, 7, "wrong thread", false)
	if err != nil {
		t.Fatalf("NewResponse() error = %v", err)
	}

	if err := ticket.RegisterResponse(response); err == nil {
		t.Error("RegisterResponse() with mismatched ticket ID error = nil, want error")
	}
}

func TestTicket_Close(t *testing.T) {
	tests := []struct {
		name   string
		status vo.Status
	}{
		{"close open ticket", vo.StatusOpen},
		{"close in_progress ticket", vo.StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := ReconstructTicket(10, 7, "subject", "message", tt.status, 1, time.Now(), time.Now())
			if err != nil {
				t.Fatalf("ReconstructTicket() error = %v", err)
			}

			if err := ticket.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}
			if !ticket.Status().IsClosed() {
				t.Errorf("status after close = %s, want %s", ticket.Status(), vo.StatusClosed)
			}
		})
	}
}

func TestTicket_Close_AlreadyClosedIsNoop(t *testing.T) {
	ticket, err := ReconstructTicket(10, 7, "subject", "message", vo.StatusClosed, 2, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("ReconstructTicket() error = %v", err)
	}

	if err := ticket.Close(); err != nil {
		t.Errorf("Close() on closed ticket error = %v, want nil", err)
	}
}

func TestTicket_SetID(t *testing.T) {
	ticket, err := NewTicket(7, "subject", "message")
	if err != nil {
		t.Fatalf("NewTicket() error = %v", err)
	}

	if err := ticket.SetID(42); err != nil {
		t.Fatalf("SetID(42) error = %v", err)
	}
	if ticket.ID() != 42 {
		t.Errorf("ID() = %d, want 42", ticket.ID())
	}
	if err := ticket.SetID(43); err == nil {
		t.Error("SetID() on ticket with ID error = nil, want error")
	}
}

func reconstructOpenTicket(t *testing.T, id, ownerID uint) *Ticket {
	t.Helper()
	ticket, err := ReconstructTicket(id, ownerID, "subject", "message", vo.StatusOpen, 1, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("ReconstructTicket() error = %v", err)
	}
	return ticket
}
