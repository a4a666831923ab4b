package dto

import (
	"time"

	"zarya/internal/domain/ticket"
)

type TicketDTO struct {
	ID        uint          `json:"id"`
	OwnerID   uint          `json:"owner_id"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Responses []ResponseDTO `json:"responses"`
}

type ResponseDTO struct {
	ID              uint      `json:"id"`
	AuthorID        uint      `json:"author_id"`
	Message         string    `json:"message"`
	IsStaffResponse bool      `json:"is_staff_response"`
	CreatedAt       time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID        uint      `json:"id"`
	OwnerID   uint      `json:"owner_id"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket, responses []*ticket.Response) *TicketDTO {
	if t == nil {
		return nil
	}

	responseDTOs := make([]ResponseDTO, 0, len(responses))
	for _, r := range responses {
		responseDTOs = append(responseDTOs, ToResponseDTO(r))
	}

	return &TicketDTO{
		ID:        t.ID(),
		OwnerID:   t.OwnerID(),
		Subject:   t.Subject(),
		Message:   t.Message(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
		Responses: responseDTOs,
	}
}

func ToResponseDTO(r *ticket.Response) ResponseDTO {
	return ResponseDTO{
		ID:              r.ID(),
		AuthorID:        r.AuthorID(),
		Message:         r.Message(),
		IsStaffResponse: r.IsStaffResponse(),
		CreatedAt:       r.CreatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:        t.ID(),
		OwnerID:   t.OwnerID(),
		Subject:   t.Subject(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}
