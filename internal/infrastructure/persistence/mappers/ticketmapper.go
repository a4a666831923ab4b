package mappers

import (
	"time"

	"zarya/internal/domain/ticket"
	vo "zarya/internal/domain/ticket/valueobjects"
	"zarya/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ResponseToModel(r *ticket.Response) *models.TicketResponseModel
	ResponseToDomain(model *models.TicketResponseModel) (*ticket.Response, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:        t.ID(),
		OwnerID:   t.OwnerID(),
		Subject:   t.Subject(),
		Message:   t.Message(),
		Status:    t.Status().String(),
		Version:   t.Version(),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.OwnerID,
		model.Subject,
		model.Message,
		status,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) ResponseToModel(r *ticket.Response) *models.TicketResponseModel {
	return &models.TicketResponseModel{
		ID:              r.ID(),
		TicketID:        r.TicketID(),
		AuthorID:        r.AuthorID(),
		Message:         r.Message(),
		IsStaffResponse: r.IsStaffResponse(),
		CreatedAt:       r.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ResponseToDomain(model *models.TicketResponseModel) (*ticket.Response, error) {
	return ticket.ReconstructResponse(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Message,
		model.IsStaffResponse,
		time.UnixMilli(model.CreatedAt),
	)
}
