package repository

import (
	"errors"

	"context"

	"gorm.io/gorm"

	"zarya/internal/domain/ticket"
	"zarya/internal/infrastructure/persistence/mappers"
	"zarya/internal/infrastructure/persistence/models"
	"zarya/internal/shared/db"
	apperrors "zarya/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return apperrors.NewInternalError("failed to save ticket")
	}

	return t.SetID(model.ID)
}

// Update applies a compare-and-set on the version column. Zero rows
// affected means a concurrent writer advanced the version first.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", t.ID(), t.Version()).
		Updates(map[string]interface{}{
			"status":     t.Status().String(),
			"version":    t.Version() + 1,
			"updated_at": t.UpdatedAt().UnixMilli(),
		})

	if result.Error != nil {
		return apperrors.NewInternalError("failed to update ticket")
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("ticket was modified concurrently")
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, apperrors.NewInternalError("failed to load ticket")
	}

	return r.mapper.ToDomain(&model)
}

// GetUserTickets lists tickets newest first. An ownerID of zero lists
// the whole queue.
func (r *TicketRepository) GetUserTickets(ctx context.Context, ownerID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if ownerID != 0 {
		query = query.Where("owner_id = ?", ownerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewInternalError("failed to count tickets")
	}

	var ticketModels []models.TicketModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list tickets")
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func (r *TicketRepository) SaveResponse(ctx context.Context, resp *ticket.Response) error {
	model := r.mapper.ResponseToModel(resp)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return apperrors.NewInternalError("failed to save response")
	}

	return resp.SetID(model.ID)
}

// GetResponses returns a ticket's responses in chronological order.
func (r *TicketRepository) GetResponses(ctx context.Context, ticketID uint) ([]*ticket.Response, error) {
	var responseModels []models.TicketResponseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&responseModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to load responses")
	}

	responses := make([]*ticket.Response, 0, len(responseModels))
	for i := range responseModels {
		resp, err := r.mapper.ResponseToDomain(&responseModels[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func (r *TicketRepository) CountForUser(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, apperrors.NewInternalError("failed to count tickets")
	}

	return count, nil
}
