package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zarya/internal/application/ticket/usecases"
	"zarya/internal/interfaces/http/middleware"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/utils"
)

type CreateTicketRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type AddResponseRequest struct {
	Message string `json:"message" binding:"required"`
}

// TicketHandler serves the support ticket workflow.
type TicketHandler struct {
	createTicket usecases.CreateTicketExecutor
	getTicket    usecases.GetTicketExecutor
	listTickets  usecases.ListTicketsExecutor
	addResponse  usecases.AddResponseExecutor
	closeTicket  usecases.CloseTicketExecutor
	logger       logger.Interface
}

func NewTicketHandler(
	createTicket usecases.CreateTicketExecutor,
	getTicket usecases.GetTicketExecutor,
	listTickets usecases.ListTicketsExecutor,
	addResponse usecases.AddResponseExecutor,
	closeTicket usecases.CloseTicketExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicket: createTicket,
		getTicket:    getTicket,
		listTickets:  listTickets,
		addResponse:  addResponse,
		closeTicket:  closeTicket,
		logger:       logger.NewLogger(),
	}
}

// Create handles POST /tickets.
func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "subject and message are required")
		return
	}

	result, err := h.createTicket.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		OwnerID: middleware.CurrentUserID(c),
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created successfully")
}

// List handles GET /tickets.
func (h *TicketHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	result, err := h.listTickets.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		UserID:   middleware.CurrentUserID(c),
		IsStaff:  middleware.IsStaff(c),
		Status:   status,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, pagination.Page, pagination.PageSize)
}

// Get handles GET /tickets/:id.
func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket id")
		return
	}

	result, err := h.getTicket.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		UserID:   middleware.CurrentUserID(c),
		IsStaff:  middleware.IsStaff(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddResponse handles POST /tickets/:id/responses.
func (h *TicketHandler) AddResponse(c *gin.Context) {
	ticketID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket id")
		return
	}

	var req AddResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "message is required")
		return
	}

	result, err := h.addResponse.Execute(c.Request.Context(), usecases.AddResponseCommand{
		TicketID: ticketID,
		AuthorID: middleware.CurrentUserID(c),
		IsStaff:  middleware.IsStaff(c),
		Message:  req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "response added successfully")
}

// Close handles POST /tickets/:id/close.
func (h *TicketHandler) Close(c *gin.Context) {
	ticketID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket id")
		return
	}

	result, err := h.closeTicket.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		TicketID: ticketID,
		UserID:   middleware.CurrentUserID(c),
		IsStaff:  middleware.IsStaff(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket closed successfully", result)
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
