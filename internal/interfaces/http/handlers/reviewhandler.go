package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zarya/internal/application/review/usecases"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/utils"
)

type SubmitReviewRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Message  string `json:"message" binding:"required"`
}

type ModerateReviewRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
}

// ReviewHandler serves the public review wall and the staff moderation
// queue.
type ReviewHandler struct {
	submitReview usecases.SubmitReviewExecutor
	listReviews  usecases.ListReviewsExecutor
	listQueue    usecases.ListModerationQueueExecutor
	moderate     usecases.ModerateReviewExecutor
	logger       logger.Interface
}

func NewReviewHandler(
	submitReview usecases.SubmitReviewExecutor,
	listReviews usecases.ListReviewsExecutor,
	listQueue usecases.ListModerationQueueExecutor,
	moderate usecases.ModerateReviewExecutor,
) *ReviewHandler {
	return &ReviewHandler{
		submitReview: submitReview,
		listReviews:  listReviews,
		listQueue:    listQueue,
		moderate:     moderate,
		logger:       logger.NewLogger(),
	}
}

// Submit handles POST /reviews.
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "full name and message are required")
		return
	}

	result, err := h.submitReview.Execute(c.Request.Context(), usecases.SubmitReviewCommand{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Message:  req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "review submitted for moderation")
}

// List handles GET /reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listReviews.Execute(c.Request.Context(), usecases.ListReviewsQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Reviews, result.Total, pagination.Page, pagination.PageSize)
}

// ListQueue handles GET /moderation/reviews.
func (h *ReviewHandler) ListQueue(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listQueue.Execute(c.Request.Context(), usecases.ListModerationQueueQuery{
		Status:   c.Query("status"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Reviews, result.Total, pagination.Page, pagination.PageSize)
}

// Moderate handles POST /moderation/reviews/:id.
func (h *ReviewHandler) Moderate(c *gin.Context) {
	reviewID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid review id")
		return
	}

	var req ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "decision must be approve or reject")
		return
	}

	result, err := h.moderate.Execute(c.Request.Context(), usecases.ModerateReviewCommand{
		ReviewID: reviewID,
		Decision: usecases.ModerationDecision(req.Decision),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "review moderated successfully", result)
}
