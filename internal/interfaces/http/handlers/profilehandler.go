package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zarya/internal/application/user/usecases"
	"zarya/internal/interfaces/http/middleware"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/utils"
)

type UpdateProfileRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type ProfileHandler struct {
	getProfile     usecases.GetProfileExecutor
	updateProfile  usecases.UpdateProfileExecutor
	changePassword usecases.ChangePasswordExecutor
	logger         logger.Interface
}

func NewProfileHandler(
	getProfile usecases.GetProfileExecutor,
	updateProfile usecases.UpdateProfileExecutor,
	changePassword usecases.ChangePasswordExecutor,
) *ProfileHandler {
	return &ProfileHandler{
		getProfile:     getProfile,
		updateProfile:  updateProfile,
		changePassword: changePassword,
		logger:         logger.NewLogger(),
	}
}

// Get handles GET /users/me.
func (h *ProfileHandler) Get(c *gin.Context) {
	result, err := h.getProfile.Execute(c.Request.Context(), usecases.GetProfileQuery{
		UserID: middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PATCH /users/me.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid profile payload")
		return
	}

	result, err := h.updateProfile.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:    middleware.CurrentUserID(c),
		Email:     req.Email,
		Phone:     req.Phone,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated successfully", result)
}

// ChangePassword handles PUT /users/me/password.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "old and new passwords are required")
		return
	}

	err := h.changePassword.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:      middleware.CurrentUserID(c),
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed successfully", nil)
}
