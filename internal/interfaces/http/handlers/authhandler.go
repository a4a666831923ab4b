package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"zarya/internal/application/user/usecases"
	"zarya/internal/shared/config"
	"zarya/internal/shared/constants"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/utils"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler serves registration, login and logout. Sessions are
// carried in an HTTP-only cookie.
type AuthHandler struct {
	register  usecases.RegisterExecutor
	login     usecases.LoginExecutor
	cookieCfg config.CookieConfig
	logger    logger.Interface
}

func NewAuthHandler(
	register usecases.RegisterExecutor,
	login usecases.LoginExecutor,
	cookieCfg config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		register:  register,
		login:     login,
		cookieCfg: cookieCfg,
		logger:    logger.NewLogger(),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username, email and password are required")
		return
	}

	result, err := h.register.Execute(c.Request.Context(), usecases.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.User, "registration successful")
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := h.login.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, int(result.ExpiresIn))
	utils.SuccessResponse(c, http.StatusOK, "login successful", result.User)
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(parseSameSite(h.cookieCfg.SameSite))
	c.SetCookie(
		constants.SessionCookieName,
		token,
		maxAge,
		h.cookieCfg.Path,
		h.cookieCfg.Domain,
		h.cookieCfg.Secure,
		true,
	)
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
