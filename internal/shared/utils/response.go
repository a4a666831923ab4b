package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zarya/internal/shared/errors"
)

// APIResponse is the envelope used by every JSON endpoint.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

// ErrorInfo carries error details in an API response.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	// LoginURL is set on unauthorized responses so clients know where to
	// send the caller, the JSON equivalent of a login redirect.
	LoginURL string `json:"login_url,omitempty"`
}

// ListResponse is the payload of paginated list endpoints.
type ListResponse struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// SuccessResponse sends a successful response with the given status code.
func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

// CreatedResponse sends a 201 response.
func CreatedResponse(c *gin.Context, data any, message ...string) {
	response := APIResponse{Success: true, Data: data, Message: "Resource created successfully"}
	if len(message) > 0 {
		response.Message = message[0]
	}
	c.JSON(http.StatusCreated, response)
}

// ErrorResponse sends an error response with an explicit status and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   &ErrorInfo{Type: "error", Message: message},
	})
}

// UnauthorizedResponse sends a 401 with a login redirect hint.
func UnauthorizedResponse(c *gin.Context, message, loginURL string) {
	c.JSON(http.StatusUnauthorized, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:     string(errors.ErrorTypeUnauthorized),
			Message:  message,
			LoginURL: loginURL,
		},
	})
}

// ErrorResponseWithError maps an application error onto the response.
// Unknown errors become a generic 500 so internals never leak.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, APIResponse{
			Success: false,
			Error: &ErrorInfo{
				Type:    string(appErr.Type),
				Message: appErr.Message,
				Details: appErr.Details,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    string(errors.ErrorTypeInternal),
			Message: "Internal server error occurred",
		},
	})
}

// ListSuccessResponse sends a paginated list response.
func ListSuccessResponse(c *gin.Context, items any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data: ListResponse{
			Items:      items,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: TotalPages(total, pageSize),
		},
	})
}

// NoContentResponse sends a 204.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
