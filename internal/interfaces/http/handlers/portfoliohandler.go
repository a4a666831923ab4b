package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zarya/internal/application/portfolio/usecases"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/utils"
)

type PortfolioHandler struct {
	listProjects usecases.ListProjectsExecutor
	getProject   usecases.GetProjectExecutor
	logger       logger.Interface
}

func NewPortfolioHandler(
	listProjects usecases.ListProjectsExecutor,
	getProject usecases.GetProjectExecutor,
) *PortfolioHandler {
	return &PortfolioHandler{
		listProjects: listProjects,
		getProject:   getProject,
		logger:       logger.NewLogger(),
	}
}

// List handles GET /portfolio and GET /portfolio/category/:slug.
func (h *PortfolioHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	var categorySlug *string
	if slug := c.Param("slug"); slug != "" {
		categorySlug = &slug
	}

	result, err := h.listProjects.Execute(c.Request.Context(), usecases.ListProjectsQuery{
		CategorySlug: categorySlug,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Projects, result.Total, pagination.Page, pagination.PageSize)
}

// Get handles GET /portfolio/:slug.
func (h *PortfolioHandler) Get(c *gin.Context) {
	result, err := h.getProject.Execute(c.Request.Context(), usecases.GetProjectQuery{
		Slug: c.Param("slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
