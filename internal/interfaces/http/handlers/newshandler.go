package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zarya/internal/application/news/usecases"
	"zarya/internal/shared/constants"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/utils"
)

type NewsHandler struct {
	listArticles usecases.ListArticlesExecutor
	getArticle   usecases.GetArticleExecutor
	logger       logger.Interface
}

func NewNewsHandler(
	listArticles usecases.ListArticlesExecutor,
	getArticle usecases.GetArticleExecutor,
) *NewsHandler {
	return &NewsHandler{
		listArticles: listArticles,
		getArticle:   getArticle,
		logger:       logger.NewLogger(),
	}
}

// List handles GET /news and GET /news/category/:slug.
func (h *NewsHandler) List(c *gin.Context) {
	pagination := utils.ParsePaginationWithDefault(c, constants.NewsPageSize)

	var categorySlug *string
	if slug := c.Param("slug"); slug != "" {
		categorySlug = &slug
	}

	result, err := h.listArticles.Execute(c.Request.Context(), usecases.ListArticlesQuery{
		CategorySlug: categorySlug,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, pagination.Page, pagination.PageSize)
}

// Get handles GET /news/:slug.
func (h *NewsHandler) Get(c *gin.Context) {
	result, err := h.getArticle.Execute(c.Request.Context(), usecases.GetArticleQuery{
		Slug: c.Param("slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
