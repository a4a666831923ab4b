package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zarya/internal/application/page/usecases"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/utils"
)

type PageHandler struct {
	getPage       usecases.GetPageExecutor
	getSiteChrome usecases.GetSiteChromeExecutor
	logger        logger.Interface
}

func NewPageHandler(
	getPage usecases.GetPageExecutor,
	getSiteChrome usecases.GetSiteChromeExecutor,
) *PageHandler {
	return &PageHandler{
		getPage:       getPage,
		getSiteChrome: getSiteChrome,
		logger:        logger.NewLogger(),
	}
}

// Get handles GET /pages/:slug.
func (h *PageHandler) Get(c *gin.Context) {
	result, err := h.getPage.Execute(c.Request.Context(), usecases.GetPageQuery{
		Slug: c.Param("slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SiteChrome handles GET /site. It returns the settings singleton and
// the menu for page shells.
func (h *PageHandler) SiteChrome(c *gin.Context) {
	result, err := h.getSiteChrome.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
