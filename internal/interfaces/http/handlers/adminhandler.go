package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	newsusecases "zarya/internal/application/news/usecases"
	pageusecases "zarya/internal/application/page/usecases"
	portfoliousecases "zarya/internal/application/portfolio/usecases"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/utils"
)

type SaveCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ShowInMenu  bool   `json:"show_in_menu"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

type SaveArticleRequest struct {
	Title            string `json:"title" binding:"required,max=200"`
	Slug             string `json:"slug"`
	CategoryID       uint   `json:"category_id" binding:"required"`
	ShortDescription string `json:"short_description"`
	Content          string `json:"content"`
	SEOTitle         string `json:"seo_title"`
	SEOKeywords      string `json:"seo_keywords"`
	SEODescription   string `json:"seo_description"`
	IsActive         *bool  `json:"is_active"`
}

type SaveProjectRequest struct {
	Title            string `json:"title" binding:"required,max=200"`
	Slug             string `json:"slug"`
	CategoryID       uint   `json:"category_id" binding:"required"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	ImageURL         string `json:"image_url"`
	PriceCents       int64  `json:"price_cents"`
	CanOrder         bool   `json:"can_order"`
	SEOTitle         string `json:"seo_title"`
	SEOKeywords      string `json:"seo_keywords"`
	SEODescription   string `json:"seo_description"`
	IsActive         *bool  `json:"is_active"`
}

type SavePageRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	Slug           string `json:"slug"`
	Content        string `json:"content"`
	SEOTitle       string `json:"seo_title"`
	SEOKeywords    string `json:"seo_keywords"`
	SEODescription string `json:"seo_description"`
	ShowInMenu     bool   `json:"show_in_menu"`
	SortOrder      int    `json:"sort_order"`
	ShowOnSite     *bool  `json:"show_on_site"`
}

type UpdateSettingsRequest struct {
	SiteName      string            `json:"site_name" binding:"required,max=200"`
	Tagline       string            `json:"tagline"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email" binding:"omitempty,email"`
	Address       string            `json:"address"`
	SocialLinks   map[string]string `json:"social_links"`
	SiteClosed    bool              `json:"site_closed"`
	ClosedMessage string            `json:"closed_message"`
}

// AdminHandler serves the staff content management surface: news,
// portfolio and page CRUD plus the site settings singleton.
type AdminHandler struct {
	saveArticle        newsusecases.SaveArticleExecutor
	deleteArticle      newsusecases.DeleteArticleExecutor
	saveNewsCat        newsusecases.SaveCategoryExecutor
	deleteNewsCat      newsusecases.DeleteCategoryExecutor
	saveProject        portfoliousecases.SaveProjectExecutor
	deleteProject      portfoliousecases.DeleteProjectExecutor
	savePortfolioCat   portfoliousecases.SaveCategoryExecutor
	deletePortfolioCat portfoliousecases.DeleteCategoryExecutor
	listPages          pageusecases.ListPagesExecutor
	savePage           pageusecases.SavePageExecutor
	deletePage         pageusecases.DeletePageExecutor
	updateSettings     pageusecases.UpdateSettingsExecutor
	logger             logger.Interface
}

func NewAdminHandler(
	saveArticle newsusecases.SaveArticleExecutor,
	deleteArticle newsusecases.DeleteArticleExecutor,
	saveNewsCat newsusecases.SaveCategoryExecutor,
	deleteNewsCat newsusecases.DeleteCategoryExecutor,
	saveProject portfoliousecases.SaveProjectExecutor,
	deleteProject portfoliousecases.DeleteProjectExecutor,
	savePortfolioCat portfoliousecases.SaveCategoryExecutor,
	deletePortfolioCat portfoliousecases.DeleteCategoryExecutor,
	listPages pageusecases.ListPagesExecutor,
	savePage pageusecases.SavePageExecutor,
	deletePage pageusecases.DeletePageExecutor,
	updateSettings pageusecases.UpdateSettingsExecutor,
) *AdminHandler {
	return &AdminHandler{
		saveArticle:        saveArticle,
		deleteArticle:      deleteArticle,
		saveNewsCat:        saveNewsCat,
		deleteNewsCat:      deleteNewsCat,
		saveProject:        saveProject,
		deleteProject:      deleteProject,
		savePortfolioCat:   savePortfolioCat,
		deletePortfolioCat: deletePortfolioCat,
		listPages:          listPages,
		savePage:           savePage,
		deletePage:         deletePage,
		updateSettings:     updateSettings,
		logger:             logger.NewLogger(),
	}
}

// CreateArticle handles POST /admin/news/articles.
func (h *AdminHandler) CreateArticle(c *gin.Context) {
	h.handleSaveArticle(c, 0)
}

// UpdateArticle handles PUT /admin/news/articles/:id.
func (h *AdminHandler) UpdateArticle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid article id")
		return
	}
	h.handleSaveArticle(c, id)
}

func (h *AdminHandler) handleSaveArticle(c *gin.Context, id uint) {
	var req SaveArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "title and category_id are required")
		return
	}

	result, err := h.saveArticle.Execute(c.Request.Context(), newsusecases.SaveArticleCommand{
		ID:               id,
		Title:            req.Title,
		Slug:             req.Slug,
		CategoryID:       req.CategoryID,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		SEOTitle:         req.SEOTitle,
		SEOKeywords:      req.SEOKeywords,
		SEODescription:   req.SEODescription,
		IsActive:         activeFlag(req.IsActive),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if id == 0 {
		utils.CreatedResponse(c, result, "article created successfully")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "article updated successfully", result)
}

// DeleteArticle handles DELETE /admin/news/articles/:id.
func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := h.deleteArticle.Execute(c.Request.Context(), newsusecases.DeleteArticleCommand{ArticleID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// CreateNewsCategory handles POST /admin/news/categories.
func (h *AdminHandler) CreateNewsCategory(c *gin.Context) {
	h.handleSaveNewsCategory(c, 0)
}

// UpdateNewsCategory handles PUT /admin/news/categories/:id.
func (h *AdminHandler) UpdateNewsCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid category id")
		return
	}
	h.handleSaveNewsCategory(c, id)
}

func (h *AdminHandler) handleSaveNewsCategory(c *gin.Context, id uint) {
	var req SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	result, err := h.saveNewsCat.Execute(c.Request.Context(), newsusecases.SaveCategoryCommand{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ShowInMenu:  req.ShowInMenu,
		SortOrder:   req.SortOrder,
		IsActive:    activeFlag(req.IsActive),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if id == 0 {
		utils.CreatedResponse(c, result, "category created successfully")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "category updated successfully", result)
}

// DeleteNewsCategory handles DELETE /admin/news/categories/:id. The
// category's articles go with it.
func (h *AdminHandler) DeleteNewsCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.deleteNewsCat.Execute(c.Request.Context(), newsusecases.DeleteCategoryCommand{CategoryID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// CreateProject handles POST /admin/portfolio/projects.
func (h *AdminHandler) CreateProject(c *gin.Context) {
	h.handleSaveProject(c, 0)
}

// UpdateProject handles PUT /admin/portfolio/projects/:id.
func (h *AdminHandler) UpdateProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}
	h.handleSaveProject(c, id)
}

func (h *AdminHandler) handleSaveProject(c *gin.Context, id uint) {
	var req SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "title and category_id are required")
		return
	}

	result, err := h.saveProject.Execute(c.Request.Context(), portfoliousecases.SaveProjectCommand{
		ID:               id,
		Title:            req.Title,
		Slug:             req.Slug,
		CategoryID:       req.CategoryID,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		PriceCents:       req.PriceCents,
		CanOrder:         req.CanOrder,
		SEOTitle:         req.SEOTitle,
		SEOKeywords:      req.SEOKeywords,
		SEODescription:   req.SEODescription,
		IsActive:         activeFlag(req.IsActive),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if id == 0 {
		utils.CreatedResponse(c, result, "project created successfully")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "project updated successfully", result)
}

// DeleteProject handles DELETE /admin/portfolio/projects/:id.
func (h *AdminHandler) DeleteProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.deleteProject.Execute(c.Request.Context(), portfoliousecases.DeleteProjectCommand{ProjectID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// CreatePortfolioCategory handles POST /admin/portfolio/categories.
func (h *AdminHandler) CreatePortfolioCategory(c *gin.Context) {
	h.handleSavePortfolioCategory(c, 0)
}

// UpdatePortfolioCategory handles PUT /admin/portfolio/categories/:id.
func (h *AdminHandler) UpdatePortfolioCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid category id")
		return
	}
	h.handleSavePortfolioCategory(c, id)
}

func (h *AdminHandler) handleSavePortfolioCategory(c *gin.Context, id uint) {
	var req SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	result, err := h.savePortfolioCat.Execute(c.Request.Context(), portfoliousecases.SaveCategoryCommand{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ShowInMenu:  req.ShowInMenu,
		SortOrder:   req.SortOrder,
		IsActive:    activeFlag(req.IsActive),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if id == 0 {
		utils.CreatedResponse(c, result, "category created successfully")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "category updated successfully", result)
}

// DeletePortfolioCategory handles DELETE /admin/portfolio/categories/:id.
// The category's projects go with it.
func (h *AdminHandler) DeletePortfolioCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.deletePortfolioCat.Execute(c.Request.Context(), portfoliousecases.DeleteCategoryCommand{CategoryID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// ListPages handles GET /admin/pages.
func (h *AdminHandler) ListPages(c *gin.Context) {
	result, err := h.listPages.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreatePage handles POST /admin/pages.
func (h *AdminHandler) CreatePage(c *gin.Context) {
	h.handleSavePage(c, 0)
}

// UpdatePage handles PUT /admin/pages/:id.
func (h *AdminHandler) UpdatePage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid page id")
		return
	}
	h.handleSavePage(c, id)
}

func (h *AdminHandler) handleSavePage(c *gin.Context, id uint) {
	var req SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "title is required")
		return
	}

	result, err := h.savePage.Execute(c.Request.Context(), pageusecases.SavePageCommand{
		ID:             id,
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		SEOTitle:       req.SEOTitle,
		SEOKeywords:    req.SEOKeywords,
		SEODescription: req.SEODescription,
		ShowInMenu:     req.ShowInMenu,
		SortOrder:      req.SortOrder,
		ShowOnSite:     activeFlag(req.ShowOnSite),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if id == 0 {
		utils.CreatedResponse(c, result, "page created successfully")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "page updated successfully", result)
}

// DeletePage handles DELETE /admin/pages/:id.
func (h *AdminHandler) DeletePage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid page id")
		return
	}

	if err := h.deletePage.Execute(c.Request.Context(), pageusecases.DeletePageCommand{PageID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// UpdateSettings handles PUT /admin/settings.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "site_name is required")
		return
	}

	result, err := h.updateSettings.Execute(c.Request.Context(), pageusecases.UpdateSettingsCommand{
		SiteName:      req.SiteName,
		Tagline:       req.Tagline,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		SocialLinks:   req.SocialLinks,
		SiteClosed:    req.SiteClosed,
		ClosedMessage: req.ClosedMessage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "settings updated successfully", result)
}

// activeFlag defaults omitted visibility flags to true so newly created
// content is live unless explicitly hidden.
func activeFlag(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
