// Package http wires repositories, use cases and handlers into the gin
// engine.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	newsusecases "zarya/internal/application/news/usecases"
	pageusecases "zarya/internal/application/page/usecases"
	portfoliousecases "zarya/internal/application/portfolio/usecases"
	reviewusecases "zarya/internal/application/review/usecases"
	ticketusecases "zarya/internal/application/ticket/usecases"
	userusecases "zarya/internal/application/user/usecases"
	"zarya/internal/infrastructure/auth"
	"zarya/internal/infrastructure/config"
	"zarya/internal/infrastructure/email"
	"zarya/internal/infrastructure/permission"
	"zarya/internal/infrastructure/ratelimit"
	"zarya/internal/infrastructure/repository"
	"zarya/internal/infrastructure/stats"
	"zarya/internal/interfaces/http/handlers"
	"zarya/internal/interfaces/http/middleware"
	"zarya/internal/shared/db"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/services/richtext"
)

// Router holds the wired engine and the pieces the CLI needs to manage.
type Router struct {
	Engine *gin.Engine
}

// NewRouter builds the full HTTP surface from the database handle and
// configuration.
func NewRouter(cfg *config.Config, gdb *gorm.DB, redisClient *redis.Client, log logger.Interface) (*Router, error) {
	// infrastructure
	ticketRepo := repository.NewTicketRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)
	newsRepo := repository.NewNewsRepository(gdb)
	portfolioRepo := repository.NewPortfolioRepository(gdb)
	reviewRepo := repository.NewReviewRepository(gdb)
	pageRepo := repository.NewPageRepository(gdb)

	txMgr := db.NewTransactionManager(gdb)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	notifier := email.NewTicketNotifier(cfg.Email, userRepo)
	richtextSvc := richtext.NewService()

	enforcer, err := permission.NewEnforcer(gdb, log)
	if err != nil {
		return nil, err
	}

	statsProviders := map[string]userusecases.StatsProvider{
		"tickets": stats.NewTicketCountProvider(ticketRepo),
		"reviews": stats.NewReviewCountProvider(userRepo, reviewRepo),
	}

	// use cases
	createTicket := ticketusecases.NewCreateTicketUseCase(ticketRepo, notifier, log)
	getTicket := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTickets := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	addResponse := ticketusecases.NewAddResponseUseCase(ticketRepo, txMgr, notifier, log)
	closeTicket := ticketusecases.NewCloseTicketUseCase(ticketRepo, log)

	register := userusecases.NewRegisterUseCase(userRepo, hasher, txMgr, log)
	login := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	getProfile := userusecases.NewGetProfileUseCase(userRepo, statsProviders, log)
	updateProfile := userusecases.NewUpdateProfileUseCase(userRepo, log)
	changePassword := userusecases.NewChangePasswordUseCase(userRepo, hasher, log)

	listArticles := newsusecases.NewListArticlesUseCase(newsRepo, log)
	getArticle := newsusecases.NewGetArticleUseCase(newsRepo, richtextSvc, log)
	saveArticle := newsusecases.NewSaveArticleUseCase(newsRepo, richtextSvc, log)
	deleteArticle := newsusecases.NewDeleteArticleUseCase(newsRepo, log)
	saveNewsCategory := newsusecases.NewSaveCategoryUseCase(newsRepo, log)
	deleteNewsCategory := newsusecases.NewDeleteCategoryUseCase(newsRepo, txMgr, log)

	listProjects := portfoliousecases.NewListProjectsUseCase(portfolioRepo, log)
	getProject := portfoliousecases.NewGetProjectUseCase(portfolioRepo, richtextSvc, log)
	saveProject := portfoliousecases.NewSaveProjectUseCase(portfolioRepo, richtextSvc, log)
	deleteProject := portfoliousecases.NewDeleteProjectUseCase(portfolioRepo, log)
	savePortfolioCategory := portfoliousecases.NewSaveCategoryUseCase(portfolioRepo, log)
	deletePortfolioCategory := portfoliousecases.NewDeleteCategoryUseCase(portfolioRepo, txMgr, log)

	submitReview := reviewusecases.NewSubmitReviewUseCase(reviewRepo, richtextSvc, log)
	listReviews := reviewusecases.NewListReviewsUseCase(reviewRepo, log)
	listQueue := reviewusecases.NewListModerationQueueUseCase(reviewRepo, log)
	moderateReview := reviewusecases.NewModerateReviewUseCase(reviewRepo, log)

	getPage := pageusecases.NewGetPageUseCase(pageRepo, richtextSvc, log)
	getSiteChrome := pageusecases.NewGetSiteChromeUseCase(pageRepo, log)
	listPages := pageusecases.NewListPagesUseCase(pageRepo, log)
	savePage := pageusecases.NewSavePageUseCase(pageRepo, richtextSvc, log)
	deletePage := pageusecases.NewDeletePageUseCase(pageRepo, log)
	updateSettings := pageusecases.NewUpdateSettingsUseCase(pageRepo, log)

	// handlers
	ticketHandler := handlers.NewTicketHandler(createTicket, getTicket, listTickets, addResponse, closeTicket)
	authHandler := handlers.NewAuthHandler(register, login, cfg.Auth.Cookie)
	profileHandler := handlers.NewProfileHandler(getProfile, updateProfile, changePassword)
	newsHandler := handlers.NewNewsHandler(listArticles, getArticle)
	portfolioHandler := handlers.NewPortfolioHandler(listProjects, getProject)
	reviewHandler := handlers.NewReviewHandler(submitReview, listReviews, listQueue, moderateReview)
	pageHandler := handlers.NewPageHandler(getPage, getSiteChrome)
	adminHandler := handlers.NewAdminHandler(
		saveArticle, deleteArticle, saveNewsCategory, deleteNewsCategory,
		saveProject, deleteProject, savePortfolioCategory, deletePortfolioCategory,
		listPages, savePage, deletePage, updateSettings,
	)

	// engine
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	var limiter ratelimit.Limiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisLimiter(redisClient)
	}
	throttled := func() gin.HandlerFunc {
		if limiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimit(limiter, cfg.RateLimit, log)
	}()

	requireAuth := middleware.RequireAuth(jwtService)
	siteClosed := middleware.SiteClosed(pageRepo, log)

	api := engine.Group("/api/v1")

	// public surface, gated by the maintenance flag; sessions are
	// resolved leniently so staff keep access while the site is closed
	public := api.Group("", middleware.ResolveSession(jwtService), siteClosed)
	{
		public.GET("/site", pageHandler.SiteChrome)
		public.GET("/pages/:slug", pageHandler.Get)

		public.GET("/news", newsHandler.List)
		public.GET("/news/category/:slug", newsHandler.List)
		public.GET("/news/:slug", newsHandler.Get)

		public.GET("/portfolio", portfolioHandler.List)
		public.GET("/portfolio/category/:slug", portfolioHandler.List)
		public.GET("/portfolio/:slug", portfolioHandler.Get)

		public.GET("/reviews", reviewHandler.List)
		public.POST("/reviews", throttled, reviewHandler.Submit)
	}

	// session endpoints
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", throttled, authHandler.Register)
		authGroup.POST("/login", throttled, authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
	}

	// authenticated surface
	authed := api.Group("", requireAuth)
	{
		authed.GET("/users/me", profileHandler.Get)
		authed.PATCH("/users/me", profileHandler.Update)
		authed.PUT("/users/me/password", profileHandler.ChangePassword)

		authed.POST("/tickets", ticketHandler.Create)
		authed.GET("/tickets", ticketHandler.List)
		authed.GET("/tickets/:id", ticketHandler.Get)
		authed.POST("/tickets/:id/responses", ticketHandler.AddResponse)
	}

	// staff workflow, checked against the casbin policy
	staff := api.Group("", requireAuth, middleware.RequireStaff(), middleware.Permission(enforcer, log))
	{
		staff.POST("/tickets/:id/close", ticketHandler.Close)
		staff.GET("/moderation/reviews", reviewHandler.ListQueue)
		staff.POST("/moderation/reviews/:id", reviewHandler.Moderate)

		admin := staff.Group("/admin")
		{
			admin.POST("/news/categories", adminHandler.CreateNewsCategory)
			admin.PUT("/news/categories/:id", adminHandler.UpdateNewsCategory)
			admin.DELETE("/news/categories/:id", adminHandler.DeleteNewsCategory)
			admin.POST("/news/articles", adminHandler.CreateArticle)
			admin.PUT("/news/articles/:id", adminHandler.UpdateArticle)
			admin.DELETE("/news/articles/:id", adminHandler.DeleteArticle)

			admin.POST("/portfolio/categories", adminHandler.CreatePortfolioCategory)
			admin.PUT("/portfolio/categories/:id", adminHandler.UpdatePortfolioCategory)
			admin.DELETE("/portfolio/categories/:id", adminHandler.DeletePortfolioCategory)
			admin.POST("/portfolio/projects", adminHandler.CreateProject)
			admin.PUT("/portfolio/projects/:id", adminHandler.UpdateProject)
			admin.DELETE("/portfolio/projects/:id", adminHandler.DeleteProject)

			admin.GET("/pages", adminHandler.ListPages)
			admin.POST("/pages", adminHandler.CreatePage)
			admin.PUT("/pages/:id", adminHandler.UpdatePage)
			admin.DELETE("/pages/:id", adminHandler.DeletePage)

			admin.PUT("/settings", adminHandler.UpdateSettings)
		}
	}

	return &Router{Engine: engine}, nil
}
