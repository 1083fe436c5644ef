package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"brandscope/api/internal/config"
	"brandscope/api/internal/metrics"
	"brandscope/api/internal/middleware"
	"brandscope/api/internal/repository"
	"brandscope/api/internal/security"
	"brandscope/api/internal/service"
)

type HandlerSet struct {
	log         zerolog.Logger
	cfg         *config.AppConfig
	authService *service.AuthService
	users       *repository.UserRepository
	sessions    *repository.SessionRepository
	projects    *repository.ProjectRepository
	stats       *metrics.Collector
}

func NewHandlerSet(log zerolog.Logger, cfg *config.AppConfig, verifier security.IdentityVerifier, stats *metrics.Collector) HandlerSet {
	userRepo := repository.NewUserRepository()
	sessionRepo := repository.NewSessionRepository()
	projectRepo := repository.NewProjectRepository()
	auth := service.NewAuthService(userRepo, sessionRepo, verifier, cfg, stats, log)

	return HandlerSet{
		log:         log,
		cfg:         cfg,
		authService: auth,
		users:       userRepo,
		sessions:    sessionRepo,
		projects:    projectRepo,
		stats:       stats,
	}
}

// Stores exposes the repositories for wiring jobs and diagnostics.
func (h HandlerSet) Stores() (*repository.UserRepository, *repository.SessionRepository, *repository.ProjectRepository) {
	return h.users, h.sessions, h.projects
}

func (h HandlerSet) Routes(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	auth := router.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/signup", h.Signup)
	auth.POST("/logout", h.Logout)
	// Diagnostic listing, unauthenticated like the rest of the mock's debug
	// surface. Must not be routed in a real deployment.
	auth.GET("/users", h.ListUsers)

	authed := router.Group("")
	authed.Use(middleware.Auth(h.users, h.sessions, h.stats))

	gate := middleware.RequireProject(h.projects, h.stats)

	ctx := authed.Group("/context")
	ctx.POST("/all", h.CreateContext)
	ctx.POST("/brand", h.CreateBrand)
	ctx.GET("/brands", h.ListBrands)
	ctx.GET("/brand/:projectId", gate, h.GetBrand)
	ctx.GET("/personas/:projectId", gate, h.GetPersonas)
	ctx.POST("/personas/:projectId", gate, h.SavePersonas)
	ctx.GET("/competitors/:projectId", gate, h.GetCompetitors)
	ctx.POST("/competitors/:projectId", gate, h.SaveCompetitors)
	ctx.GET("/topics/:projectId", gate, h.GetTopics)
	ctx.POST("/topics/:projectId", gate, h.SaveTopics)

	authed.GET("/projects/my", h.MyProjects)

	authed.GET("/dashboard-overview/:projectId", gate, h.DashboardOverview)
	authed.GET("/competitor-presence/:projectId", gate, h.CompetitorPresence)
	authed.GET("/position/:projectId", gate, h.Position)
	authed.GET("/presence/:projectId", gate, h.Presence)
	authed.GET("/citations/:projectId", gate, h.Citations)
	authed.GET("/prompt-observations", h.PromptObservations)
	authed.GET("/:projectId/prompt-competitor-perf", gate, h.PromptCompetitorPerf)
}
