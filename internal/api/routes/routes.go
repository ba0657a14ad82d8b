package routes

import (
	"sync"
	"time"

	"dao-governance-backend/internal/api/handlers"
	"dao-governance-backend/internal/api/middleware"
	"dao-governance-backend/internal/auth"
	"dao-governance-backend/internal/config"
	"dao-governance-backend/internal/repository"
	"dao-governance-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories. All services share one repository set, one
	// transaction runner and one mutex: public operations serialize behind
	// the mutex and commit or revert as a whole.
	repos := repository.NewSet(db)
	txRunner := repository.NewTxRunner(db)
	var mu sync.Mutex

	// Initialize services
	accessService := service.NewAccessService(repos, txRunner, &mu, validator)
	organizationService := service.NewOrganizationService(repos, txRunner, &mu, validator)
	proposalService := service.NewProposalService(repos, txRunner, &mu, validator, cfg.GovernanceParams())
	treasuryService := service.NewTreasuryService(repos, txRunner, &mu, validator)
	accountService := service.NewAccountService(repos, txRunner, &mu, validator)

	if err := accessService.EnsureGenesisAdmin(cfg.AdminAddress); err != nil {
		return nil, err
	}

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	adminHandler := handlers.NewAdminHandler(accessService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	proposalHandler := handlers.NewProposalHandler(proposalService)
	treasuryHandler := handlers.NewTreasuryHandler(treasuryService)
	accountHandler := handlers.NewAccountHandler(accountService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics route
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/token", authHandler.Token)
		authRoutes.GET("/validate", authMiddleware.RequireAuth(), authHandler.Validate)
	}

	// Read-only projections
	api := router.Group("/api")
	{
		api.GET("/status", adminHandler.Status)
		api.GET("/roles/:role/:address", adminHandler.HasRole)
		api.GET("/agents", adminHandler.GetAgents)
		api.GET("/agents/:address", adminHandler.GetAgent)

		api.GET("/organizations", organizationHandler.GetOrganizations)
		api.GET("/organizations/:id", organizationHandler.GetOrganization)
		api.GET("/organizations/:id/members", organizationHandler.GetMembers)
		api.GET("/organizations/:id/members/:address", organizationHandler.GetMemberStake)
		api.GET("/organizations/:id/treasury/:asset", treasuryHandler.GetBalance)

		api.GET("/proposals", proposalHandler.GetProposals)
		api.GET("/proposals/:id", proposalHandler.GetProposal)
		api.GET("/proposals/:id/votes", proposalHandler.GetVotingSnapshot)
		api.GET("/proposals/:id/votes/:address", proposalHandler.GetVote)
		api.GET("/proposals/:id/analysis", proposalHandler.GetAnalysis)

		api.GET("/accounts/:address/:asset", accountHandler.GetBalance)
	}

	// State-mutating entry points, all behind authentication
	protected := router.Group("/api")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/organizations", organizationHandler.CreateOrganization)
		protected.POST("/organizations/:id/join", organizationHandler.Join)
		protected.POST("/organizations/:id/stake", organizationHandler.IncreaseStake)
		protected.POST("/organizations/:id/leave", organizationHandler.Leave)
		protected.POST("/organizations/:id/treasury", treasuryHandler.Fund)

		protected.POST("/proposals", proposalHandler.CreateProposal)
		protected.POST("/proposals/:id/analysis", proposalHandler.SubmitAnalysis)
		protected.POST("/proposals/:id/sentiment", proposalHandler.SubmitSentiment)
		protected.POST("/proposals/:id/execution-check", proposalHandler.SubmitExecutionCheck)
		protected.POST("/proposals/:id/vote", proposalHandler.Vote)
		protected.POST("/proposals/:id/finalize", proposalHandler.Finalize)
		protected.POST("/proposals/:id/execute", proposalHandler.Execute)

		protected.POST("/accounts/deposit", accountHandler.Deposit)

		protected.POST("/admin/roles", adminHandler.GrantRole)
		protected.POST("/admin/pause", adminHandler.Pause)
		protected.POST("/admin/unpause", adminHandler.Unpause)
		protected.POST("/admin/agents", adminHandler.RegisterAgent)
		protected.DELETE("/admin/agents/:address", adminHandler.DeactivateAgent)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
