package fx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/ronaldorededigital/confin/config"
	"github.com/ronaldorededigital/confin/internal/domain/user"
	"github.com/ronaldorededigital/confin/internal/infrastructure"
	"github.com/ronaldorededigital/confin/internal/logger"
	"github.com/ronaldorededigital/confin/internal/middleware"
	"github.com/ronaldorededigital/confin/internal/routes"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
	resourceCounter *infrastructure.ResourceCounter,
) {
	router.Use(middleware.CORS())

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
		public.POST("/auth/register", handler.Registration)
		public.POST("/auth/google", handler.GoogleAuth)
		public.POST("/auth/logout", handler.Logout)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser())
	{
		private.GET("/dashboard", handler.GetDashboard)
		private.GET("/insights", handler.GetInsights)

		private.GET("/users/plan", handler.GetUserPlan)

		transactions := private.Group("/transactions")
		{
			transactions.POST("", middleware.CheckResourceLimit("transactions", resourceCounter), handler.CreateTransaction)
			transactions.GET("", handler.GetTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PATCH("/:id", handler.UpdateTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
		}

		categories := private.Group("/categories")
		{
			categories.POST("", middleware.CheckResourceLimit("categories", resourceCounter), handler.CreateCategory)
			categories.GET("", handler.ListCategories)
			categories.PATCH("/:id", handler.UpdateCategory)
			categories.DELETE("/:id", handler.DeleteCategory)
		}

		tickets := private.Group("/tickets")
		{
			tickets.POST("", handler.OpenTicket)
			tickets.GET("", handler.ListMyTickets)
		}

		adminGroup := private.Group("/admin")
		adminGroup.Use(middleware.RequireRole(user.RoleSaasAdmin))
		{
			adminGroup.GET("/overview", handler.GetAdminOverview)
			adminGroup.GET("/users", handler.ListPlatformUsers)
			adminGroup.PATCH("/users/:id/plan", handler.SetUserPlan)
			adminGroup.GET("/tickets", handler.ListAllTickets)
			adminGroup.PATCH("/tickets/:id/resolve", handler.ResolveTicket)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
