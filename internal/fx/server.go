package fx

import (
	"context"

	"Fluxo/config"
	docs "Fluxo/docs"
	"Fluxo/internal/logger"
	"Fluxo/internal/middleware"
	"Fluxo/internal/routes"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
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
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/register", handler.Registration)
		public.POST("/auth/login", handler.Authenticate)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser())
	{
		private.GET("/dashboard", handler.GetDashboard)

		users := private.Group("/users")
		{
			users.GET("/me", handler.GetProfile)
			users.PATCH("/me", handler.UpdateUserName)
			users.PATCH("/me/password", handler.UpdateUserPassword)
			users.DELETE("/me", handler.DeleteUser)
		}

		accounts := private.Group("/accounts")
		{
			accounts.POST("", handler.CreateAccount)
			accounts.GET("", handler.ListAccounts)
			accounts.GET("/balance", handler.GetTotalBalance)
			accounts.GET("/:id", handler.GetAccount)
			accounts.PATCH("/:id", handler.UpdateAccount)
			accounts.DELETE("/:id", handler.DeleteAccount)
			accounts.POST("/transfer", handler.TransferBetweenAccounts)
		}

		transactions := private.Group("/transactions")
		{
			transactions.POST("", handler.CreateTransaction)
			transactions.GET("", handler.GetTransactions)
			transactions.GET("/month/:year/:month", handler.GetMonthTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PATCH("/:id", handler.UpdateTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
			transactions.POST("/:id/tags", handler.AddTransactionTag)
		}

		recurring := private.Group("/recurring")
		{
			recurring.POST("", handler.CreateRecurring)
			recurring.GET("", handler.ListRecurrings)
			recurring.GET("/:id", handler.GetRecurring)
			recurring.PATCH("/:id", handler.UpdateRecurring)
			recurring.DELETE("/:id", handler.DeleteRecurring)
			recurring.POST("/:id/pause", handler.PauseRecurring)
			recurring.POST("/:id/resume", handler.ResumeRecurring)
			recurring.POST("/:id/process", handler.ProcessRecurring)
		}

		automations := private.Group("/automations")
		{
			automations.POST("", handler.CreateAutomation)
			automations.GET("", handler.ListAutomations)
			automations.GET("/:id", handler.GetAutomation)
			automations.PATCH("/:id", handler.UpdateAutomation)
			automations.DELETE("/:id", handler.DeleteAutomation)
			automations.POST("/:id/pause", handler.PauseAutomation)
			automations.POST("/:id/resume", handler.ResumeAutomation)
		}

		invoices := private.Group("/invoices")
		{
			invoices.POST("", handler.CreateInvoice)
			invoices.GET("", handler.ListInvoices)
			invoices.GET("/:id", handler.GetInvoice)
			invoices.PATCH("/:id", handler.UpdateInvoice)
			invoices.DELETE("/:id", handler.DeleteInvoice)
			invoices.POST("/:id/pay", handler.PayInvoice)
		}

		notifications := private.Group("/notifications")
		{
			notifications.GET("", handler.ListNotifications)
			notifications.GET("/unread", handler.CountUnreadNotifications)
			notifications.POST("/read-all", handler.MarkAllNotificationsRead)
			notifications.POST("/:id/read", handler.MarkNotificationRead)
			notifications.DELETE("/:id", handler.DeleteNotification)
		}

		subscriptions := private.Group("/subscriptions")
		{
			subscriptions.POST("", handler.CreateSubscription)
			subscriptions.GET("", handler.ListSubscriptions)
			subscriptions.GET("/due-soon", handler.ListSubscriptionsDueSoon)
			subscriptions.GET("/:id", handler.GetSubscription)
			subscriptions.PATCH("/:id", handler.UpdateSubscription)
			subscriptions.DELETE("/:id", handler.DeleteSubscription)
		}

		budgets := private.Group("/budgets")
		{
			budgets.POST("", handler.CreateBudget)
			budgets.GET("/status", handler.GetBudgetStatuses)
			budgets.GET("/:id", handler.GetBudget)
			budgets.PATCH("/:id", handler.UpdateBudget)
			budgets.DELETE("/:id", handler.DeleteBudget)
		}

		goals := private.Group("/goals")
		{
			goals.POST("", handler.CreateGoal)
			goals.GET("", handler.ListGoals)
			goals.GET("/:id", handler.GetGoal)
			goals.PATCH("/:id", handler.UpdateGoal)
			goals.DELETE("/:id", handler.DeleteGoal)
			goals.POST("/:id/contribution", handler.ContributeToGoal)
		}

		debts := private.Group("/debts")
		{
			debts.POST("", handler.CreateDebt)
			debts.GET("", handler.ListDebts)
			debts.GET("/total", handler.GetOpenDebtsTotal)
			debts.GET("/:id", handler.GetDebt)
			debts.PATCH("/:id", handler.UpdateDebt)
			debts.DELETE("/:id", handler.DeleteDebt)
			debts.POST("/:id/settle", handler.SettleDebt)
		}

		loans := private.Group("/loans")
		{
			loans.POST("", handler.CreateLoan)
			loans.GET("", handler.ListLoans)
			loans.GET("/:id", handler.GetLoan)
			loans.DELETE("/:id", handler.DeleteLoan)
			loans.POST("/:id/payment", handler.RegisterLoanPayment)
		}

		investments := private.Group("/investments")
		{
			investments.POST("", handler.CreateInvestment)
			investments.GET("", handler.ListInvestments)
			investments.GET("/portfolio", handler.GetPortfolioValue)
			investments.GET("/:id", handler.GetInvestment)
			investments.PATCH("/:id", handler.UpdateInvestment)
			investments.DELETE("/:id", handler.DeleteInvestment)
			investments.POST("/:id/price", handler.UpdateInvestmentPrice)
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
