package fx

import (
	"time"

	"Fluxo/internal/domain/account"
	"Fluxo/internal/domain/automation"
	"Fluxo/internal/domain/budget"
	"Fluxo/internal/domain/dashboard"
	"Fluxo/internal/domain/debt"
	"Fluxo/internal/domain/goal"
	"Fluxo/internal/domain/investment"
	"Fluxo/internal/domain/invoice"
	"Fluxo/internal/domain/loan"
	"Fluxo/internal/domain/notification"
	"Fluxo/internal/domain/recurring"
	"Fluxo/internal/domain/subscription"
	"Fluxo/internal/domain/transaction"
	"Fluxo/internal/domain/user"
	"Fluxo/internal/middleware"
	"Fluxo/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler HTTP e o rate limiter de autenticação
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	jwtSvc *middleware.JwtService,
	userSvc *user.Service,
	accountSvc *account.Service,
	transactionSvc *transaction.Service,
	recurringSvc *recurring.Service,
	automationSvc *automation.Service,
	invoiceSvc *invoice.Service,
	notificationSvc *notification.Service,
	subscriptionSvc *subscription.Service,
	budgetSvc *budget.Service,
	goalSvc *goal.Service,
	debtSvc *debt.Service,
	loanSvc *loan.Service,
	investmentSvc *investment.Service,
	dashboardSvc *dashboard.Service,
) *routes.Handler {
	return &routes.Handler{
		JwtService:          jwtSvc,
		UserService:         userSvc,
		AccountService:      accountSvc,
		TransactionService:  transactionSvc,
		RecurringService:    recurringSvc,
		AutomationService:   automationSvc,
		InvoiceService:      invoiceSvc,
		NotificationService: notificationSvc,
		SubscriptionService: subscriptionSvc,
		BudgetService:       budgetSvc,
		GoalService:         goalSvc,
		DebtService:         debtSvc,
		LoanService:         loanSvc,
		InvestmentService:   investmentSvc,
		DashboardService:    dashboardSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
