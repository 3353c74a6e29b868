package fx

import (
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
	"Fluxo/internal/domain/shared"
	"Fluxo/internal/domain/subscription"
	"Fluxo/internal/domain/transaction"
	"Fluxo/internal/domain/user"
	"Fluxo/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserServiceAdapter,
		newUserCheckerService,

		newAccountService,
		newTransactionService,
		newRecurringService,

		newAutomationEngine,
		newAutomationService,

		newInvoiceService,
		newNotificationService,
		newSubscriptionService,
		newBudgetService,
		newGoalService,
		newDebtService,
		newLoanService,
		newInvestmentService,
		newDashboardService,
	),
	fx.Invoke(
		// o ciclo transação -> automação -> ação é fechado aqui, depois
		// que todos os services existem
		wireAutomationCollaborators,
	),
)

// wireAutomationCollaborators liga o motor de automações às ações concretas
// e registra o runner no service de transações.
func wireAutomationCollaborators(
	engine *automation.Engine,
	automationSvc *automation.Service,
	transactionSvc *transaction.Service,
	invoiceSvc *invoice.Service,
	notificationSvc *notification.Service,
) {
	engine.Invoices = invoiceSvc
	engine.Notifier = notificationSvc
	engine.Tagger = transactionSvc
	transactionSvc.Automation = automationSvc
}

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newUserServiceAdapter(userSvc *user.Service) *user.ServiceAdapter {
	return user.NewServiceAdapter(userSvc)
}

func newUserCheckerService(adapter *user.ServiceAdapter) *shared.UserCheckerService {
	return shared.NewUserCheckerService(adapter)
}

func newAccountService(
	repo *infrastructure.AccountRepository,
	userChecker *shared.UserCheckerService,
) *account.Service {
	return account.NewService(repo, userChecker)
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	accountSvc *account.Service,
	userChecker *shared.UserCheckerService,
) *transaction.Service {
	return transaction.NewService(repo, accountSvc, userChecker)
}

func newRecurringService(
	repo *infrastructure.RecurringRepository,
	transactionSvc *transaction.Service,
	accountSvc *account.Service,
	userChecker *shared.UserCheckerService,
) *recurring.Service {
	return recurring.NewService(repo, transactionSvc, accountSvc, userChecker)
}

func newAutomationEngine(
	accountSvc *account.Service,
	transactionSvc *transaction.Service,
) *automation.Engine {
	// Invoices, Notifier e Tagger entram via wireAutomationCollaborators
	return automation.NewEngine(accountSvc, transactionSvc)
}

func newAutomationService(
	repo *infrastructure.AutomationRepository,
	engine *automation.Engine,
	userChecker *shared.UserCheckerService,
) *automation.Service {
	return automation.NewService(repo, engine, userChecker)
}

func newInvoiceService(
	repo *infrastructure.InvoiceRepository,
	transactionSvc *transaction.Service,
	userChecker *shared.UserCheckerService,
) *invoice.Service {
	return invoice.NewService(repo, transactionSvc, userChecker)
}

func newNotificationService(
	repo *infrastructure.NotificationRepository,
	userChecker *shared.UserCheckerService,
) *notification.Service {
	return notification.NewService(repo, userChecker)
}

func newSubscriptionService(
	repo *infrastructure.SubscriptionRepository,
	userChecker *shared.UserCheckerService,
) *subscription.Service {
	return subscription.NewService(repo, userChecker)
}

func newBudgetService(
	repo *infrastructure.BudgetRepository,
	transactionSvc *transaction.Service,
	userChecker *shared.UserCheckerService,
) *budget.Service {
	return budget.NewService(repo, transactionSvc, userChecker)
}

func newGoalService(
	repo *infrastructure.GoalRepository,
	userChecker *shared.UserCheckerService,
) *goal.Service {
	return goal.NewService(repo, userChecker)
}

func newDebtService(
	repo *infrastructure.DebtRepository,
	transactionSvc *transaction.Service,
	userChecker *shared.UserCheckerService,
) *debt.Service {
	return debt.NewService(repo, transactionSvc, userChecker)
}

func newLoanService(
	repo *infrastructure.LoanRepository,
	userChecker *shared.UserCheckerService,
) *loan.Service {
	return loan.NewService(repo, userChecker)
}

func newInvestmentService(
	repo *infrastructure.InvestmentRepository,
	userChecker *shared.UserCheckerService,
) *investment.Service {
	return investment.NewService(repo, userChecker)
}

func newDashboardService(
	accountSvc *account.Service,
	transactionSvc *transaction.Service,
	investmentSvc *investment.Service,
	debtSvc *debt.Service,
) *dashboard.Service {
	return dashboard.NewService(accountSvc, transactionSvc, investmentSvc, debtSvc)
}
