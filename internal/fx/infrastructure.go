package fx

import (
	"Fluxo/config"
	"Fluxo/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		infrastructure.NewUserRepository,
		infrastructure.NewAccountRepository,
		infrastructure.NewTransactionRepository,
		infrastructure.NewRecurringRepository,
		infrastructure.NewAutomationRepository,
		infrastructure.NewInvoiceRepository,
		infrastructure.NewNotificationRepository,
		infrastructure.NewSubscriptionRepository,
		infrastructure.NewBudgetRepository,
		infrastructure.NewGoalRepository,
		infrastructure.NewDebtRepository,
		infrastructure.NewLoanRepository,
		infrastructure.NewInvestmentRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}
