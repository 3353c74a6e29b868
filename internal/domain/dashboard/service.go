package dashboard

import (
	"context"

	"Fluxo/internal/domain/account"
	"Fluxo/internal/domain/debt"
	"Fluxo/internal/domain/investment"
	"Fluxo/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Accounts     *account.Service
	Transactions *transaction.Service
	Investments  *investment.Service
	Debts        *debt.Service
}

func NewService(accounts *account.Service, transactions *transaction.Service, investments *investment.Service, debts *debt.Service) *Service {
	return &Service{
		Accounts:     accounts,
		Transactions: transactions,
		Investments:  investments,
		Debts:        debts,
	}
}

// GetSummary monta o resumo do mês: entradas e saídas, taxa de poupança,
// saldo total das contas, carteira de investimentos e patrimônio líquido.
func (s *Service) GetSummary(ctx context.Context, userID ulid.ULID, year, month int) (*Summary, error) {
	transactions, err := s.Transactions.GetMonthTransactions(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Year: year, Month: month}
	for _, tx := range transactions {
		if tx.Type == transaction.Income {
			summary.TotalIncome += tx.Amount
		} else {
			summary.TotalExpense += tx.Amount
		}
	}
	summary.MonthNet = summary.TotalIncome - summary.TotalExpense
	if summary.TotalIncome > 0 {
		summary.SavingsRate = summary.MonthNet / summary.TotalIncome
	}

	balance, err := s.Accounts.GetTotalBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.TotalBalance = balance

	portfolio, err := s.Investments.PortfolioValue(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.InvestmentsValue = portfolio

	openDebts, err := s.Debts.TotalOpen(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.OpenDebts = openDebts

	summary.NetWorth = summary.TotalBalance + summary.InvestmentsValue - summary.OpenDebts

	return summary, nil
}
