package debt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Fluxo/internal/domain/shared"
	"Fluxo/internal/domain/transaction"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository   Repository
	Transactions *transaction.Service
	shared.BaseService
}

func NewService(repo Repository, txSvc *transaction.Service, userChecker *shared.UserCheckerService) *Service {
	return &Service{
		Repository:   repo,
		Transactions: txSvc,
		BaseService: shared.BaseService{
			UserChecker: userChecker,
		},
	}
}

func (s *Service) CreateDebt(ctx context.Context, debt *Debt) error {
	if err := s.EnsureUserExists(ctx, debt.UserId); err != nil {
		return err
	}

	if err := s.validate(debt); err != nil {
		return err
	}

	now := time.Now()
	if pkg.IsEmptyULID(debt.Id) {
		debt.Id = pkg.GenerateULIDObject()
	}
	debt.Creditor = strings.TrimSpace(debt.Creditor)
	debt.IsSettled = false
	debt.SettledAt = nil
	debt.CreatedAt = now
	debt.UpdatedAt = now

	if err := s.Repository.Create(ctx, debt); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) UpdateDebt(ctx context.Context, debt *Debt) error {
	stored, err := s.GetDebtByID(ctx, debt.Id, debt.UserId)
	if err != nil {
		return err
	}

	if stored.IsSettled {
		return appErrors.NewValidationError("debt", "dívida quitada não pode ser alterada")
	}

	if err := s.validate(debt); err != nil {
		return err
	}

	stored.Creditor = strings.TrimSpace(debt.Creditor)
	stored.Description = debt.Description
	stored.Amount = debt.Amount
	stored.DueDate = debt.DueDate
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) DeleteDebt(ctx context.Context, debtID, userID ulid.ULID) error {
	if _, err := s.GetDebtByID(ctx, debtID, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, debtID, userID)
}

func (s *Service) GetDebtByID(ctx context.Context, debtID, userID ulid.ULID) (*Debt, error) {
	debt, err := s.Repository.GetByID(ctx, debtID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrDebtNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return debt, nil
}

func (s *Service) ListDebts(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Debt, int64, error) {
	debts, total, err := s.Repository.GetByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return debts, total, nil
}

// SettleDebt quita a dívida. Com uma conta informada, registra a despesa
// correspondente pelo fluxo normal de transações.
func (s *Service) SettleDebt(ctx context.Context, debtID, userID ulid.ULID, accountID *ulid.ULID) error {
	debt, err := s.GetDebtByID(ctx, debtID, userID)
	if err != nil {
		return err
	}

	if debt.IsSettled {
		return appErrors.NewValidationError("debt", "dívida já está quitada")
	}

	if accountID != nil {
		tx := &transaction.Transaction{
			UserId:      userID,
			AccountId:   *accountID,
			Type:        transaction.Expense,
			Category:    "Dívidas",
			Amount:      debt.Amount,
			Description: fmt.Sprintf("Quitação de dívida: %s", debt.Creditor),
		}
		if err := s.Transactions.CreateTransaction(ctx, tx); err != nil {
			return err
		}
	}

	now := time.Now()
	debt.IsSettled = true
	debt.SettledAt = &now
	debt.UpdatedAt = now

	if err := s.Repository.Update(ctx, debt); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) TotalOpen(ctx context.Context, userID ulid.ULID) (float64, error) {
	total, err := s.Repository.SumOpen(ctx, userID)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func (s *Service) validate(debt *Debt) error {
	if strings.TrimSpace(debt.Creditor) == "" {
		return appErrors.NewValidationError("creditor", "é obrigatório")
	}
	if debt.Amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}
	return nil
}
