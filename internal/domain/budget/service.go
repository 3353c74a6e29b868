package budget

import (
	"context"
	"errors"
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

func (s *Service) CreateBudget(ctx context.Context, budget *Budget) error {
	if err := s.EnsureUserExists(ctx, budget.UserId); err != nil {
		return err
	}

	if err := s.validate(budget); err != nil {
		return err
	}

	now := time.Now()
	if pkg.IsEmptyULID(budget.Id) {
		budget.Id = pkg.GenerateULIDObject()
	}
	budget.Category = strings.TrimSpace(budget.Category)
	budget.CreatedAt = now
	budget.UpdatedAt = now

	if err := s.Repository.Create(ctx, budget); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("Orçamento para esta categoria")
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) UpdateBudget(ctx context.Context, budget *Budget) error {
	stored, err := s.GetBudgetByID(ctx, budget.Id, budget.UserId)
	if err != nil {
		return err
	}

	if err := s.validate(budget); err != nil {
		return err
	}

	stored.Category = strings.TrimSpace(budget.Category)
	stored.MonthlyLimit = budget.MonthlyLimit
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("Orçamento para esta categoria")
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) DeleteBudget(ctx context.Context, budgetID, userID ulid.ULID) error {
	if _, err := s.GetBudgetByID(ctx, budgetID, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, budgetID, userID)
}

func (s *Service) GetBudgetByID(ctx context.Context, budgetID, userID ulid.ULID) (*Budget, error) {
	budget, err := s.Repository.GetByID(ctx, budgetID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrBudgetNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return budget, nil
}

// ListStatuses devolve cada orçamento do usuário com o gasto do mês corrente
// na categoria e o estado derivado.
func (s *Service) ListStatuses(ctx context.Context, userID ulid.ULID) ([]*Status, error) {
	budgets, err := s.Repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	now := time.Now()
	statuses := make([]*Status, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.Transactions.CategoryMonthExpenses(ctx, userID, budget.Category, now)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, budget.StatusFor(spent))
	}
	return statuses, nil
}

func (s *Service) validate(budget *Budget) error {
	if strings.TrimSpace(budget.Category) == "" {
		return appErrors.NewValidationError("category", "é obrigatória")
	}
	if budget.MonthlyLimit <= 0 {
		return appErrors.NewValidationError("monthlyLimit", "deve ser maior que zero")
	}
	return nil
}
