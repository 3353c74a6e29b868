package investment

import (
	"context"
	"errors"
	"strings"
	"time"

	"Fluxo/internal/domain/shared"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
	shared.BaseService
}

func NewService(repo Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{
		Repository: repo,
		BaseService: shared.BaseService{
			UserChecker: userChecker,
		},
	}
}

func (s *Service) CreateInvestment(ctx context.Context, investment *Investment) error {
	if err := s.EnsureUserExists(ctx, investment.UserId); err != nil {
		return err
	}

	if err := s.validate(investment); err != nil {
		return err
	}

	now := time.Now()
	if pkg.IsEmptyULID(investment.Id) {
		investment.Id = pkg.GenerateULIDObject()
	}
	investment.Symbol = strings.ToUpper(strings.TrimSpace(investment.Symbol))
	if investment.CurrentPrice == 0 {
		investment.CurrentPrice = investment.AveragePrice
	}
	investment.CreatedAt = now
	investment.UpdatedAt = now

	if err := s.Repository.Create(ctx, investment); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) UpdateInvestment(ctx context.Context, investment *Investment) error {
	stored, err := s.GetInvestmentByID(ctx, investment.Id, investment.UserId)
	if err != nil {
		return err
	}

	if err := s.validate(investment); err != nil {
		return err
	}

	stored.Symbol = strings.ToUpper(strings.TrimSpace(investment.Symbol))
	stored.Name = investment.Name
	stored.Quantity = investment.Quantity
	stored.AveragePrice = investment.AveragePrice
	if investment.CurrentPrice > 0 {
		stored.CurrentPrice = investment.CurrentPrice
	}
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) DeleteInvestment(ctx context.Context, investmentID, userID ulid.ULID) error {
	if _, err := s.GetInvestmentByID(ctx, investmentID, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, investmentID, userID)
}

func (s *Service) GetInvestmentByID(ctx context.Context, investmentID, userID ulid.ULID) (*Investment, error) {
	investment, err := s.Repository.GetByID(ctx, investmentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrInvestmentNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return investment, nil
}

func (s *Service) ListInvestments(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Investment, int64, error) {
	investments, total, err := s.Repository.GetByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return investments, total, nil
}

// UpdatePrice atualiza a cotação corrente de uma posição.
func (s *Service) UpdatePrice(ctx context.Context, investmentID, userID ulid.ULID, price float64) error {
	if price <= 0 {
		return appErrors.NewValidationError("price", "deve ser maior que zero")
	}

	investment, err := s.GetInvestmentByID(ctx, investmentID, userID)
	if err != nil {
		return err
	}

	investment.CurrentPrice = price
	investment.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, investment); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// PortfolioValue soma o valor de mercado de todas as posições do usuário.
func (s *Service) PortfolioValue(ctx context.Context, userID ulid.ULID) (float64, error) {
	investments, err := s.Repository.GetAllByUserID(ctx, userID)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}

	var total float64
	for _, investment := range investments {
		total += investment.MarketValue()
	}
	return total, nil
}

func (s *Service) validate(investment *Investment) error {
	if strings.TrimSpace(investment.Symbol) == "" {
		return appErrors.NewValidationError("symbol", "é obrigatório")
	}
	if investment.Quantity <= 0 {
		return appErrors.NewValidationError("quantity", "deve ser maior que zero")
	}
	if investment.AveragePrice <= 0 {
		return appErrors.NewValidationError("averagePrice", "deve ser maior que zero")
	}
	return nil
}
