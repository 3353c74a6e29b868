package loan

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

func (s *Service) CreateLoan(ctx context.Context, loan *Loan) error {
	if err := s.EnsureUserExists(ctx, loan.UserId); err != nil {
		return err
	}

	if err := s.validate(loan); err != nil {
		return err
	}

	now := time.Now()
	if pkg.IsEmptyULID(loan.Id) {
		loan.Id = pkg.GenerateULIDObject()
	}
	loan.Counterparty = strings.TrimSpace(loan.Counterparty)
	loan.RemainingAmount = loan.Amount
	loan.IsSettled = false
	loan.CreatedAt = now
	loan.UpdatedAt = now

	if err := s.Repository.Create(ctx, loan); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) DeleteLoan(ctx context.Context, loanID, userID ulid.ULID) error {
	if _, err := s.GetLoanByID(ctx, loanID, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, loanID, userID)
}

func (s *Service) GetLoanByID(ctx context.Context, loanID, userID ulid.ULID) (*Loan, error) {
	loan, err := s.Repository.GetByID(ctx, loanID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrLoanNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return loan, nil
}

func (s *Service) ListLoans(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Loan, int64, error) {
	loans, total, err := s.Repository.GetByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return loans, total, nil
}

// RegisterPayment abate um pagamento do saldo devedor; zera e marca como
// quitado quando o pagamento cobre o restante.
func (s *Service) RegisterPayment(ctx context.Context, loanID, userID ulid.ULID, amount float64) (*Loan, error) {
	if amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	loan, err := s.GetLoanByID(ctx, loanID, userID)
	if err != nil {
		return nil, err
	}

	if loan.IsSettled {
		return nil, appErrors.NewValidationError("loan", "empréstimo já está quitado")
	}

	loan.RemainingAmount -= amount
	if loan.RemainingAmount <= 0 {
		loan.RemainingAmount = 0
		loan.IsSettled = true
	}
	loan.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, loan); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return loan, nil
}

func (s *Service) validate(loan *Loan) error {
	if strings.TrimSpace(loan.Counterparty) == "" {
		return appErrors.NewValidationError("counterparty", "é obrigatória")
	}
	if loan.Amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}
	if !loan.Direction.IsValid() {
		return appErrors.NewValidationError("direction", "direção inválida")
	}
	return nil
}
