package transaction

import (
	"context"
	"errors"
	"strings"
	"time"

	"Fluxo/internal/domain/account"
	"Fluxo/internal/domain/shared"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/logger"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository     Repository
	AccountService *account.Service
	Automation     AutomationRunner
	shared.BaseService
}

func NewService(repo Repository, accountSvc *account.Service, userChecker *shared.UserCheckerService) *Service {
	return &Service{
		Repository:     repo,
		AccountService: accountSvc,
		BaseService: shared.BaseService{
			UserChecker: userChecker,
		},
	}
}

func (s *Service) CreateTransaction(ctx context.Context, tx *Transaction) error {
	if err := s.EnsureUserExists(ctx, tx.UserId); err != nil {
		return err
	}

	if err := s.validate(tx); err != nil {
		return err
	}

	accountEntity, err := s.AccountService.GetAccountByID(ctx, tx.AccountId, tx.UserId)
	if err != nil {
		return err
	}

	if tx.Type == Expense && accountEntity.Type != account.TypeCreditCard {
		if accountEntity.Balance-tx.Amount < 0 {
			return appErrors.NewValidationError("amount", "saldo insuficiente")
		}
	}

	now := time.Now()
	if pkg.IsEmptyULID(tx.Id) {
		tx.Id = pkg.GenerateULIDObject()
	}
	if tx.Date.IsZero() {
		tx.Date = now
	}
	tx.Description = strings.TrimSpace(tx.Description)
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := s.Repository.Create(ctx, tx); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	if err := s.AccountService.UpdateBalance(ctx, tx.AccountId, tx.UserId, tx.SignedAmount()); err != nil {
		return err
	}

	s.runAutomations(ctx, tx.UserId, []*Transaction{tx})

	return nil
}

func (s *Service) UpdateTransaction(ctx context.Context, tx *Transaction) error {
	if err := s.EnsureUserExists(ctx, tx.UserId); err != nil {
		return err
	}

	stored, err := s.GetTransactionByID(ctx, tx.Id, tx.UserId)
	if err != nil {
		return err
	}

	if err := s.validate(tx); err != nil {
		return err
	}

	if _, err := s.AccountService.GetAccountByID(ctx, tx.AccountId, tx.UserId); err != nil {
		return err
	}

	// desfaz o efeito antigo e aplica o novo, cobrindo troca de conta,
	// de tipo e de valor com o mesmo caminho
	if err := s.AccountService.UpdateBalance(ctx, stored.AccountId, tx.UserId, -stored.SignedAmount()); err != nil {
		return err
	}
	if err := s.AccountService.UpdateBalance(ctx, tx.AccountId, tx.UserId, tx.SignedAmount()); err != nil {
		_ = s.AccountService.UpdateBalance(ctx, stored.AccountId, tx.UserId, stored.SignedAmount())
		return err
	}

	stored.AccountId = tx.AccountId
	stored.Type = tx.Type
	stored.Category = tx.Category
	stored.Amount = tx.Amount
	stored.Description = strings.TrimSpace(tx.Description)
	stored.IsBusiness = tx.IsBusiness
	if !tx.Date.IsZero() {
		stored.Date = tx.Date
	}
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) DeleteTransaction(ctx context.Context, transactionID, userID ulid.ULID) error {
	tx, err := s.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return err
	}

	if err := s.AccountService.UpdateBalance(ctx, tx.AccountId, userID, -tx.SignedAmount()); err != nil {
		return err
	}

	return s.Repository.Delete(ctx, transactionID)
}

func (s *Service) GetTransactionByID(ctx context.Context, transactionID, userID ulid.ULID) (*Transaction, error) {
	tx, err := s.Repository.GetByIDAndUser(ctx, transactionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return tx, nil
}

func (s *Service) GetAllTransactions(ctx context.Context, userID ulid.ULID, accountID *ulid.ULID, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	transactions, total, err := s.Repository.GetAll(ctx, userID, accountID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return transactions, total, nil
}

func (s *Service) GetMonthTransactions(ctx context.Context, userID ulid.ULID, year int, month int) ([]*Transaction, error) {
	transactions, err := s.Repository.GetByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return transactions, nil
}

func (s *Service) AddTag(ctx context.Context, transactionID, userID ulid.ULID, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return appErrors.NewValidationError("tag", "é obrigatória")
	}

	if _, err := s.GetTransactionByID(ctx, transactionID, userID); err != nil {
		return err
	}

	return s.Repository.AddTag(ctx, transactionID, tag)
}

// CategoryMonthExpenses soma as despesas do mês de referência na categoria,
// ignorando caixa. Alimenta o gatilho de limite por categoria e o status de
// orçamentos.
func (s *Service) CategoryMonthExpenses(ctx context.Context, userID ulid.ULID, category string, ref time.Time) (float64, error) {
	transactions, err := s.GetMonthTransactions(ctx, userID, ref.Year(), int(ref.Month()))
	if err != nil {
		return 0, err
	}

	var total float64
	for _, tx := range transactions {
		if tx.Type == Expense && strings.EqualFold(tx.Category, category) {
			total += tx.Amount
		}
	}
	return total, nil
}

// NotifyCreated entrega transações já persistidas ao motor de automações.
// Usado pelo processamento recorrente, que cria transações sem passar por
// CreateTransaction.
func (s *Service) NotifyCreated(ctx context.Context, userID ulid.ULID, txs []*Transaction) {
	s.runAutomations(ctx, userID, txs)
}

func (s *Service) runAutomations(ctx context.Context, userID ulid.ULID, txs []*Transaction) {
	if s.Automation == nil || len(txs) == 0 {
		return
	}
	if err := s.Automation.RunOnNewTransactions(ctx, userID, txs); err != nil {
		logger.Warn().Err(err).Str("user_id", userID.String()).Msg("Falha ao executar automações para novas transações")
	}
}

func (s *Service) validate(tx *Transaction) error {
	if tx.Amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	if !tx.Type.IsValid() {
		return appErrors.NewValidationError("type", "tipo inválido")
	}

	return nil
}
