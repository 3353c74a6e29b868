package account

import (
	"context"
	"strings"
	"time"

	"Fluxo/internal/domain/shared"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
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

func (s *Service) CreateAccount(ctx context.Context, req *CreateAccountRequest) (*Account, error) {
	if err := s.EnsureUserExists(ctx, req.UserId); err != nil {
		return nil, err
	}

	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	account := &Account{
		Id:             pkg.GenerateULIDObject(),
		UserId:         req.UserId,
		Name:           strings.TrimSpace(req.Name),
		Type:           req.Type,
		InitialBalance: req.InitialBalance,
		Balance:        req.InitialBalance,
		Color:          req.Color,
		PaymentDay:     req.PaymentDay,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repository.Create(ctx, account); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return account, nil
}

func (s *Service) UpdateAccount(ctx context.Context, accountID, userID ulid.ULID, req *UpdateAccountRequest) error {
	account, err := s.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return appErrors.NewValidationError("name", "não pode ser vazio")
		}
		account.Name = name
	}

	if req.Type != nil {
		if !req.Type.IsValid() {
			return appErrors.NewValidationError("type", "tipo de conta inválido")
		}
		account.Type = *req.Type
	}

	if req.Color != nil {
		account.Color = *req.Color
	}

	if req.PaymentDay != nil {
		if *req.PaymentDay < 1 || *req.PaymentDay > 31 {
			return appErrors.NewValidationError("payment_day", "deve estar entre 1 e 31")
		}
		account.PaymentDay = req.PaymentDay
	}

	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	account.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, account)
}

func (s *Service) DeleteAccount(ctx context.Context, accountID, userID ulid.ULID) error {
	account, err := s.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		return err
	}

	if account.Balance != 0 {
		return appErrors.NewValidationError("account", "conta possui saldo, não pode ser removida")
	}

	return s.Repository.Delete(ctx, accountID, userID)
}

func (s *Service) GetAccountByID(ctx context.Context, accountID, userID ulid.ULID) (*Account, error) {
	account, err := s.Repository.GetById(ctx, accountID, userID)
	if err != nil {
		return nil, appErrors.ErrAccountNotFound.WithError(err)
	}

	if account.UserId != userID {
		return nil, appErrors.ErrResourceNotOwned
	}

	return account, nil
}

func (s *Service) ListAccounts(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Account, int64, error) {
	if err := s.EnsureUserExists(ctx, userID); err != nil {
		return nil, 0, err
	}

	return s.Repository.GetByUserId(ctx, userID, pagination)
}

func (s *Service) UpdateBalance(ctx context.Context, accountID, userID ulid.ULID, delta float64) error {
	account, err := s.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		return err
	}

	newBalance := account.Balance + delta
	if account.Type != TypeCreditCard && newBalance < 0 {
		return appErrors.NewValidationError("amount", "saldo insuficiente")
	}

	return s.Repository.UpdateBalance(ctx, accountID, delta)
}

// AccountBalance expõe o saldo corrente para o motor de automações.
func (s *Service) AccountBalance(ctx context.Context, accountID, userID ulid.ULID) (float64, error) {
	account, err := s.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// RecomputeBalance refaz o saldo em cache a partir do saldo inicial mais o
// líquido das transações da conta. O campo Balance é derivação, não fonte
// de verdade.
func (s *Service) RecomputeBalance(ctx context.Context, accountID, userID ulid.ULID) (float64, error) {
	account, err := s.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		return 0, err
	}

	net, err := s.Repository.SumTransactions(ctx, accountID)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}

	balance := account.InitialBalance + net
	if err := s.Repository.SetBalance(ctx, accountID, balance); err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}

	return balance, nil
}

func (s *Service) GetTotalBalance(ctx context.Context, userID ulid.ULID) (float64, error) {
	if err := s.EnsureUserExists(ctx, userID); err != nil {
		return 0, err
	}

	return s.Repository.GetTotalBalance(ctx, userID)
}

func (s *Service) Transfer(ctx context.Context, fromAccountID, toAccountID, userID ulid.ULID, amount float64) error {
	if amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	if fromAccountID == toAccountID {
		return appErrors.NewValidationError("to_account_id", "contas de origem e destino devem ser diferentes")
	}

	fromAccount, err := s.GetAccountByID(ctx, fromAccountID, userID)
	if err != nil {
		return err
	}

	if _, err := s.GetAccountByID(ctx, toAccountID, userID); err != nil {
		return err
	}

	if fromAccount.Type != TypeCreditCard && fromAccount.Balance < amount {
		return appErrors.NewValidationError("amount", "saldo insuficiente na conta de origem")
	}

	if err := s.Repository.UpdateBalance(ctx, fromAccountID, -amount); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Repository.UpdateBalance(ctx, toAccountID, amount); err != nil {
		// desfaz o débito para não deixar as contas inconsistentes
		_ = s.Repository.UpdateBalance(ctx, fromAccountID, amount)
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) validateCreateRequest(req *CreateAccountRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}

	if !req.Type.IsValid() {
		return appErrors.NewValidationError("type", "tipo de conta inválido")
	}

	if req.PaymentDay != nil && (*req.PaymentDay < 1 || *req.PaymentDay > 31) {
		return appErrors.NewValidationError("payment_day", "deve estar entre 1 e 31")
	}

	return nil
}

type CreateAccountRequest struct {
	UserId         ulid.ULID
	Name           string
	Type           AccountType
	InitialBalance float64
	Color          string
	PaymentDay     *int
}

type UpdateAccountRequest struct {
	Name       *string
	Type       *AccountType
	Color      *string
	PaymentDay *int
	IsActive   *bool
}
