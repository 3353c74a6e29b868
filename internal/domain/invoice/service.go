package invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Fluxo/internal/domain/shared"
	"Fluxo/internal/domain/transaction"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/logger"
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

func (s *Service) CreateInvoice(ctx context.Context, invoice *Invoice) error {
	if err := s.EnsureUserExists(ctx, invoice.UserId); err != nil {
		return err
	}

	if invoice.Amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	now := time.Now()
	if pkg.IsEmptyULID(invoice.Id) {
		invoice.Id = pkg.GenerateULIDObject()
	}
	invoice.Number = strings.TrimSpace(invoice.Number)
	if invoice.Number == "" {
		invoice.Number = generateNumber(now)
	}
	if invoice.Status == "" {
		invoice.Status = StatusDraft
	}
	if !invoice.Status.IsValid() {
		return appErrors.NewValidationError("status", "status inválido")
	}
	if invoice.IssueDate.IsZero() {
		invoice.IssueDate = now
	}
	if invoice.DueDate.IsZero() {
		invoice.DueDate = invoice.IssueDate.AddDate(0, 0, 30)
	}
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	if err := s.Repository.Create(ctx, invoice); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("Fatura com este número")
		}
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

// CreateFromAutomation é o colaborador de faturas do motor de automações:
// numeração automática, emissão agora, vencimento em 30 dias, status SENT.
func (s *Service) CreateFromAutomation(ctx context.Context, userID ulid.ULID, amount float64, description string) error {
	now := time.Now()
	invoice := &Invoice{
		UserId:      userID,
		Number:      generateNumber(now),
		Description: description,
		ClientName:  description,
		Amount:      amount,
		Status:      StatusSent,
		IssueDate:   now,
		DueDate:     now.AddDate(0, 0, 30),
	}

	if err := s.CreateInvoice(ctx, invoice); err != nil {
		return err
	}

	logger.Info().
		Str("invoice_id", invoice.Id.String()).
		Str("number", invoice.Number).
		Msg("Fatura criada por automação")
	return nil
}

func (s *Service) UpdateInvoice(ctx context.Context, invoice *Invoice) error {
	stored, err := s.GetInvoiceByID(ctx, invoice.Id, invoice.UserId)
	if err != nil {
		return err
	}

	if stored.Status == StatusPaid {
		return appErrors.NewValidationError("status", "fatura paga não pode ser alterada")
	}

	if invoice.Amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	stored.ClientName = invoice.ClientName
	stored.Description = invoice.Description
	stored.Amount = invoice.Amount
	if invoice.Status != "" {
		if !invoice.Status.IsValid() || invoice.Status == StatusPaid {
			return appErrors.NewValidationError("status", "status inválido")
		}
		stored.Status = invoice.Status
	}
	if !invoice.DueDate.IsZero() {
		stored.DueDate = invoice.DueDate
	}
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) DeleteInvoice(ctx context.Context, invoiceID, userID ulid.ULID) error {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID, userID)
	if err != nil {
		return err
	}

	if invoice.Status == StatusPaid {
		return appErrors.NewValidationError("status", "fatura paga não pode ser removida")
	}

	return s.Repository.Delete(ctx, invoiceID, userID)
}

func (s *Service) GetInvoiceByID(ctx context.Context, invoiceID, userID ulid.ULID) (*Invoice, error) {
	invoice, err := s.Repository.GetByID(ctx, invoiceID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrInvoiceNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return invoice, nil
}

func (s *Service) ListInvoices(ctx context.Context, userID ulid.ULID, status *InvoiceStatus, pagination *pkg.PaginationParams) ([]*Invoice, int64, error) {
	invoices, total, err := s.Repository.GetByUserID(ctx, userID, status, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return invoices, total, nil
}

// PayInvoice quita a fatura e registra a receita na conta informada. A
// transação passa pelo fluxo normal de criação, então automações também
// enxergam o recebimento.
func (s *Service) PayInvoice(ctx context.Context, invoiceID, userID, accountID ulid.ULID) error {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID, userID)
	if err != nil {
		return err
	}

	if invoice.Status == StatusPaid {
		return appErrors.NewValidationError("status", "fatura já está paga")
	}

	tx := &transaction.Transaction{
		UserId:      userID,
		AccountId:   accountID,
		Type:        transaction.Income,
		Category:    "Faturamento",
		Amount:      invoice.Amount,
		Description: fmt.Sprintf("Recebimento fatura %s", invoice.Number),
		IsBusiness:  true,
	}
	if err := s.Transactions.CreateTransaction(ctx, tx); err != nil {
		return err
	}

	now := time.Now()
	invoice.Status = StatusPaid
	invoice.PaidAt = &now
	invoice.TransactionId = &tx.Id
	invoice.UpdatedAt = now

	if err := s.Repository.Update(ctx, invoice); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

// SweepOverdue marca como vencidas as faturas SENT com prazo estourado.
// Chamado pelo worker.
func (s *Service) SweepOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	updated, err := s.Repository.MarkOverdue(ctx, asOf)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	if updated > 0 {
		logger.Info().Int64("invoices", updated).Msg("Faturas marcadas como vencidas")
	}
	return updated, nil
}

// generateNumber produz um número AUTO-<epoch ms>-<sufixo aleatório>. O
// sufixo evita colisão quando duas faturas nascem no mesmo milissegundo.
func generateNumber(now time.Time) string {
	id := pkg.GenerateULID()
	return fmt.Sprintf("AUTO-%d-%s", now.UnixMilli(), id[len(id)-4:])
}
