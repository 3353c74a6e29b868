package invoice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"Fluxo/internal/domain/account"
	"Fluxo/internal/domain/shared"
	"Fluxo/internal/domain/transaction"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeRepository struct {
	stored  *Invoice
	updated *Invoice

	markOverdueFn func(ctx context.Context, asOf time.Time) (int64, error)
}

func (f *fakeRepository) Create(ctx context.Context, invoice *Invoice) error {
	f.stored = invoice
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, invoice *Invoice) error {
	f.updated = invoice
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, invoiceID, userID ulid.ULID) error {
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, invoiceID, userID ulid.ULID) (*Invoice, error) {
	if f.stored == nil {
		return nil, errors.New("fatura não encontrada")
	}
	return f.stored, nil
}

func (f *fakeRepository) GetByUserID(ctx context.Context, userID ulid.ULID, status *InvoiceStatus, pagination *pkg.PaginationParams) ([]*Invoice, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	if f.markOverdueFn != nil {
		return f.markOverdueFn(ctx, asOf)
	}
	return 0, nil
}

type fakeTransactionRepository struct {
	created []*transaction.Transaction
}

func (f *fakeTransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	f.created = append(f.created, tx)
	return nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID) error {
	return nil
}

func (f *fakeTransactionRepository) GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*transaction.Transaction, error) {
	return nil, errors.New("não implementado")
}

func (f *fakeTransactionRepository) GetAll(ctx context.Context, userID ulid.ULID, accountID *ulid.ULID, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	return nil, 0, nil
}

func (f *fakeTransactionRepository) GetByMonth(ctx context.Context, userID ulid.ULID, year int, month int) ([]*transaction.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepository) AddTag(ctx context.Context, transactionID ulid.ULID, tag string) error {
	return nil
}

type fakeAccountRepository struct {
	account *account.Account
	deltas  []float64
}

func (f *fakeAccountRepository) Create(ctx context.Context, acc *account.Account) error { return nil }
func (f *fakeAccountRepository) Update(ctx context.Context, acc *account.Account) error { return nil }
func (f *fakeAccountRepository) Delete(ctx context.Context, accountID, userID ulid.ULID) error {
	return nil
}

func (f *fakeAccountRepository) GetById(ctx context.Context, accountID, userID ulid.ULID) (*account.Account, error) {
	if f.account == nil {
		return nil, errors.New("conta não encontrada")
	}
	return f.account, nil
}

func (f *fakeAccountRepository) GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*account.Account, int64, error) {
	return nil, 0, nil
}

func (f *fakeAccountRepository) GetAllByUserId(ctx context.Context, userID ulid.ULID) ([]*account.Account, error) {
	return nil, nil
}

func (f *fakeAccountRepository) UpdateBalance(ctx context.Context, accountID ulid.ULID, delta float64) error {
	f.deltas = append(f.deltas, delta)
	if f.account != nil {
		f.account.Balance += delta
	}
	return nil
}

func (f *fakeAccountRepository) SetBalance(ctx context.Context, accountID ulid.ULID, balance float64) error {
	return nil
}

func (f *fakeAccountRepository) GetTotalBalance(ctx context.Context, userID ulid.ULID) (float64, error) {
	return 0, nil
}

func (f *fakeAccountRepository) SumTransactions(ctx context.Context, accountID ulid.ULID) (float64, error) {
	return 0, nil
}

type fakeUserGetter struct{}

func (f *fakeUserGetter) Exists(ctx context.Context, userID ulid.ULID) error { return nil }

func newTestService(repo Repository, txRepo transaction.Repository, accRepo account.Repository) *Service {
	checker := shared.NewUserCheckerService(&fakeUserGetter{})
	accountSvc := account.NewService(accRepo, checker)
	txSvc := transaction.NewService(txRepo, accountSvc, checker)
	return NewService(repo, txSvc, checker)
}

func testAccount(userID ulid.ULID) *account.Account {
	return &account.Account{
		Id:      pkg.GenerateULIDObject(),
		UserId:  userID,
		Name:    "Conta PJ",
		Type:    account.TypeBank,
		Balance: 500,
	}
}

func TestCreateInvoice_Defaults(t *testing.T) {
	t.Parallel()

	userID := pkg.GenerateULIDObject()
	repo := &fakeRepository{}
	svc := newTestService(repo, &fakeTransactionRepository{}, &fakeAccountRepository{})

	invoice := &Invoice{
		UserId:     userID,
		ClientName: "Cliente Exemplo",
		Amount:     1200,
	}

	if err := svc.CreateInvoice(context.Background(), invoice); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if pkg.IsEmptyULID(invoice.Id) {
		t.Error("id não foi gerado")
	}
	if !strings.HasPrefix(invoice.Number, "AUTO-") {
		t.Errorf("número gerado = %q, esperava prefixo AUTO-", invoice.Number)
	}
	if invoice.Status != StatusDraft {
		t.Errorf("status = %s, esperava DRAFT", invoice.Status)
	}
	if invoice.IssueDate.IsZero() {
		t.Error("data de emissão não foi preenchida")
	}
	if !invoice.DueDate.Equal(invoice.IssueDate.AddDate(0, 0, 30)) {
		t.Errorf("vencimento = %v, esperava emissão + 30 dias", invoice.DueDate)
	}
}

func TestCreateInvoice_RejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeRepository{}, &fakeTransactionRepository{}, &fakeAccountRepository{})

	invoice := &Invoice{UserId: pkg.GenerateULIDObject(), Amount: 0}
	if err := svc.CreateInvoice(context.Background(), invoice); err == nil {
		t.Fatal("esperava erro de validação para valor zero")
	}
}

func TestPayInvoice_CreatesIncomeAndMarksPaid(t *testing.T) {
	t.Parallel()

	userID := pkg.GenerateULIDObject()
	accRepo := &fakeAccountRepository{account: testAccount(userID)}
	txRepo := &fakeTransactionRepository{}

	repo := &fakeRepository{
		stored: &Invoice{
			Id:        pkg.GenerateULIDObject(),
			UserId:    userID,
			Number:    "FAT-001",
			Amount:    1500,
			Status:    StatusSent,
			IssueDate: time.Now().AddDate(0, 0, -10),
			DueDate:   time.Now().AddDate(0, 0, 20),
		},
	}

	svc := newTestService(repo, txRepo, accRepo)

	err := svc.PayInvoice(context.Background(), repo.stored.Id, userID, accRepo.account.Id)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(txRepo.created) != 1 {
		t.Fatalf("criou %d transações, esperava 1", len(txRepo.created))
	}
	tx := txRepo.created[0]
	if tx.Type != transaction.Income {
		t.Errorf("tipo da transação = %s, esperava INCOME", tx.Type)
	}
	if tx.Amount != 1500 {
		t.Errorf("valor da transação = %v, esperava 1500", tx.Amount)
	}
	if !tx.IsBusiness {
		t.Error("recebimento de fatura deveria ser marcado como negócio")
	}
	if !strings.Contains(tx.Description, "FAT-001") {
		t.Errorf("descrição = %q, esperava o número da fatura", tx.Description)
	}

	if repo.updated == nil {
		t.Fatal("fatura não foi atualizada")
	}
	if repo.updated.Status != StatusPaid {
		t.Errorf("status = %s, esperava PAID", repo.updated.Status)
	}
	if repo.updated.PaidAt == nil {
		t.Error("PaidAt não foi preenchido")
	}
	if repo.updated.TransactionId == nil || *repo.updated.TransactionId != tx.Id {
		t.Error("fatura não ficou ligada à transação de recebimento")
	}

	if accRepo.account.Balance != 2000 {
		t.Errorf("saldo final = %v, esperava 2000", accRepo.account.Balance)
	}
}

func TestPayInvoice_AlreadyPaid(t *testing.T) {
	t.Parallel()

	userID := pkg.GenerateULIDObject()
	paidAt := time.Now()
	repo := &fakeRepository{
		stored: &Invoice{
			Id:     pkg.GenerateULIDObject(),
			UserId: userID,
			Number: "FAT-002",
			Amount: 800,
			Status: StatusPaid,
			PaidAt: &paidAt,
		},
	}
	txRepo := &fakeTransactionRepository{}
	svc := newTestService(repo, txRepo, &fakeAccountRepository{account: testAccount(userID)})

	err := svc.PayInvoice(context.Background(), repo.stored.Id, userID, pkg.GenerateULIDObject())
	if err == nil {
		t.Fatal("esperava erro ao pagar fatura já paga")
	}
	if len(txRepo.created) != 0 {
		t.Errorf("criou %d transações, esperava 0", len(txRepo.created))
	}
}

func TestUpdateInvoice_PaidIsImmutable(t *testing.T) {
	t.Parallel()

	userID := pkg.GenerateULIDObject()
	repo := &fakeRepository{
		stored: &Invoice{
			Id:     pkg.GenerateULIDObject(),
			UserId: userID,
			Number: "FAT-003",
			Amount: 300,
			Status: StatusPaid,
		},
	}
	svc := newTestService(repo, &fakeTransactionRepository{}, &fakeAccountRepository{})

	update := &Invoice{Id: repo.stored.Id, UserId: userID, Amount: 999}
	if err := svc.UpdateInvoice(context.Background(), update); err == nil {
		t.Fatal("esperava erro ao alterar fatura paga")
	}
}

func TestSweepOverdue_Delegates(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepository{
		markOverdueFn: func(ctx context.Context, got time.Time) (int64, error) {
			if !got.Equal(asOf) {
				t.Errorf("asOf = %v, esperava %v", got, asOf)
			}
			return 4, nil
		},
	}
	svc := newTestService(repo, &fakeTransactionRepository{}, &fakeAccountRepository{})

	updated, err := svc.SweepOverdue(context.Background(), asOf)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if updated != 4 {
		t.Errorf("updated = %d, esperava 4", updated)
	}
}
