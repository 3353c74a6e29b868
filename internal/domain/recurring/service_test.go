package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"Fluxo/internal/domain/account"
	"Fluxo/internal/domain/shared"
	"Fluxo/internal/domain/transaction"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeRepository struct {
	createFn         func(ctx context.Context, rule *RecurringRule) error
	updateFn         func(ctx context.Context, rule *RecurringRule) error
	deleteFn         func(ctx context.Context, ruleID, userID ulid.ULID) error
	getByIDFn        func(ctx context.Context, ruleID, userID ulid.ULID) (*RecurringRule, error)
	getByUserIDFn    func(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*RecurringRule, int64, error)
	getDueRulesFn    func(ctx context.Context, asOf time.Time) ([]*RecurringRule, error)
	advanceNextRunFn func(ctx context.Context, ruleID ulid.ULID, expected, next time.Time) (int64, error)
}

func (f *fakeRepository) Create(ctx context.Context, rule *RecurringRule) error {
	return f.createFn(ctx, rule)
}

func (f *fakeRepository) Update(ctx context.Context, rule *RecurringRule) error {
	return f.updateFn(ctx, rule)
}

func (f *fakeRepository) Delete(ctx context.Context, ruleID, userID ulid.ULID) error {
	return f.deleteFn(ctx, ruleID, userID)
}

func (f *fakeRepository) GetByID(ctx context.Context, ruleID, userID ulid.ULID) (*RecurringRule, error) {
	return f.getByIDFn(ctx, ruleID, userID)
}

func (f *fakeRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*RecurringRule, int64, error) {
	return f.getByUserIDFn(ctx, userID, pagination)
}

func (f *fakeRepository) GetDueRules(ctx context.Context, asOf time.Time) ([]*RecurringRule, error) {
	return f.getDueRulesFn(ctx, asOf)
}

func (f *fakeRepository) AdvanceNextRun(ctx context.Context, ruleID ulid.ULID, expected, next time.Time) (int64, error) {
	return f.advanceNextRunFn(ctx, ruleID, expected, next)
}

type fakeTransactionRepository struct {
	created []*transaction.Transaction
	deleted []ulid.ULID
	calls   int
	failOn  int
	err     error
}

func (f *fakeTransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	call := f.calls
	f.calls++
	if f.err != nil && call == f.failOn {
		return f.err
	}
	f.created = append(f.created, tx)
	return nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID) error {
	f.deleted = append(f.deleted, transactionID)
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

type fakeAutomationRunner struct {
	received []*transaction.Transaction
}

func (f *fakeAutomationRunner) RunOnNewTransactions(ctx context.Context, userID ulid.ULID, txs []*transaction.Transaction) error {
	f.received = append(f.received, txs...)
	return nil
}

func newTestService(repo Repository, txRepo transaction.Repository, accRepo account.Repository) (*Service, *transaction.Service) {
	checker := shared.NewUserCheckerService(&fakeUserGetter{})
	accountSvc := account.NewService(accRepo, checker)
	txSvc := transaction.NewService(txRepo, accountSvc, checker)
	return NewService(repo, txSvc, accountSvc, checker), txSvc
}

func dueAccount(userID ulid.ULID) *account.Account {
	return &account.Account{
		Id:      pkg.GenerateULIDObject(),
		UserId:  userID,
		Name:    "Conta Corrente",
		Type:    account.TypeBank,
		Balance: 10000,
	}
}

func TestProcessDueRules_GeneratesAndAdvances(t *testing.T) {
	t.Parallel()

	rule := monthlyRule(date(2024, time.January, 15))
	accRepo := &fakeAccountRepository{account: dueAccount(rule.UserId)}
	rule.AccountId = accRepo.account.Id
	txRepo := &fakeTransactionRepository{}

	var advancedTo time.Time
	repo := &fakeRepository{
		getDueRulesFn: func(ctx context.Context, asOf time.Time) ([]*RecurringRule, error) {
			return []*RecurringRule{rule}, nil
		},
		advanceNextRunFn: func(ctx context.Context, ruleID ulid.ULID, expected, next time.Time) (int64, error) {
			if !expected.Equal(rule.NextRun) {
				t.Errorf("guarda otimista com cursor inesperado: %v", expected)
			}
			advancedTo = next
			return 1, nil
		},
	}

	svc, txSvc := newTestService(repo, txRepo, accRepo)
	runner := &fakeAutomationRunner{}
	txSvc.Automation = runner

	outcomes, err := svc.ProcessDueRules(context.Background(), date(2024, time.March, 20))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(outcomes) != 1 || outcomes[0].Err != nil {
		t.Fatalf("resultado inesperado: %+v", outcomes)
	}
	if outcomes[0].Generated != 3 {
		t.Errorf("Generated = %d, esperava 3", outcomes[0].Generated)
	}
	if len(txRepo.created) != 3 {
		t.Errorf("persistiu %d transações, esperava 3", len(txRepo.created))
	}
	if !advancedTo.Equal(date(2024, time.April, 15)) {
		t.Errorf("cursor avançou para %v, esperava 2024-04-15", advancedTo)
	}
	if len(runner.received) != 3 {
		t.Errorf("automações receberam %d transações, esperava 3", len(runner.received))
	}
	// despesa recorrente debita a conta
	if accRepo.account.Balance != 10000-3*rule.Amount {
		t.Errorf("saldo final = %v", accRepo.account.Balance)
	}
}

func TestProcessDueRules_PartialInsertFailureKeepsCursor(t *testing.T) {
	t.Parallel()

	rule := monthlyRule(date(2024, time.January, 15))
	accRepo := &fakeAccountRepository{account: dueAccount(rule.UserId)}
	rule.AccountId = accRepo.account.Id
	txRepo := &fakeTransactionRepository{failOn: 2, err: errors.New("conexão perdida")}

	advanced := false
	repo := &fakeRepository{
		getDueRulesFn: func(ctx context.Context, asOf time.Time) ([]*RecurringRule, error) {
			return []*RecurringRule{rule}, nil
		},
		advanceNextRunFn: func(ctx context.Context, ruleID ulid.ULID, expected, next time.Time) (int64, error) {
			advanced = true
			return 1, nil
		},
	}

	svc, _ := newTestService(repo, txRepo, accRepo)

	outcomes, err := svc.ProcessDueRules(context.Background(), date(2024, time.March, 20))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if outcomes[0].Err == nil {
		t.Fatal("esperava erro na regra com falha parcial")
	}
	if advanced {
		t.Error("cursor não pode avançar quando a inserção falhou no meio")
	}
	if outcomes[0].Generated != 2 {
		t.Errorf("Generated = %d, esperava as 2 inseridas antes da falha", outcomes[0].Generated)
	}
}

func TestProcessDueRules_BalanceFailureUndoesInsert(t *testing.T) {
	t.Parallel()

	// despesa de 1500 contra saldo de 100: a inserção passa mas o débito é
	// recusado
	rule := monthlyRule(date(2024, time.January, 15))
	accRepo := &fakeAccountRepository{account: dueAccount(rule.UserId)}
	accRepo.account.Balance = 100
	rule.AccountId = accRepo.account.Id
	txRepo := &fakeTransactionRepository{}

	advanced := false
	repo := &fakeRepository{
		getDueRulesFn: func(ctx context.Context, asOf time.Time) ([]*RecurringRule, error) {
			return []*RecurringRule{rule}, nil
		},
		advanceNextRunFn: func(ctx context.Context, ruleID ulid.ULID, expected, next time.Time) (int64, error) {
			advanced = true
			return 1, nil
		},
	}

	svc, _ := newTestService(repo, txRepo, accRepo)

	outcomes, err := svc.ProcessDueRules(context.Background(), date(2024, time.January, 20))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if outcomes[0].Err == nil {
		t.Fatal("esperava erro de saldo insuficiente")
	}
	if outcomes[0].Generated != 0 {
		t.Errorf("Generated = %d, esperava 0", outcomes[0].Generated)
	}
	if advanced {
		t.Error("cursor não pode avançar com a ocorrência desfeita")
	}

	// o lançamento sem débito aplicado é removido do razão; se ficasse, a
	// retomada o descartaria como duplicado e o saldo nunca seria corrigido
	if len(txRepo.created) != 1 {
		t.Fatalf("inseriu %d lançamentos, esperava 1", len(txRepo.created))
	}
	if len(txRepo.deleted) != 1 || txRepo.deleted[0] != txRepo.created[0].Id {
		t.Error("lançamento órfão deveria ter sido removido")
	}
	if accRepo.account.Balance != 100 {
		t.Errorf("saldo = %v, esperava 100 intacto", accRepo.account.Balance)
	}
}

func TestProcessDueRules_DuplicateOccurrenceIsSkipped(t *testing.T) {
	t.Parallel()

	rule := monthlyRule(date(2024, time.January, 15))
	accRepo := &fakeAccountRepository{account: dueAccount(rule.UserId)}
	rule.AccountId = accRepo.account.Id
	txRepo := &fakeTransactionRepository{failOn: 0, err: errors.New(`duplicate key value violates unique constraint "idx_transactions_origin_occurrence"`)}

	repo := &fakeRepository{
		getDueRulesFn: func(ctx context.Context, asOf time.Time) ([]*RecurringRule, error) {
			return []*RecurringRule{rule}, nil
		},
		advanceNextRunFn: func(ctx context.Context, ruleID ulid.ULID, expected, next time.Time) (int64, error) {
			return 1, nil
		},
	}

	svc, _ := newTestService(repo, txRepo, accRepo)

	outcomes, err := svc.ProcessDueRules(context.Background(), date(2024, time.February, 20))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if outcomes[0].Err != nil {
		t.Fatalf("violação de unicidade deveria ser tolerada: %v", outcomes[0].Err)
	}
	// janeiro duplicado é descartado, fevereiro entra normalmente
	if outcomes[0].Generated != 1 {
		t.Errorf("Generated = %d, esperava 1", outcomes[0].Generated)
	}
	// sem débito para a ocorrência descartada
	if len(accRepo.deltas) != 1 {
		t.Errorf("aplicou %d ajustes de saldo, esperava 1", len(accRepo.deltas))
	}
}

func TestCreateRule_Defaults(t *testing.T) {
	t.Parallel()

	userID := pkg.GenerateULIDObject()
	accRepo := &fakeAccountRepository{account: dueAccount(userID)}

	var created *RecurringRule
	repo := &fakeRepository{
		createFn: func(ctx context.Context, rule *RecurringRule) error {
			created = rule
			return nil
		},
	}

	svc, _ := newTestService(repo, &fakeTransactionRepository{}, accRepo)

	start := date(2024, time.March, 28)
	rule := &RecurringRule{
		UserId:      userID,
		AccountId:   accRepo.account.Id,
		Description: "  Assinatura  ",
		Amount:      49.9,
		Type:        transaction.Expense,
		Frequency:   FrequencyMonthly,
		StartDate:   start,
	}

	if err := svc.CreateRule(context.Background(), rule); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if created == nil {
		t.Fatal("regra não foi persistida")
	}
	if pkg.IsEmptyULID(created.Id) {
		t.Error("Id não foi gerado")
	}
	if created.DayOfMonth != 28 {
		t.Errorf("DayOfMonth = %d, esperava o dia da data inicial", created.DayOfMonth)
	}
	if !created.NextRun.Equal(start) {
		t.Errorf("NextRun = %v, esperava a data inicial", created.NextRun)
	}
	if !created.IsActive {
		t.Error("regra nova deveria nascer ativa")
	}
	if created.Description != "Assinatura" {
		t.Errorf("descrição não normalizada: %q", created.Description)
	}
}

func TestCreateRule_Validation(t *testing.T) {
	t.Parallel()

	userID := pkg.GenerateULIDObject()
	accRepo := &fakeAccountRepository{account: dueAccount(userID)}
	repo := &fakeRepository{
		createFn: func(ctx context.Context, rule *RecurringRule) error { return nil },
	}
	svc, _ := newTestService(repo, &fakeTransactionRepository{}, accRepo)

	base := func() *RecurringRule {
		return &RecurringRule{
			UserId:      userID,
			AccountId:   accRepo.account.Id,
			Description: "Internet",
			Amount:      120,
			Type:        transaction.Expense,
			Frequency:   FrequencyMonthly,
		}
	}

	tests := []struct {
		name   string
		mutate func(r *RecurringRule)
	}{
		{"valor zero", func(r *RecurringRule) { r.Amount = 0 }},
		{"valor negativo", func(r *RecurringRule) { r.Amount = -10 }},
		{"tipo inválido", func(r *RecurringRule) { r.Type = "TRANSFER" }},
		{"frequência inválida", func(r *RecurringRule) { r.Frequency = "WEEKLY" }},
		{"descrição vazia", func(r *RecurringRule) { r.Description = "   " }},
		{"dia fora do intervalo", func(r *RecurringRule) { r.DayOfMonth = 32 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule := base()
			tt.mutate(rule)
			if err := svc.CreateRule(context.Background(), rule); err == nil {
				t.Error("esperava erro de validação")
			}
		})
	}
}

func TestSetActive_Toggle(t *testing.T) {
	t.Parallel()

	rule := monthlyRule(date(2024, time.January, 15))

	updated := false
	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, ruleID, userID ulid.ULID) (*RecurringRule, error) {
			return rule, nil
		},
		updateFn: func(ctx context.Context, r *RecurringRule) error {
			updated = true
			return nil
		},
	}

	svc, _ := newTestService(repo, &fakeTransactionRepository{}, &fakeAccountRepository{})

	if err := svc.SetActive(context.Background(), rule.Id, rule.UserId, false); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !updated || rule.IsActive {
		t.Error("regra deveria ter sido pausada")
	}

	// pausar de novo é idempotente e não toca o repositório
	updated = false
	if err := svc.SetActive(context.Background(), rule.Id, rule.UserId, false); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if updated {
		t.Error("pausa repetida não deveria atualizar")
	}
}
