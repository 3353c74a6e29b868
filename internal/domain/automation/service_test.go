package automation

import (
	"context"
	"errors"
	"testing"
	"time"

	"Fluxo/internal/domain/shared"
	"Fluxo/internal/domain/transaction"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeRuleRepository struct {
	active  []*Rule
	fired   []ulid.ULID
	created *Rule
}

func (f *fakeRuleRepository) Create(ctx context.Context, rule *Rule) error {
	f.created = rule
	return nil
}

func (f *fakeRuleRepository) Update(ctx context.Context, rule *Rule) error { return nil }

func (f *fakeRuleRepository) Delete(ctx context.Context, ruleID, userID ulid.ULID) error {
	return nil
}

func (f *fakeRuleRepository) GetByID(ctx context.Context, ruleID, userID ulid.ULID) (*Rule, error) {
	for _, rule := range f.active {
		if rule.Id == ruleID {
			return rule, nil
		}
	}
	return nil, errors.New("regra não encontrada")
}

func (f *fakeRuleRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Rule, int64, error) {
	return f.active, int64(len(f.active)), nil
}

func (f *fakeRuleRepository) GetActiveByUserID(ctx context.Context, userID ulid.ULID) ([]*Rule, error) {
	return f.active, nil
}

func (f *fakeRuleRepository) RecordFired(ctx context.Context, ruleID ulid.ULID, at time.Time) error {
	f.fired = append(f.fired, ruleID)
	return nil
}

type fakeAutomationUserGetter struct{}

func (f *fakeAutomationUserGetter) Exists(ctx context.Context, userID ulid.ULID) error { return nil }

func newAutomationService(repo Repository, engine *Engine) *Service {
	checker := shared.NewUserCheckerService(&fakeAutomationUserGetter{})
	return NewService(repo, engine, checker)
}

func matchAllRule(name string, action Action) *Rule {
	return &Rule{
		Id:       pkg.GenerateULIDObject(),
		UserId:   pkg.GenerateULIDObject(),
		Name:     name,
		IsActive: true,
		Trigger:  &TransactionReceivedTrigger{},
		Action:   action,
	}
}

func TestRunOnNewTransactions_DispatchFailureDoesNotBlockOtherRules(t *testing.T) {
	t.Parallel()

	failing := matchAllRule("Faturar", &CreateInvoiceAction{Amount: floatPtr(100)})
	notifier := &fakeNotifier{}
	following := matchAllRule("Notificar", &SendNotificationAction{Title: "Oi", Body: "Tudo bem"})

	repo := &fakeRuleRepository{active: []*Rule{failing, following}}
	engine := &Engine{
		Invoices: &fakeInvoiceCreator{err: errors.New("serviço de faturas indisponível")},
		Notifier: notifier,
	}
	svc := newAutomationService(repo, engine)

	tx := sampleTx(80)
	if err := svc.RunOnNewTransactions(context.Background(), tx.UserId, []*transaction.Transaction{tx}); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(notifier.titles) != 1 {
		t.Error("a regra seguinte deveria ter sido despachada mesmo com a anterior falhando")
	}
	// o disparo conta mesmo com o colaborador falhando
	if len(repo.fired) != 2 {
		t.Errorf("esperava 2 disparos registrados, recebeu %d", len(repo.fired))
	}
}

func TestRunOnNewTransactions_EvaluatesEveryTransaction(t *testing.T) {
	t.Parallel()

	tagger := &fakeTagger{}
	rule := matchAllRule("Etiquetar tudo", &AddTagAction{Tag: "auto"})

	repo := &fakeRuleRepository{active: []*Rule{rule}}
	svc := newAutomationService(repo, &Engine{Tagger: tagger})

	txs := []*transaction.Transaction{sampleTx(10), sampleTx(20), sampleTx(30)}
	if err := svc.RunOnNewTransactions(context.Background(), txs[0].UserId, txs); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(tagger.tags) != 3 {
		t.Errorf("esperava a regra avaliada contra as 3 transações, etiquetou %d", len(tagger.tags))
	}
	if len(repo.fired) != 3 {
		t.Errorf("esperava 3 disparos registrados, recebeu %d", len(repo.fired))
	}
}

func TestRunOnNewTransactions_NonMatchingRuleIsNotRecorded(t *testing.T) {
	t.Parallel()

	rule := matchAllRule("Gasto alto", &SendNotificationAction{})
	rule.Trigger = &TransactionReceivedTrigger{AmountMin: floatPtr(1000)}

	repo := &fakeRuleRepository{active: []*Rule{rule}}
	svc := newAutomationService(repo, &Engine{Notifier: &fakeNotifier{}})

	tx := sampleTx(50)
	if err := svc.RunOnNewTransactions(context.Background(), tx.UserId, []*transaction.Transaction{tx}); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(repo.fired) != 0 {
		t.Error("regra que não casou não deveria registrar disparo")
	}
}

func TestCreateRule_ValidatesTriggerAndAction(t *testing.T) {
	t.Parallel()

	repo := &fakeRuleRepository{}
	svc := newAutomationService(repo, &Engine{})
	userID := pkg.GenerateULIDObject()

	tests := []struct {
		name string
		rule *Rule
	}{
		{
			name: "sem nome",
			rule: &Rule{
				UserId:  userID,
				Trigger: &TransactionReceivedTrigger{},
				Action:  &SendNotificationAction{},
			},
		},
		{
			name: "sem gatilho",
			rule: &Rule{UserId: userID, Name: "Regra", Action: &SendNotificationAction{}},
		},
		{
			name: "sem ação",
			rule: &Rule{UserId: userID, Name: "Regra", Trigger: &TransactionReceivedTrigger{}},
		},
		{
			name: "saldo sem limiar",
			rule: &Rule{
				UserId:  userID,
				Name:    "Regra",
				Trigger: &BalanceBelowTrigger{AccountId: pkg.GenerateULIDObject()},
				Action:  &SendNotificationAction{},
			},
		},
		{
			name: "fatura sem valor",
			rule: &Rule{
				UserId:  userID,
				Name:    "Regra",
				Trigger: &TransactionReceivedTrigger{},
				Action:  &CreateInvoiceAction{},
			},
		},
		{
			name: "etiqueta vazia",
			rule: &Rule{
				UserId:  userID,
				Name:    "Regra",
				Trigger: &TransactionReceivedTrigger{},
				Action:  &AddTagAction{},
			},
		},
		{
			name: "faixa de valores invertida",
			rule: &Rule{
				UserId:  userID,
				Name:    "Regra",
				Trigger: &TransactionReceivedTrigger{AmountMin: floatPtr(100), AmountMax: floatPtr(50)},
				Action:  &SendNotificationAction{},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := svc.CreateRule(context.Background(), tt.rule); err == nil {
				t.Error("esperava erro de validação")
			}
		})
	}
}

func TestCreateRule_Defaults(t *testing.T) {
	t.Parallel()

	repo := &fakeRuleRepository{}
	svc := newAutomationService(repo, &Engine{})

	rule := &Rule{
		UserId:       pkg.GenerateULIDObject(),
		Name:         "  Aviso de saldo  ",
		Trigger:      &BalanceBelowTrigger{AccountId: pkg.GenerateULIDObject(), Threshold: floatPtr(500)},
		Action:       &SendNotificationAction{},
		TriggerCount: 42,
	}

	if err := svc.CreateRule(context.Background(), rule); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if repo.created == nil {
		t.Fatal("regra não foi persistida")
	}
	if pkg.IsEmptyULID(repo.created.Id) {
		t.Error("Id não foi gerado")
	}
	if repo.created.Name != "Aviso de saldo" {
		t.Errorf("nome não normalizado: %q", repo.created.Name)
	}
	if !repo.created.IsActive {
		t.Error("regra nova deveria nascer ativa")
	}
	if repo.created.TriggerCount != 0 || repo.created.LastTriggered != nil {
		t.Error("contadores de disparo deveriam começar zerados")
	}
}

func TestTriggerRoundTrip(t *testing.T) {
	t.Parallel()

	accountID := pkg.GenerateULIDObject()
	original := &TransactionReceivedTrigger{
		AccountId: &accountID,
		AmountMin: floatPtr(0),
		AmountMax: floatPtr(99.9),
	}

	triggerType, config, err := EncodeTrigger(original)
	if err != nil {
		t.Fatalf("erro ao serializar: %v", err)
	}

	decoded, err := ParseTrigger(triggerType, config)
	if err != nil {
		t.Fatalf("erro ao reconstruir: %v", err)
	}

	got, ok := decoded.(*TransactionReceivedTrigger)
	if !ok {
		t.Fatalf("variante errada: %T", decoded)
	}
	// zero explícito sobrevive à ida e volta, não vira "sem filtro"
	if got.AmountMin == nil || *got.AmountMin != 0 {
		t.Error("AmountMin zero configurado foi perdido")
	}
	if got.AccountId == nil || *got.AccountId != accountID {
		t.Error("AccountId foi perdido")
	}
	if got.Category != nil {
		t.Error("campo ausente deveria continuar nulo")
	}
}

func TestParseTrigger_UnknownType(t *testing.T) {
	t.Parallel()

	if _, err := ParseTrigger("TIME_ELAPSED", nil); err == nil {
		t.Error("tipo desconhecido deveria falhar na reconstrução")
	}
}
