package automation

import (
	"context"
	"testing"
	"time"

	"Fluxo/internal/domain/transaction"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func sampleTx(amount float64) *transaction.Transaction {
	return &transaction.Transaction{
		Id:          pkg.GenerateULIDObject(),
		UserId:      pkg.GenerateULIDObject(),
		AccountId:   pkg.GenerateULIDObject(),
		Type:        transaction.Expense,
		Category:    "Alimentação",
		Amount:      amount,
		Description: "Supermercado Central",
		Date:        time.Now(),
	}
}

func TestEvaluateTrigger_TransactionReceived_AmountRange(t *testing.T) {
	t.Parallel()

	trigger := &TransactionReceivedTrigger{
		AmountMin: floatPtr(50),
		AmountMax: floatPtr(100),
	}

	tests := []struct {
		amount float64
		want   bool
	}{
		{75, true},
		{50, true},
		{100, true},
		{40, false},
		{150, false},
	}

	for _, tt := range tests {
		got := EvaluateTrigger(trigger, &EvalContext{Transaction: sampleTx(tt.amount)})
		if got != tt.want {
			t.Errorf("valor %v: casou = %v, esperava %v", tt.amount, got, tt.want)
		}
	}
}

func TestEvaluateTrigger_TransactionReceived_Filters(t *testing.T) {
	t.Parallel()

	tx := sampleTx(80)
	otherAccount := pkg.GenerateULIDObject()

	tests := []struct {
		name    string
		trigger *TransactionReceivedTrigger
		want    bool
	}{
		{"sem filtros casa com tudo", &TransactionReceivedTrigger{}, true},
		{"conta correta", &TransactionReceivedTrigger{AccountId: &tx.AccountId}, true},
		{"conta errada", &TransactionReceivedTrigger{AccountId: &otherAccount}, false},
		{"categoria ignora caixa", &TransactionReceivedTrigger{Category: strPtr("alimentação")}, true},
		{"categoria diferente", &TransactionReceivedTrigger{Category: strPtr("Transporte")}, false},
		{"descrição contém, ignora caixa", &TransactionReceivedTrigger{DescriptionContains: strPtr("mercado")}, true},
		{"descrição não contém", &TransactionReceivedTrigger{DescriptionContains: strPtr("farmácia")}, false},
		{"mínimo zero explícito casa", &TransactionReceivedTrigger{AmountMin: floatPtr(0)}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EvaluateTrigger(tt.trigger, &EvalContext{Transaction: tx})
			if got != tt.want {
				t.Errorf("casou = %v, esperava %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateTrigger_BalanceBelow_StrictThreshold(t *testing.T) {
	t.Parallel()

	trigger := &BalanceBelowTrigger{
		AccountId: pkg.GenerateULIDObject(),
		Threshold: floatPtr(500),
	}
	tx := sampleTx(10)

	tests := []struct {
		name    string
		balance *float64
		want    bool
	}{
		{"abaixo do limiar", floatPtr(499.99), true},
		{"exatamente no limiar não dispara", floatPtr(500), false},
		{"acima do limiar", floatPtr(600), false},
		{"conta não encontrada", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EvaluateTrigger(trigger, &EvalContext{Transaction: tx, Balance: tt.balance})
			if got != tt.want {
				t.Errorf("casou = %v, esperava %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateTrigger_BalanceBelow_WithoutThreshold(t *testing.T) {
	t.Parallel()

	trigger := &BalanceBelowTrigger{AccountId: pkg.GenerateULIDObject()}

	if EvaluateTrigger(trigger, &EvalContext{Transaction: sampleTx(10), Balance: floatPtr(0)}) {
		t.Error("gatilho sem limiar configurado nunca deveria casar")
	}
}

func TestEvaluateTrigger_CategoryExceeds_StrictLimit(t *testing.T) {
	t.Parallel()

	trigger := &CategoryExceedsTrigger{Category: "Alimentação", Limit: floatPtr(300)}
	tx := sampleTx(10)

	tests := []struct {
		name  string
		spent float64
		want  bool
	}{
		{"acima do limite", 300.01, true},
		{"exatamente no limite não dispara", 300, false},
		{"abaixo do limite", 150, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EvaluateTrigger(trigger, &EvalContext{Transaction: tx, CategorySpent: tt.spent})
			if got != tt.want {
				t.Errorf("gasto %v: casou = %v, esperava %v", tt.spent, got, tt.want)
			}
		})
	}
}

type fakeInvoiceCreator struct {
	calls []struct {
		amount      float64
		description string
	}
	err error
}

func (f *fakeInvoiceCreator) CreateFromAutomation(ctx context.Context, userID ulid.ULID, amount float64, description string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, struct {
		amount      float64
		description string
	}{amount, description})
	return nil
}

type fakeNotifier struct {
	titles []string
	bodies []string
}

func (f *fakeNotifier) Notify(ctx context.Context, userID ulid.ULID, title, body string) error {
	f.titles = append(f.titles, title)
	f.bodies = append(f.bodies, body)
	return nil
}

type fakeTagger struct {
	tags []string
}

func (f *fakeTagger) AddTag(ctx context.Context, transactionID, userID ulid.ULID, tag string) error {
	f.tags = append(f.tags, tag)
	return nil
}

type fakeSpendReader struct {
	refs  []time.Time
	spent float64
}

func (f *fakeSpendReader) CategoryMonthExpenses(ctx context.Context, userID ulid.ULID, category string, ref time.Time) (float64, error) {
	f.refs = append(f.refs, ref)
	return f.spent, nil
}

func TestFire_CategoryExceedsUsesReferenceInstant(t *testing.T) {
	t.Parallel()

	spending := &fakeSpendReader{spent: 400}
	notifier := &fakeNotifier{}
	engine := &Engine{Spending: spending, Notifier: notifier}

	rule := &Rule{
		Id:      pkg.GenerateULIDObject(),
		UserId:  pkg.GenerateULIDObject(),
		Name:    "Estouro de categoria",
		Trigger: &CategoryExceedsTrigger{Category: "Alimentação", Limit: floatPtr(300)},
		Action:  &SendNotificationAction{},
	}
	ref := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	result := engine.Fire(context.Background(), rule, sampleTx(10), ref)
	if !result.Matched {
		t.Fatal("gatilho deveria ter casado")
	}
	// o mês de referência do gasto acumulado é o instante recebido, não o
	// relógio do processo
	if len(spending.refs) != 1 || !spending.refs[0].Equal(ref) {
		t.Errorf("instante repassado = %v, esperava %v", spending.refs, ref)
	}
	if len(notifier.titles) != 1 {
		t.Errorf("esperava 1 notificação, recebeu %d", len(notifier.titles))
	}
}

func TestDispatch_AddTagWithoutTagIsNoop(t *testing.T) {
	t.Parallel()

	tagger := &fakeTagger{}
	engine := &Engine{Tagger: tagger}
	rule := &Rule{Name: "Etiquetar", Action: &AddTagAction{}}

	if err := engine.Dispatch(context.Background(), rule, sampleTx(10)); err != nil {
		t.Fatalf("no-op não deveria falhar: %v", err)
	}
	if len(tagger.tags) != 0 {
		t.Error("sem etiqueta configurada nada deveria ser aplicado")
	}
}

func TestDispatch_AddTagWithoutTaggerIsNoop(t *testing.T) {
	t.Parallel()

	engine := &Engine{}
	rule := &Rule{Name: "Etiquetar", Action: &AddTagAction{Tag: "recorrente"}}

	if err := engine.Dispatch(context.Background(), rule, sampleTx(10)); err != nil {
		t.Fatalf("colaborador ausente não deveria falhar: %v", err)
	}
}

func TestDispatch_CreateInvoice(t *testing.T) {
	t.Parallel()

	t.Run("descrição cai para a da transação", func(t *testing.T) {
		t.Parallel()

		invoices := &fakeInvoiceCreator{}
		engine := &Engine{Invoices: invoices}
		rule := &Rule{Name: "Faturar", Action: &CreateInvoiceAction{Amount: floatPtr(250)}}
		tx := sampleTx(10)

		if err := engine.Dispatch(context.Background(), rule, tx); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(invoices.calls) != 1 {
			t.Fatalf("esperava 1 fatura, recebeu %d", len(invoices.calls))
		}
		if invoices.calls[0].amount != 250 || invoices.calls[0].description != tx.Description {
			t.Errorf("fatura criada com %+v", invoices.calls[0])
		}
	})

	t.Run("sem valor configurado é no-op", func(t *testing.T) {
		t.Parallel()

		invoices := &fakeInvoiceCreator{}
		engine := &Engine{Invoices: invoices}
		rule := &Rule{Name: "Faturar", Action: &CreateInvoiceAction{}}

		if err := engine.Dispatch(context.Background(), rule, sampleTx(10)); err != nil {
			t.Fatalf("no-op não deveria falhar: %v", err)
		}
		if len(invoices.calls) != 0 {
			t.Error("fatura não deveria ter sido criada")
		}
	})
}

func TestDispatch_SendNotificationDefaults(t *testing.T) {
	t.Parallel()

	notifier := &fakeNotifier{}
	engine := &Engine{Notifier: notifier}
	rule := &Rule{Name: "Alerta de gasto", Action: &SendNotificationAction{}}
	tx := sampleTx(10)

	if err := engine.Dispatch(context.Background(), rule, tx); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(notifier.titles) != 1 {
		t.Fatalf("esperava 1 notificação, recebeu %d", len(notifier.titles))
	}
	if notifier.titles[0] == "" || notifier.bodies[0] == "" {
		t.Error("título e corpo deveriam receber textos padrão")
	}
}
