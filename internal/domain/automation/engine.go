package automation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Fluxo/internal/domain/transaction"
	"Fluxo/internal/logger"

	"github.com/oklog/ulid/v2"
)

// Colaboradores injetados no motor. Todos opcionais: colaborador ausente
// degrada a ação correspondente para no-op, nunca para erro.

type BalanceReader interface {
	AccountBalance(ctx context.Context, accountID, userID ulid.ULID) (float64, error)
}

type CategorySpendReader interface {
	CategoryMonthExpenses(ctx context.Context, userID ulid.ULID, category string, ref time.Time) (float64, error)
}

type InvoiceCreator interface {
	CreateFromAutomation(ctx context.Context, userID ulid.ULID, amount float64, description string) error
}

type Notifier interface {
	Notify(ctx context.Context, userID ulid.ULID, title, body string) error
}

type Tagger interface {
	AddTag(ctx context.Context, transactionID, userID ulid.ULID, tag string) error
}

// EvalContext é o retrato do estado que um gatilho enxerga: a transação
// observada mais os agregados que a variante precisa, coletados antes da
// avaliação para que EvaluateTrigger continue pura.
type EvalContext struct {
	Transaction *transaction.Transaction
	// Balance é o saldo da conta referida pelo gatilho; nil quando a conta
	// não existe ou não pertence ao usuário.
	Balance *float64
	// CategorySpent é a soma das despesas do mês corrente na categoria do
	// gatilho.
	CategorySpent float64
}

// EvaluateTrigger decide se o gatilho casa com o contexto. Função pura, sem
// efeitos, segura para reavaliação. Configuração incompleta ou referência
// quebrada significam "nunca casa", nunca erro.
func EvaluateTrigger(trigger Trigger, evalCtx *EvalContext) bool {
	tx := evalCtx.Transaction
	if tx == nil {
		return false
	}

	switch t := trigger.(type) {
	case *TransactionReceivedTrigger:
		if t.AccountId != nil && *t.AccountId != tx.AccountId {
			return false
		}
		if t.Category != nil && !strings.EqualFold(*t.Category, tx.Category) {
			return false
		}
		if t.AmountMin != nil && tx.Amount < *t.AmountMin {
			return false
		}
		if t.AmountMax != nil && tx.Amount > *t.AmountMax {
			return false
		}
		if t.DescriptionContains != nil &&
			!strings.Contains(strings.ToLower(tx.Description), strings.ToLower(*t.DescriptionContains)) {
			return false
		}
		return true

	case *BalanceBelowTrigger:
		if evalCtx.Balance == nil || t.Threshold == nil {
			return false
		}
		return *evalCtx.Balance < *t.Threshold

	case *CategoryExceedsTrigger:
		if t.Category == "" || t.Limit == nil {
			return false
		}
		return evalCtx.CategorySpent > *t.Limit
	}

	return false
}

// Engine avalia gatilhos contra o estado atual e despacha as ações
// configuradas através dos colaboradores injetados.
type Engine struct {
	Balances BalanceReader
	Spending CategorySpendReader
	Invoices InvoiceCreator
	Notifier Notifier
	Tagger   Tagger
}

func NewEngine(balances BalanceReader, spending CategorySpendReader) *Engine {
	return &Engine{
		Balances: balances,
		Spending: spending,
	}
}

// FireResult relata o destino de uma regra para uma transação. DispatchErr
// preenchido não desfaz o disparo: a regra casou e conta como executada, a
// falha do colaborador é reportada para log.
type FireResult struct {
	Matched     bool
	DispatchErr error
}

// Fire monta o contexto de avaliação da regra no instante de referência,
// avalia o gatilho e, casando, despacha a ação.
func (e *Engine) Fire(ctx context.Context, rule *Rule, tx *transaction.Transaction, now time.Time) FireResult {
	evalCtx, err := e.buildContext(ctx, rule, tx, now)
	if err != nil {
		// estado inacessível trata-se como "não casa", isolando a regra
		logger.Warn().Err(err).
			Str("rule_id", rule.Id.String()).
			Msg("Falha ao coletar estado para avaliação de automação")
		return FireResult{}
	}

	if !EvaluateTrigger(rule.Trigger, evalCtx) {
		return FireResult{}
	}

	return FireResult{
		Matched:     true,
		DispatchErr: e.Dispatch(ctx, rule, tx),
	}
}

// Dispatch executa a ação da regra. Parâmetro obrigatório ausente ou
// colaborador não injetado degradam para no-op.
func (e *Engine) Dispatch(ctx context.Context, rule *Rule, tx *transaction.Transaction) error {
	switch a := rule.Action.(type) {
	case *CreateInvoiceAction:
		if e.Invoices == nil || a.Amount == nil {
			return nil
		}
		description := a.Description
		if description == "" {
			description = tx.Description
		}
		return e.Invoices.CreateFromAutomation(ctx, rule.UserId, *a.Amount, description)

	case *SendNotificationAction:
		if e.Notifier == nil {
			return nil
		}
		title := a.Title
		if title == "" {
			title = "Automação executada"
		}
		body := a.Body
		if body == "" {
			body = fmt.Sprintf("A regra %q foi disparada pela transação %q", rule.Name, tx.Description)
		}
		return e.Notifier.Notify(ctx, rule.UserId, title, body)

	case *AddTagAction:
		if e.Tagger == nil || a.Tag == "" {
			return nil
		}
		return e.Tagger.AddTag(ctx, tx.Id, rule.UserId, a.Tag)
	}

	return nil
}

func (e *Engine) buildContext(ctx context.Context, rule *Rule, tx *transaction.Transaction, now time.Time) (*EvalContext, error) {
	evalCtx := &EvalContext{Transaction: tx}

	switch t := rule.Trigger.(type) {
	case *BalanceBelowTrigger:
		if e.Balances == nil {
			return evalCtx, nil
		}
		balance, err := e.Balances.AccountBalance(ctx, t.AccountId, rule.UserId)
		if err != nil {
			// conta removida ou de outro usuário: gatilho nunca casa
			return evalCtx, nil
		}
		evalCtx.Balance = &balance

	case *CategoryExceedsTrigger:
		if e.Spending == nil {
			return evalCtx, nil
		}
		spent, err := e.Spending.CategoryMonthExpenses(ctx, rule.UserId, t.Category, now)
		if err != nil {
			return nil, err
		}
		evalCtx.CategorySpent = spent
	}

	return evalCtx, nil
}
