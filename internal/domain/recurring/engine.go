package recurring

import (
	"time"

	"Fluxo/internal/domain/transaction"
	"Fluxo/internal/pkg"
)

// GeneratedSuffix marca transações materializadas automaticamente a partir
// de uma regra recorrente.
const GeneratedSuffix = " (recorrente)"

type MaterializeResult struct {
	Transactions []*transaction.Transaction
	UpdatedRules []*RecurringRule
}

// MaterializeDue converte o tempo decorrido em lançamentos concretos: para
// cada regra ativa emite uma transação por período vencido entre NextRun e
// asOf, em ordem cronológica, e devolve a regra com NextRun avançado.
// Regras inativas ou ainda não vencidas saem intocadas. A função é pura com
// exceção da geração de ULIDs; quem chama é responsável por persistir
// transações e avanço da regra como uma unidade.
func MaterializeDue(rules []*RecurringRule, asOf time.Time) *MaterializeResult {
	result := &MaterializeResult{}

	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}

		emitted, next := MaterializeRule(rule, asOf)
		if len(emitted) == 0 {
			continue
		}

		updated := *rule
		updated.NextRun = next
		updated.UpdatedAt = asOf

		result.Transactions = append(result.Transactions, emitted...)
		result.UpdatedRules = append(result.UpdatedRules, &updated)
	}

	return result
}

// MaterializeRule emite as ocorrências vencidas de uma única regra e devolve
// o cursor final, sem mutar a regra recebida.
func MaterializeRule(rule *RecurringRule, asOf time.Time) ([]*transaction.Transaction, time.Time) {
	cursor := rule.NextRun
	var emitted []*transaction.Transaction

	for !cursor.After(asOf) {
		originID := rule.Id
		emitted = append(emitted, &transaction.Transaction{
			Id:           pkg.GenerateULIDObject(),
			UserId:       rule.UserId,
			AccountId:    rule.AccountId,
			Type:         rule.Type,
			Category:     rule.Category,
			Amount:       rule.Amount,
			Description:  rule.Description + GeneratedSuffix,
			IsBusiness:   rule.IsBusiness,
			OriginRuleId: &originID,
			Date:         cursor,
		})

		cursor = NextOccurrence(cursor, rule.Frequency, rule.DayOfMonth)
	}

	return emitted, cursor
}

// NextOccurrence avança o cursor um período de calendário, ancorado no dia
// configurado na regra e travado no último dia do mês destino quando ele é
// mais curto, para que uma regra do dia 31 não derive para o dia 28
// permanentemente. O avanço anual trava do mesmo jeito: 29 de fevereiro cai
// para 28 em ano comum em vez de escorregar para 1º de março.
func NextOccurrence(from time.Time, frequency FrequencyType, dayOfMonth int) time.Time {
	year, month, _ := from.Date()
	hour, minute, sec := from.Clock()

	if frequency == FrequencyYearly {
		year++
	} else {
		month++
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, from.Location())

	day := dayOfMonth
	if day <= 0 {
		day = from.Day()
	}
	if last := lastDayOfMonth(first.Year(), first.Month()); day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day, hour, minute, sec, from.Nanosecond(), from.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
