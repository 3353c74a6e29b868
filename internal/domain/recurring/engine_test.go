package recurring

import (
	"strings"
	"testing"
	"time"

	"Fluxo/internal/domain/transaction"
	"Fluxo/internal/pkg"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func monthlyRule(next time.Time) *RecurringRule {
	return &RecurringRule{
		Id:          pkg.GenerateULIDObject(),
		UserId:      pkg.GenerateULIDObject(),
		AccountId:   pkg.GenerateULIDObject(),
		Description: "Aluguel",
		Amount:      1500,
		Type:        transaction.Expense,
		Category:    "Moradia",
		Frequency:   FrequencyMonthly,
		DayOfMonth:  next.Day(),
		StartDate:   next,
		NextRun:     next,
		IsActive:    true,
	}
}

func TestMaterializeDue_CatchesUpMissedPeriods(t *testing.T) {
	t.Parallel()

	rule := monthlyRule(date(2024, time.January, 15))
	asOf := date(2024, time.April, 20)

	result := MaterializeDue([]*RecurringRule{rule}, asOf)

	if len(result.Transactions) != 4 {
		t.Fatalf("esperava 4 transações, recebeu %d", len(result.Transactions))
	}

	wantDates := []time.Time{
		date(2024, time.January, 15),
		date(2024, time.February, 15),
		date(2024, time.March, 15),
		date(2024, time.April, 15),
	}
	for i, tx := range result.Transactions {
		if !tx.Date.Equal(wantDates[i]) {
			t.Errorf("transação %d: data = %v, esperava %v", i, tx.Date, wantDates[i])
		}
		if tx.OriginRuleId == nil || *tx.OriginRuleId != rule.Id {
			t.Errorf("transação %d: OriginRuleId não aponta para a regra", i)
		}
		if tx.Amount != rule.Amount || tx.Type != rule.Type {
			t.Errorf("transação %d: valor/tipo divergem da regra", i)
		}
		if !strings.HasSuffix(tx.Description, GeneratedSuffix) {
			t.Errorf("transação %d: descrição %q sem sufixo de recorrência", i, tx.Description)
		}
	}

	if len(result.UpdatedRules) != 1 {
		t.Fatalf("esperava 1 regra atualizada, recebeu %d", len(result.UpdatedRules))
	}
	wantNext := date(2024, time.May, 15)
	if !result.UpdatedRules[0].NextRun.Equal(wantNext) {
		t.Errorf("NextRun = %v, esperava %v", result.UpdatedRules[0].NextRun, wantNext)
	}
}

func TestMaterializeDue_RuleNotDueYet(t *testing.T) {
	t.Parallel()

	rule := monthlyRule(date(2024, time.June, 1))

	result := MaterializeDue([]*RecurringRule{rule}, date(2024, time.May, 31))

	if len(result.Transactions) != 0 {
		t.Errorf("esperava nenhuma transação, recebeu %d", len(result.Transactions))
	}
	if len(result.UpdatedRules) != 0 {
		t.Errorf("regra não vencida não deveria ser atualizada")
	}
}

func TestMaterializeDue_InactiveRuleIsSkipped(t *testing.T) {
	t.Parallel()

	rule := monthlyRule(date(2024, time.January, 1))
	rule.IsActive = false

	result := MaterializeDue([]*RecurringRule{rule}, date(2024, time.December, 31))

	if len(result.Transactions) != 0 {
		t.Errorf("regra inativa gerou %d transações", len(result.Transactions))
	}
	if len(result.UpdatedRules) != 0 {
		t.Errorf("regra inativa não deveria avançar NextRun")
	}
}

func TestMaterializeDue_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	original := date(2024, time.January, 15)
	rule := monthlyRule(original)

	MaterializeDue([]*RecurringRule{rule}, date(2024, time.March, 1))

	if !rule.NextRun.Equal(original) {
		t.Errorf("MaterializeDue mutou a regra de entrada: NextRun = %v", rule.NextRun)
	}
}

func TestMaterializeRule_Yearly(t *testing.T) {
	t.Parallel()

	rule := monthlyRule(date(2022, time.March, 10))
	rule.Frequency = FrequencyYearly

	emitted, next := MaterializeRule(rule, date(2024, time.March, 10))

	if len(emitted) != 3 {
		t.Fatalf("esperava 3 ocorrências anuais, recebeu %d", len(emitted))
	}
	if !next.Equal(date(2025, time.March, 10)) {
		t.Errorf("próximo cursor = %v, esperava 2025-03-10", next)
	}
}

func TestNextOccurrence_MonthlyClampsAndReanchors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		from       time.Time
		dayOfMonth int
		want       time.Time
	}{
		{
			name:       "mes normal",
			from:       date(2024, time.January, 15),
			dayOfMonth: 15,
			want:       date(2024, time.February, 15),
		},
		{
			name:       "trava em fevereiro bissexto",
			from:       date(2024, time.January, 31),
			dayOfMonth: 31,
			want:       date(2024, time.February, 29),
		},
		{
			name:       "trava em fevereiro comum",
			from:       date(2025, time.January, 31),
			dayOfMonth: 31,
			want:       date(2025, time.February, 28),
		},
		{
			name:       "reancora no dia da regra depois de travar",
			from:       date(2024, time.February, 29),
			dayOfMonth: 31,
			want:       date(2024, time.March, 31),
		},
		{
			name:       "vira o ano",
			from:       date(2024, time.December, 20),
			dayOfMonth: 20,
			want:       date(2025, time.January, 20),
		},
		{
			name:       "sem dia configurado usa o dia do cursor",
			from:       date(2024, time.May, 7),
			dayOfMonth: 0,
			want:       date(2024, time.June, 7),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NextOccurrence(tt.from, FrequencyMonthly, tt.dayOfMonth)
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence(%v) = %v, esperava %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestNextOccurrence_Yearly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		from       time.Time
		dayOfMonth int
		want       time.Time
	}{
		{
			name:       "data comum",
			from:       date(2024, time.July, 4),
			dayOfMonth: 4,
			want:       date(2025, time.July, 4),
		},
		{
			name:       "29 de fevereiro trava no 28 do ano comum",
			from:       date(2024, time.February, 29),
			dayOfMonth: 29,
			want:       date(2025, time.February, 28),
		},
		{
			name:       "reancora no 29 quando o bissexto volta",
			from:       date(2027, time.February, 28),
			dayOfMonth: 29,
			want:       date(2028, time.February, 29),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NextOccurrence(tt.from, FrequencyYearly, tt.dayOfMonth)
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence(%v) = %v, esperava %v", tt.from, got, tt.want)
			}
		})
	}
}
