package automation

import (
	"encoding/json"
	"fmt"

	appErrors "Fluxo/internal/errors"

	"github.com/oklog/ulid/v2"
)

type TriggerType string

const (
	TriggerTransactionReceived TriggerType = "TRANSACTION_RECEIVED"
	TriggerBalanceBelow        TriggerType = "BALANCE_BELOW"
	TriggerCategoryExceeds     TriggerType = "CATEGORY_EXCEEDS"
)

// Trigger é a variante de condição de uma regra de automação. Cada variante
// carrega apenas os campos que usa; combinações inválidas não são
// representáveis.
type Trigger interface {
	TriggerType() TriggerType
	Validate() error
}

// TransactionReceivedTrigger dispara para toda transação nova que satisfaça
// todos os filtros preenchidos. Campos nulos significam "tanto faz". Ponteiros
// distinguem zero configurado de ausente.
type TransactionReceivedTrigger struct {
	AccountId           *ulid.ULID `json:"accountId,omitempty"`
	Category            *string    `json:"category,omitempty"`
	AmountMin           *float64   `json:"amountMin,omitempty"`
	AmountMax           *float64   `json:"amountMax,omitempty"`
	DescriptionContains *string    `json:"descriptionContains,omitempty"`
}

func (*TransactionReceivedTrigger) TriggerType() TriggerType { return TriggerTransactionReceived }

func (t *TransactionReceivedTrigger) Validate() error {
	if t.AmountMin != nil && *t.AmountMin < 0 {
		return appErrors.NewValidationError("amountMin", "não pode ser negativo")
	}
	if t.AmountMax != nil && *t.AmountMax < 0 {
		return appErrors.NewValidationError("amountMax", "não pode ser negativo")
	}
	if t.AmountMin != nil && t.AmountMax != nil && *t.AmountMin > *t.AmountMax {
		return appErrors.NewValidationError("amountMin", "não pode ser maior que amountMax")
	}
	return nil
}

// BalanceBelowTrigger dispara quando o saldo da conta fica estritamente
// abaixo do limiar.
type BalanceBelowTrigger struct {
	AccountId ulid.ULID `json:"accountId"`
	Threshold *float64  `json:"threshold,omitempty"`
}

func (*BalanceBelowTrigger) TriggerType() TriggerType { return TriggerBalanceBelow }

func (t *BalanceBelowTrigger) Validate() error {
	if t.AccountId == (ulid.ULID{}) {
		return appErrors.NewValidationError("accountId", "é obrigatório")
	}
	if t.Threshold == nil {
		return appErrors.NewValidationError("threshold", "é obrigatório")
	}
	return nil
}

// CategoryExceedsTrigger dispara quando o gasto do mês corrente na categoria
// ultrapassa estritamente o limite.
type CategoryExceedsTrigger struct {
	Category string   `json:"category"`
	Limit    *float64 `json:"limit,omitempty"`
}

func (*CategoryExceedsTrigger) TriggerType() TriggerType { return TriggerCategoryExceeds }

func (t *CategoryExceedsTrigger) Validate() error {
	if t.Category == "" {
		return appErrors.NewValidationError("category", "é obrigatória")
	}
	if t.Limit == nil {
		return appErrors.NewValidationError("limit", "é obrigatório")
	}
	if *t.Limit < 0 {
		return appErrors.NewValidationError("limit", "não pode ser negativo")
	}
	return nil
}

// ParseTrigger reconstrói a variante a partir do tipo e da configuração JSON
// persistidos.
func ParseTrigger(triggerType TriggerType, config []byte) (Trigger, error) {
	if len(config) == 0 {
		config = []byte("{}")
	}

	var trigger Trigger
	switch triggerType {
	case TriggerTransactionReceived:
		trigger = &TransactionReceivedTrigger{}
	case TriggerBalanceBelow:
		trigger = &BalanceBelowTrigger{}
	case TriggerCategoryExceeds:
		trigger = &CategoryExceedsTrigger{}
	default:
		return nil, fmt.Errorf("tipo de gatilho desconhecido: %q", triggerType)
	}

	if err := json.Unmarshal(config, trigger); err != nil {
		return nil, fmt.Errorf("configuração de gatilho inválida: %w", err)
	}
	return trigger, nil
}

// EncodeTrigger serializa a variante para persistência.
func EncodeTrigger(trigger Trigger) (TriggerType, []byte, error) {
	config, err := json.Marshal(trigger)
	if err != nil {
		return "", nil, err
	}
	return trigger.TriggerType(), config, nil
}
