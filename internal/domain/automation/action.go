package automation

import (
	"encoding/json"
	"fmt"

	appErrors "Fluxo/internal/errors"
)

type ActionType string

const (
	ActionCreateInvoice    ActionType = "CREATE_INVOICE"
	ActionSendNotification ActionType = "SEND_NOTIFICATION"
	ActionAddTag           ActionType = "ADD_TAG"
)

// Action é a variante de efeito de uma regra de automação.
type Action interface {
	ActionType() ActionType
	Validate() error
}

// CreateInvoiceAction emite uma fatura com numeração automática, vencimento
// em 30 dias e status SENT. Sem valor configurado o despacho vira no-op.
type CreateInvoiceAction struct {
	Amount      *float64 `json:"amount,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (*CreateInvoiceAction) ActionType() ActionType { return ActionCreateInvoice }

func (a *CreateInvoiceAction) Validate() error {
	if a.Amount == nil {
		return appErrors.NewValidationError("amount", "é obrigatório")
	}
	if *a.Amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}
	return nil
}

// SendNotificationAction notifica o usuário. Título e corpo vazios recebem
// textos padrão no despacho.
type SendNotificationAction struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

func (*SendNotificationAction) ActionType() ActionType { return ActionSendNotification }

func (a *SendNotificationAction) Validate() error { return nil }

// AddTagAction etiqueta a transação que disparou a regra. Sem etiqueta
// configurada o despacho vira no-op.
type AddTagAction struct {
	Tag string `json:"tag,omitempty"`
}

func (*AddTagAction) ActionType() ActionType { return ActionAddTag }

func (a *AddTagAction) Validate() error {
	if a.Tag == "" {
		return appErrors.NewValidationError("tag", "é obrigatória")
	}
	return nil
}

// ParseAction reconstrói a variante a partir do tipo e da configuração JSON
// persistidos.
func ParseAction(actionType ActionType, config []byte) (Action, error) {
	if len(config) == 0 {
		config = []byte("{}")
	}

	var action Action
	switch actionType {
	case ActionCreateInvoice:
		action = &CreateInvoiceAction{}
	case ActionSendNotification:
		action = &SendNotificationAction{}
	case ActionAddTag:
		action = &AddTagAction{}
	default:
		return nil, fmt.Errorf("tipo de ação desconhecido: %q", actionType)
	}

	if err := json.Unmarshal(config, action); err != nil {
		return nil, fmt.Errorf("configuração de ação inválida: %w", err)
	}
	return action, nil
}

// EncodeAction serializa a variante para persistência.
func EncodeAction(action Action) (ActionType, []byte, error) {
	config, err := json.Marshal(action)
	if err != nil {
		return "", nil, err
	}
	return action.ActionType(), config, nil
}
