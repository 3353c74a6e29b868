package contracts

import (
	"encoding/json"
	"time"

	"Fluxo/internal/domain/automation"

	"github.com/oklog/ulid/v2"
)

type AutomationTriggerDTO struct {
	Type   string          `json:"type" binding:"required,oneof=TRANSACTION_RECEIVED BALANCE_BELOW CATEGORY_EXCEEDS"`
	Config json.RawMessage `json:"config" binding:"omitempty"`
}

type AutomationActionDTO struct {
	Type   string          `json:"type" binding:"required,oneof=CREATE_INVOICE SEND_NOTIFICATION ADD_TAG"`
	Config json.RawMessage `json:"config" binding:"omitempty"`
}

type AutomationCreateRequest struct {
	Name        string                `json:"name" binding:"required,max=255"`
	Description string                `json:"description" binding:"omitempty,max=255"`
	Trigger     *AutomationTriggerDTO `json:"trigger" binding:"required"`
	Action      *AutomationActionDTO  `json:"action" binding:"required"`
}

type AutomationUpdateRequest struct {
	Name        *string               `json:"name" binding:"omitempty,max=255"`
	Description *string               `json:"description" binding:"omitempty,max=255"`
	Trigger     *AutomationTriggerDTO `json:"trigger" binding:"omitempty"`
	Action      *AutomationActionDTO  `json:"action" binding:"omitempty"`
}

type AutomationRuleResponse struct {
	Id            ulid.ULID            `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	IsActive      bool                 `json:"isActive"`
	Trigger       AutomationTriggerDTO `json:"trigger"`
	Action        AutomationActionDTO  `json:"action"`
	LastTriggered *time.Time           `json:"lastTriggered,omitempty"`
	TriggerCount  int                  `json:"triggerCount"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// NewAutomationRuleResponse achata as variantes de gatilho e ação de volta
// para o par tipo + configuração usado na API.
func NewAutomationRuleResponse(rule *automation.Rule) (*AutomationRuleResponse, error) {
	triggerType, triggerConfig, err := automation.EncodeTrigger(rule.Trigger)
	if err != nil {
		return nil, err
	}

	actionType, actionConfig, err := automation.EncodeAction(rule.Action)
	if err != nil {
		return nil, err
	}

	return &AutomationRuleResponse{
		Id:          rule.Id,
		Name:        rule.Name,
		Description: rule.Description,
		IsActive:    rule.IsActive,
		Trigger: AutomationTriggerDTO{
			Type:   string(triggerType),
			Config: json.RawMessage(triggerConfig),
		},
		Action: AutomationActionDTO{
			Type:   string(actionType),
			Config: json.RawMessage(actionConfig),
		},
		LastTriggered: rule.LastTriggered,
		TriggerCount:  rule.TriggerCount,
		CreatedAt:     rule.CreatedAt,
		UpdatedAt:     rule.UpdatedAt,
	}, nil
}

type AutomationCreateResponse struct {
	Message string                  `json:"message"`
	Rule    *AutomationRuleResponse `json:"rule"`
}

type AutomationSingleResponse struct {
	Rule *AutomationRuleResponse `json:"rule"`
}
