package infrastructure

import (
	"context"
	"time"

	"Fluxo/internal/domain/automation"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type AutomationRepository struct {
	DB *gorm.DB
}

var _ automation.Repository = (*AutomationRepository)(nil)

func NewAutomationRepository(db *gorm.DB) *AutomationRepository {
	return &AutomationRepository{DB: db}
}

// automationRuleDB é a projeção persistida de uma regra: as variantes de
// gatilho e ação viram tipo + configuração jsonb e são reconstruídas na
// leitura.
type automationRuleDB struct {
	Id            string     `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId        string     `gorm:"type:varchar(26);index:idx_automation_rules_user_id;not null;column:user_id"`
	Name          string     `gorm:"type:varchar(255);not null;column:name"`
	Description   string     `gorm:"type:varchar(255);column:description"`
	IsActive      bool       `gorm:"not null;default:true;index:idx_automation_rules_active;column:is_active"`
	TriggerType   string     `gorm:"type:varchar(30);not null;column:trigger_type"`
	TriggerConfig []byte     `gorm:"type:jsonb;column:trigger_config"`
	ActionType    string     `gorm:"type:varchar(30);not null;column:action_type"`
	ActionConfig  []byte     `gorm:"type:jsonb;column:action_config"`
	LastTriggered *time.Time `gorm:"column:last_triggered"`
	TriggerCount  int        `gorm:"not null;default:0;column:trigger_count"`
	CreatedAt     time.Time  `gorm:"not null;column:created_at"`
	UpdatedAt     time.Time  `gorm:"not null;column:updated_at"`
}

func (automationRuleDB) TableName() string {
	return "automation_rules"
}

func toDomainRule(row *automationRuleDB) (*automation.Rule, error) {
	id, err := pkg.ParseULID(row.Id)
	if err != nil {
		return nil, err
	}
	userID, err := pkg.ParseULID(row.UserId)
	if err != nil {
		return nil, err
	}

	trigger, err := automation.ParseTrigger(automation.TriggerType(row.TriggerType), row.TriggerConfig)
	if err != nil {
		return nil, err
	}
	action, err := automation.ParseAction(automation.ActionType(row.ActionType), row.ActionConfig)
	if err != nil {
		return nil, err
	}

	return &automation.Rule{
		Id:            id,
		UserId:        userID,
		Name:          row.Name,
		Description:   row.Description,
		IsActive:      row.IsActive,
		Trigger:       trigger,
		Action:        action,
		LastTriggered: row.LastTriggered,
		TriggerCount:  row.TriggerCount,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func toDBRule(rule *automation.Rule) (*automationRuleDB, error) {
	triggerType, triggerConfig, err := automation.EncodeTrigger(rule.Trigger)
	if err != nil {
		return nil, err
	}
	actionType, actionConfig, err := automation.EncodeAction(rule.Action)
	if err != nil {
		return nil, err
	}

	return &automationRuleDB{
		Id:            rule.Id.String(),
		UserId:        rule.UserId.String(),
		Name:          rule.Name,
		Description:   rule.Description,
		IsActive:      rule.IsActive,
		TriggerType:   string(triggerType),
		TriggerConfig: triggerConfig,
		ActionType:    string(actionType),
		ActionConfig:  actionConfig,
		LastTriggered: rule.LastTriggered,
		TriggerCount:  rule.TriggerCount,
		CreatedAt:     rule.CreatedAt,
		UpdatedAt:     rule.UpdatedAt,
	}, nil
}

func (r *AutomationRepository) Create(ctx context.Context, rule *automation.Rule) error {
	row, err := toDBRule(rule)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Create(row).Error
}

func (r *AutomationRepository) Update(ctx context.Context, rule *automation.Rule) error {
	row, err := toDBRule(rule)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Model(&automationRuleDB{}).
		Where("id = ? AND user_id = ?", row.Id, row.UserId).
		Select("name", "description", "is_active", "trigger_type", "trigger_config", "action_type", "action_config", "updated_at").
		Updates(row).Error
}

func (r *AutomationRepository) Delete(ctx context.Context, ruleID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", ruleID.String(), userID.String()).
		Delete(&automationRuleDB{}).Error
}

func (r *AutomationRepository) GetByID(ctx context.Context, ruleID, userID ulid.ULID) (*automation.Rule, error) {
	var row automationRuleDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", ruleID.String(), userID.String()).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return toDomainRule(&row)
}

func (r *AutomationRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*automation.Rule, int64, error) {
	query := r.DB.WithContext(ctx).Model(&automationRuleDB{}).Where("user_id = ?", userID.String())

	rows, total, err := pkg.Paginate[automationRuleDB](query, pagination, "created_at DESC")
	if err != nil {
		return nil, 0, err
	}

	rules := make([]*automation.Rule, 0, len(rows))
	for _, row := range rows {
		rule, err := toDomainRule(row)
		if err != nil {
			return nil, 0, err
		}
		rules = append(rules, rule)
	}
	return rules, total, nil
}

func (r *AutomationRepository) GetActiveByUserID(ctx context.Context, userID ulid.ULID) ([]*automation.Rule, error) {
	var rows []automationRuleDB
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID.String(), true).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	rules := make([]*automation.Rule, 0, len(rows))
	for i := range rows {
		rule, err := toDomainRule(&rows[i])
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (r *AutomationRepository) RecordFired(ctx context.Context, ruleID ulid.ULID, at time.Time) error {
	return r.DB.WithContext(ctx).Model(&automationRuleDB{}).
		Where("id = ?", ruleID.String()).
		Updates(map[string]interface{}{
			"last_triggered": at,
			"trigger_count":  gorm.Expr("trigger_count + 1"),
			"updated_at":     at,
		}).Error
}
