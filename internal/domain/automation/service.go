package automation

import (
	"context"
	"errors"
	"strings"
	"time"

	"Fluxo/internal/domain/shared"
	"Fluxo/internal/domain/transaction"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/logger"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
	Engine     *Engine
	shared.BaseService
}

func NewService(repo Repository, engine *Engine, userChecker *shared.UserCheckerService) *Service {
	return &Service{
		Repository: repo,
		Engine:     engine,
		BaseService: shared.BaseService{
			UserChecker: userChecker,
		},
	}
}

func (s *Service) CreateRule(ctx context.Context, rule *Rule) error {
	if err := s.EnsureUserExists(ctx, rule.UserId); err != nil {
		return err
	}

	if err := s.validate(rule); err != nil {
		return err
	}

	now := time.Now()
	if pkg.IsEmptyULID(rule.Id) {
		rule.Id = pkg.GenerateULIDObject()
	}
	rule.Name = strings.TrimSpace(rule.Name)
	rule.IsActive = true
	rule.LastTriggered = nil
	rule.TriggerCount = 0
	rule.CreatedAt = now
	rule.UpdatedAt = now

	if err := s.Repository.Create(ctx, rule); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) UpdateRule(ctx context.Context, rule *Rule) error {
	stored, err := s.GetRuleByID(ctx, rule.Id, rule.UserId)
	if err != nil {
		return err
	}

	if err := s.validate(rule); err != nil {
		return err
	}

	// contadores e carimbo de disparo pertencem ao motor, não à edição
	stored.Name = strings.TrimSpace(rule.Name)
	stored.Description = rule.Description
	stored.Trigger = rule.Trigger
	stored.Action = rule.Action
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) DeleteRule(ctx context.Context, ruleID, userID ulid.ULID) error {
	if _, err := s.GetRuleByID(ctx, ruleID, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, ruleID, userID)
}

func (s *Service) GetRuleByID(ctx context.Context, ruleID, userID ulid.ULID) (*Rule, error) {
	rule, err := s.Repository.GetByID(ctx, ruleID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrAutomationNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return rule, nil
}

func (s *Service) ListRules(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Rule, int64, error) {
	rules, total, err := s.Repository.GetByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return rules, total, nil
}

func (s *Service) SetActive(ctx context.Context, ruleID, userID ulid.ULID, active bool) error {
	rule, err := s.GetRuleByID(ctx, ruleID, userID)
	if err != nil {
		return err
	}

	if rule.IsActive == active {
		return nil
	}

	rule.IsActive = active
	rule.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, rule); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

// RunOnNewTransactions avalia todas as regras ativas do usuário contra cada
// transação recém-criada, em ordem de criação das regras. Falha no despacho
// de uma regra não impede as seguintes; o disparo é registrado mesmo quando
// o colaborador falha.
func (s *Service) RunOnNewTransactions(ctx context.Context, userID ulid.ULID, txs []*transaction.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	rules, err := s.Repository.GetActiveByUserID(ctx, userID)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if len(rules) == 0 {
		return nil
	}

	now := time.Now()
	for _, tx := range txs {
		for _, rule := range rules {
			result := s.Engine.Fire(ctx, rule, tx, now)
			if !result.Matched {
				continue
			}

			if result.DispatchErr != nil {
				logger.Warn().Err(result.DispatchErr).
					Str("rule_id", rule.Id.String()).
					Str("transaction_id", tx.Id.String()).
					Msg("Ação de automação falhou no despacho")
			}

			if err := s.Repository.RecordFired(ctx, rule.Id, now); err != nil {
				logger.Error().Err(err).
					Str("rule_id", rule.Id.String()).
					Msg("Falha ao registrar disparo de automação")
			}
		}
	}

	return nil
}

func (s *Service) validate(rule *Rule) error {
	if strings.TrimSpace(rule.Name) == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}

	if rule.Trigger == nil {
		return appErrors.NewValidationError("trigger", "é obrigatório")
	}
	if err := rule.Trigger.Validate(); err != nil {
		return err
	}

	if rule.Action == nil {
		return appErrors.NewValidationError("action", "é obrigatória")
	}
	return rule.Action.Validate()
}
