package recurring

import (
	"context"
	"errors"
	"strings"
	"time"

	"Fluxo/internal/domain/account"
	"Fluxo/internal/domain/shared"
	"Fluxo/internal/domain/transaction"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/logger"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository   Repository
	Transactions *transaction.Service
	Accounts     *account.Service
	shared.BaseService
}

func NewService(repo Repository, txSvc *transaction.Service, accountSvc *account.Service, userChecker *shared.UserCheckerService) *Service {
	return &Service{
		Repository:   repo,
		Transactions: txSvc,
		Accounts:     accountSvc,
		BaseService: shared.BaseService{
			UserChecker: userChecker,
		},
	}
}

func (s *Service) CreateRule(ctx context.Context, rule *RecurringRule) error {
	if err := s.EnsureUserExists(ctx, rule.UserId); err != nil {
		return err
	}

	if err := s.validate(rule); err != nil {
		return err
	}

	if _, err := s.Accounts.GetAccountByID(ctx, rule.AccountId, rule.UserId); err != nil {
		return err
	}

	now := time.Now()
	if pkg.IsEmptyULID(rule.Id) {
		rule.Id = pkg.GenerateULIDObject()
	}
	if rule.StartDate.IsZero() {
		rule.StartDate = now
	}
	if rule.DayOfMonth <= 0 {
		rule.DayOfMonth = rule.StartDate.Day()
	}
	rule.Description = strings.TrimSpace(rule.Description)
	rule.NextRun = rule.StartDate
	rule.IsActive = true
	rule.CreatedAt = now
	rule.UpdatedAt = now

	if err := s.Repository.Create(ctx, rule); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) UpdateRule(ctx context.Context, rule *RecurringRule) error {
	stored, err := s.GetRuleByID(ctx, rule.Id, rule.UserId)
	if err != nil {
		return err
	}

	if err := s.validate(rule); err != nil {
		return err
	}

	if rule.AccountId != stored.AccountId {
		if _, err := s.Accounts.GetAccountByID(ctx, rule.AccountId, rule.UserId); err != nil {
			return err
		}
	}

	// NextRun não é editável: trocar frequência ou dia vale a partir do
	// próximo avanço, sem reabrir períodos já processados
	stored.Description = strings.TrimSpace(rule.Description)
	stored.Amount = rule.Amount
	stored.Type = rule.Type
	stored.Category = rule.Category
	stored.AccountId = rule.AccountId
	stored.Frequency = rule.Frequency
	if rule.DayOfMonth > 0 {
		stored.DayOfMonth = rule.DayOfMonth
	}
	stored.IsBusiness = rule.IsBusiness
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

func (s *Service) GetRuleByID(ctx context.Context, ruleID, userID ulid.ULID) (*RecurringRule, error) {
	rule, err := s.Repository.GetByID(ctx, ruleID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrRecurringNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return rule, nil
}

func (s *Service) ListRules(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*RecurringRule, int64, error) {
	rules, total, err := s.Repository.GetByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return rules, total, nil
}

// SetActive pausa ou retoma uma regra. Retomar não reposiciona NextRun:
// períodos acumulados durante a pausa são materializados no próximo
// processamento.
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

// ProcessOutcome resume o processamento de uma regra. Err preenchido indica
// falha isolada daquela regra; as demais seguem normalmente.
type ProcessOutcome struct {
	RuleId    ulid.ULID
	Generated int
	Err       error
}

// ProcessDueRules materializa as ocorrências vencidas de todas as regras
// ativas com NextRun <= asOf. Chamado pelo worker em intervalo fixo e pela
// rota de processamento manual.
func (s *Service) ProcessDueRules(ctx context.Context, asOf time.Time) ([]ProcessOutcome, error) {
	rules, err := s.Repository.GetDueRules(ctx, asOf)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	outcomes := make([]ProcessOutcome, 0, len(rules))
	for _, rule := range rules {
		outcome := s.processRule(ctx, rule, asOf)
		if outcome.Err != nil {
			logger.Error().Err(outcome.Err).
				Str("rule_id", rule.Id.String()).
				Msg("Falha ao processar regra recorrente")
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// ProcessRule materializa uma única regra sob demanda, checando posse.
func (s *Service) ProcessRule(ctx context.Context, ruleID, userID ulid.ULID, asOf time.Time) (ProcessOutcome, error) {
	rule, err := s.GetRuleByID(ctx, ruleID, userID)
	if err != nil {
		return ProcessOutcome{}, err
	}

	if !rule.IsActive {
		return ProcessOutcome{}, appErrors.NewValidationError("isActive", "regra está pausada")
	}

	outcome := s.processRule(ctx, rule, asOf)
	if outcome.Err != nil {
		return outcome, outcome.Err
	}
	return outcome, nil
}

func (s *Service) processRule(ctx context.Context, rule *RecurringRule, asOf time.Time) ProcessOutcome {
	outcome := ProcessOutcome{RuleId: rule.Id}

	if !rule.IsActive {
		return outcome
	}

	emitted, next := MaterializeRule(rule, asOf)
	if len(emitted) == 0 {
		return outcome
	}

	inserted := make([]*transaction.Transaction, 0, len(emitted))
	for _, tx := range emitted {
		if err := s.Transactions.Repository.Create(ctx, tx); err != nil {
			if shared.IsUniqueConstraintError(err) {
				// ocorrência já materializada por uma execução anterior
				continue
			}
			outcome.Err = appErrors.NewDatabaseError(err)
			break
		}

		if err := s.Accounts.UpdateBalance(ctx, tx.AccountId, tx.UserId, tx.SignedAmount()); err != nil {
			// lançamento sem o ajuste de saldo não pode ficar no razão: a
			// ocorrência é desfeita inteira, senão a retomada a descartaria
			// como duplicada e o saldo divergiria para sempre
			if delErr := s.Transactions.Repository.Delete(ctx, tx.Id); delErr != nil {
				logger.Error().Err(delErr).
					Str("transaction_id", tx.Id.String()).
					Msg("Falha ao desfazer lançamento recorrente sem saldo aplicado")
			}
			outcome.Err = err
			break
		}

		inserted = append(inserted, tx)
	}

	outcome.Generated = len(inserted)

	// o cursor só avança com tudo inserido; numa falha parcial a próxima
	// execução retoma do mesmo ponto e o índice único descarta as ocorrências
	// já concluídas
	if outcome.Err == nil {
		rows, err := s.Repository.AdvanceNextRun(ctx, rule.Id, rule.NextRun, next)
		if err != nil {
			outcome.Err = appErrors.NewDatabaseError(err)
		} else if rows == 0 {
			logger.Warn().
				Str("rule_id", rule.Id.String()).
				Time("expected_next_run", rule.NextRun).
				Msg("Cursor da regra avançado por execução concorrente")
		}
	}

	if len(inserted) > 0 {
		s.Transactions.NotifyCreated(ctx, rule.UserId, inserted)
	}

	return outcome
}

func (s *Service) validate(rule *RecurringRule) error {
	if strings.TrimSpace(rule.Description) == "" {
		return appErrors.NewValidationError("description", "é obrigatória")
	}

	if rule.Amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	if !rule.Type.IsValid() {
		return appErrors.NewValidationError("type", "tipo inválido")
	}

	if !rule.Frequency.IsValid() {
		return appErrors.NewValidationError("frequency", "frequência inválida")
	}

	if rule.DayOfMonth < 0 || rule.DayOfMonth > 31 {
		return appErrors.NewValidationError("dayOfMonth", "deve estar entre 1 e 31")
	}

	return nil
}
