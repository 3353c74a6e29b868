package recurring

import (
	"context"
	"time"

	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, rule *RecurringRule) error
	Update(ctx context.Context, rule *RecurringRule) error
	Delete(ctx context.Context, ruleID, userID ulid.ULID) error
	GetByID(ctx context.Context, ruleID, userID ulid.ULID) (*RecurringRule, error)
	GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*RecurringRule, int64, error)
	GetDueRules(ctx context.Context, asOf time.Time) ([]*RecurringRule, error)
	// AdvanceNextRun avança o cursor da regra somente se ninguém avançou
	// antes (guarda otimista sobre o valor esperado). Devolve o número de
	// linhas afetadas.
	AdvanceNextRun(ctx context.Context, ruleID ulid.ULID, expected, next time.Time) (int64, error)
}
