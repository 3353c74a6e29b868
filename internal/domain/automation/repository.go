package automation

import (
	"context"
	"time"

	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, rule *Rule) error
	Update(ctx context.Context, rule *Rule) error
	Delete(ctx context.Context, ruleID, userID ulid.ULID) error
	GetByID(ctx context.Context, ruleID, userID ulid.ULID) (*Rule, error)
	GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Rule, int64, error)
	// GetActiveByUserID devolve as regras ativas na ordem de criação, a
	// ordem em que são avaliadas.
	GetActiveByUserID(ctx context.Context, userID ulid.ULID) ([]*Rule, error)
	// RecordFired registra LastTriggered e incrementa TriggerCount.
	RecordFired(ctx context.Context, ruleID ulid.ULID, at time.Time) error
}
