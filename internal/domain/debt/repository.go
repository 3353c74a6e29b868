package debt

import (
	"context"

	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, debt *Debt) error
	Update(ctx context.Context, debt *Debt) error
	Delete(ctx context.Context, debtID, userID ulid.ULID) error
	GetByID(ctx context.Context, debtID, userID ulid.ULID) (*Debt, error)
	GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Debt, int64, error)
	SumOpen(ctx context.Context, userID ulid.ULID) (float64, error)
}
