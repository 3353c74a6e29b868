package goal

import (
	"context"

	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, goalID, userID ulid.ULID) error
	GetByID(ctx context.Context, goalID, userID ulid.ULID) (*Goal, error)
	GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Goal, int64, error)
}
