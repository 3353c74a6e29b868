package investment

import (
	"context"

	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, investment *Investment) error
	Update(ctx context.Context, investment *Investment) error
	Delete(ctx context.Context, investmentID, userID ulid.ULID) error
	GetByID(ctx context.Context, investmentID, userID ulid.ULID) (*Investment, error)
	GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Investment, int64, error)
	GetAllByUserID(ctx context.Context, userID ulid.ULID) ([]*Investment, error)
}
