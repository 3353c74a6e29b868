package budget

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, budget *Budget) error
	Update(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, budgetID, userID ulid.ULID) error
	GetByID(ctx context.Context, budgetID, userID ulid.ULID) (*Budget, error)
	GetByUserID(ctx context.Context, userID ulid.ULID) ([]*Budget, error)
}
