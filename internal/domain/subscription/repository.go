package subscription

import (
	"context"
	"time"

	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
	Update(ctx context.Context, subscription *Subscription) error
	Delete(ctx context.Context, subscriptionID, userID ulid.ULID) error
	GetByID(ctx context.Context, subscriptionID, userID ulid.ULID) (*Subscription, error)
	GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Subscription, int64, error)
	GetDueBefore(ctx context.Context, userID ulid.ULID, until time.Time) ([]*Subscription, error)
}
