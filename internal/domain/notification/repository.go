package notification

import (
	"context"

	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	Delete(ctx context.Context, notificationID, userID ulid.ULID) error
	GetByID(ctx context.Context, notificationID, userID ulid.ULID) (*Notification, error)
	GetByUserID(ctx context.Context, userID ulid.ULID, unreadOnly bool, pagination *pkg.PaginationParams) ([]*Notification, int64, error)
	MarkRead(ctx context.Context, notificationID, userID ulid.ULID) error
	MarkAllRead(ctx context.Context, userID ulid.ULID) error
	CountUnread(ctx context.Context, userID ulid.ULID) (int64, error)
}
