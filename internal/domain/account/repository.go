package account

import (
	"context"

	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, accountID, userID ulid.ULID) error
	GetById(ctx context.Context, accountID, userID ulid.ULID) (*Account, error)
	GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Account, int64, error)
	GetAllByUserId(ctx context.Context, userID ulid.ULID) ([]*Account, error)
	UpdateBalance(ctx context.Context, accountID ulid.ULID, delta float64) error
	SetBalance(ctx context.Context, accountID ulid.ULID, balance float64) error
	GetTotalBalance(ctx context.Context, userID ulid.ULID) (float64, error)
	SumTransactions(ctx context.Context, accountID ulid.ULID) (float64, error)
}
