package loan

import (
	"context"

	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, loan *Loan) error
	Update(ctx context.Context, loan *Loan) error
	Delete(ctx context.Context, loanID, userID ulid.ULID) error
	GetByID(ctx context.Context, loanID, userID ulid.ULID) (*Loan, error)
	GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Loan, int64, error)
}
