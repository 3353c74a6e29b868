package invoice

import (
	"context"
	"time"

	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, invoice *Invoice) error
	Update(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, invoiceID, userID ulid.ULID) error
	GetByID(ctx context.Context, invoiceID, userID ulid.ULID) (*Invoice, error)
	GetByUserID(ctx context.Context, userID ulid.ULID, status *InvoiceStatus, pagination *pkg.PaginationParams) ([]*Invoice, int64, error)
	// MarkOverdue move faturas SENT com vencimento anterior a asOf para
	// OVERDUE e devolve quantas mudaram.
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}
