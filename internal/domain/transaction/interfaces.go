package transaction

import (
	"context"

	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	Update(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, transactionID ulid.ULID) error
	GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*Transaction, error)
	GetAll(ctx context.Context, userID ulid.ULID, accountID *ulid.ULID, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	GetByMonth(ctx context.Context, userID ulid.ULID, year int, month int) ([]*Transaction, error)
	AddTag(ctx context.Context, transactionID ulid.ULID, tag string) error
}

// AutomationRunner é o gancho para o motor de automações avaliar transações
// recém-criadas. Preenchido via fx depois que ambos os serviços existem.
type AutomationRunner interface {
	RunOnNewTransactions(ctx context.Context, userID ulid.ULID, txs []*Transaction) error
}
