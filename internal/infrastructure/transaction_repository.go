package infrastructure

import (
	"context"
	"strings"
	"time"

	"Fluxo/internal/domain/transaction"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	return r.DB.WithContext(ctx).Create(tx).Error
}

func (r *TransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	return r.DB.WithContext(ctx).Save(tx).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ?", transactionID.String()).
		Delete(&transaction.Transaction{}).Error
}

func (r *TransactionRepository) GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*transaction.Transaction, error) {
	var tx transaction.Transaction
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID.String(), userID.String()).
		First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) GetAll(ctx context.Context, userID ulid.ULID, accountID *ulid.ULID, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).Model(&transaction.Transaction{}).Where("user_id = ?", userID.String())
	if accountID != nil {
		query = query.Where("account_id = ?", accountID.String())
	}
	return pkg.Paginate[transaction.Transaction](query, pagination, "date DESC")
}

func (r *TransactionRepository) GetByMonth(ctx context.Context, userID ulid.ULID, year int, month int) ([]*transaction.Transaction, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var transactions []*transaction.Transaction
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID.String(), start, end).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// AddTag anexa a etiqueta à lista separada por vírgulas, sem duplicar.
func (r *TransactionRepository) AddTag(ctx context.Context, transactionID ulid.ULID, tag string) error {
	var tx transaction.Transaction
	err := r.DB.WithContext(ctx).
		Where("id = ?", transactionID.String()).
		First(&tx).Error
	if err != nil {
		return err
	}

	tags := []string{}
	if tx.Tags != "" {
		tags = strings.Split(tx.Tags, ",")
	}
	for _, existing := range tags {
		if strings.EqualFold(strings.TrimSpace(existing), tag) {
			return nil
		}
	}
	tags = append(tags, tag)

	return r.DB.WithContext(ctx).Model(&transaction.Transaction{}).
		Where("id = ?", transactionID.String()).
		Update("tags", strings.Join(tags, ",")).Error
}
