package infrastructure

import (
	"context"

	"Fluxo/internal/domain/account"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type AccountRepository struct {
	DB *gorm.DB
}

var _ account.Repository = (*AccountRepository)(nil)

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	return r.DB.WithContext(ctx).Create(acc).Error
}

func (r *AccountRepository) Update(ctx context.Context, acc *account.Account) error {
	return r.DB.WithContext(ctx).Save(acc).Error
}

func (r *AccountRepository) Delete(ctx context.Context, accountID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", accountID.String(), userID.String()).
		Delete(&account.Account{}).Error
}

func (r *AccountRepository) GetById(ctx context.Context, accountID, userID ulid.ULID) (*account.Account, error) {
	var acc account.Account
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", accountID.String(), userID.String()).
		First(&acc).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *AccountRepository) GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*account.Account, int64, error) {
	query := r.DB.WithContext(ctx).Model(&account.Account{}).Where("user_id = ?", userID.String())
	return pkg.Paginate[account.Account](query, pagination, "created_at ASC")
}

func (r *AccountRepository) GetAllByUserId(ctx context.Context, userID ulid.ULID) ([]*account.Account, error) {
	var accounts []*account.Account
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, accountID ulid.ULID, delta float64) error {
	return r.DB.WithContext(ctx).Model(&account.Account{}).
		Where("id = ?", accountID.String()).
		Update("balance", gorm.Expr("balance + ?", delta)).Error
}

func (r *AccountRepository) SetBalance(ctx context.Context, accountID ulid.ULID, balance float64) error {
	return r.DB.WithContext(ctx).Model(&account.Account{}).
		Where("id = ?", accountID.String()).
		Update("balance", balance).Error
}

func (r *AccountRepository) GetTotalBalance(ctx context.Context, userID ulid.ULID) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Model(&account.Account{}).
		Where("user_id = ? AND is_active = ?", userID.String(), true).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&total).Error
	return total, err
}

func (r *AccountRepository) SumTransactions(ctx context.Context, accountID ulid.ULID) (float64, error) {
	var net float64
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("account_id = ?", accountID.String()).
		Select("COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE -amount END), 0)").
		Scan(&net).Error
	return net, err
}
