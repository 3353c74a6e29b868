package infrastructure

import (
	"context"

	"Fluxo/internal/domain/debt"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type DebtRepository struct {
	DB *gorm.DB
}

var _ debt.Repository = (*DebtRepository)(nil)

func NewDebtRepository(db *gorm.DB) *DebtRepository {
	return &DebtRepository{DB: db}
}

func (r *DebtRepository) Create(ctx context.Context, d *debt.Debt) error {
	return r.DB.WithContext(ctx).Create(d).Error
}

func (r *DebtRepository) Update(ctx context.Context, d *debt.Debt) error {
	return r.DB.WithContext(ctx).Save(d).Error
}

func (r *DebtRepository) Delete(ctx context.Context, debtID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", debtID.String(), userID.String()).
		Delete(&debt.Debt{}).Error
}

func (r *DebtRepository) GetByID(ctx context.Context, debtID, userID ulid.ULID) (*debt.Debt, error) {
	var d debt.Debt
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", debtID.String(), userID.String()).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DebtRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*debt.Debt, int64, error) {
	query := r.DB.WithContext(ctx).Model(&debt.Debt{}).Where("user_id = ?", userID.String())
	return pkg.Paginate[debt.Debt](query, pagination, "created_at DESC")
}

func (r *DebtRepository) SumOpen(ctx context.Context, userID ulid.ULID) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Model(&debt.Debt{}).
		Where("user_id = ? AND is_settled = ?", userID.String(), false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
