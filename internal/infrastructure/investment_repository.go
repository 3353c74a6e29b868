package infrastructure

import (
	"context"

	"Fluxo/internal/domain/investment"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type InvestmentRepository struct {
	DB *gorm.DB
}

var _ investment.Repository = (*InvestmentRepository)(nil)

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{DB: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *investment.Investment) error {
	return r.DB.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) Update(ctx context.Context, inv *investment.Investment) error {
	return r.DB.WithContext(ctx).Save(inv).Error
}

func (r *InvestmentRepository) Delete(ctx context.Context, investmentID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", investmentID.String(), userID.String()).
		Delete(&investment.Investment{}).Error
}

func (r *InvestmentRepository) GetByID(ctx context.Context, investmentID, userID ulid.ULID) (*investment.Investment, error) {
	var inv investment.Investment
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", investmentID.String(), userID.String()).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvestmentRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*investment.Investment, int64, error) {
	query := r.DB.WithContext(ctx).Model(&investment.Investment{}).Where("user_id = ?", userID.String())
	return pkg.Paginate[investment.Investment](query, pagination, "symbol ASC")
}

func (r *InvestmentRepository) GetAllByUserID(ctx context.Context, userID ulid.ULID) ([]*investment.Investment, error) {
	var investments []*investment.Investment
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("symbol ASC").
		Find(&investments).Error
	if err != nil {
		return nil, err
	}
	return investments, nil
}
