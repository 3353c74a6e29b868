package infrastructure

import (
	"context"

	"Fluxo/internal/domain/loan"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type LoanRepository struct {
	DB *gorm.DB
}

var _ loan.Repository = (*LoanRepository)(nil)

func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{DB: db}
}

func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) error {
	return r.DB.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Update(ctx context.Context, l *loan.Loan) error {
	return r.DB.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) Delete(ctx context.Context, loanID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", loanID.String(), userID.String()).
		Delete(&loan.Loan{}).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, loanID, userID ulid.ULID) (*loan.Loan, error) {
	var l loan.Loan
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", loanID.String(), userID.String()).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LoanRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*loan.Loan, int64, error) {
	query := r.DB.WithContext(ctx).Model(&loan.Loan{}).Where("user_id = ?", userID.String())
	return pkg.Paginate[loan.Loan](query, pagination, "created_at DESC")
}
