package infrastructure

import (
	"context"

	"Fluxo/internal/domain/budget"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type BudgetRepository struct {
	DB *gorm.DB
}

var _ budget.Repository = (*BudgetRepository)(nil)

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{DB: db}
}

func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	return r.DB.WithContext(ctx).Save(b).Error
}

func (r *BudgetRepository) Delete(ctx context.Context, budgetID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", budgetID.String(), userID.String()).
		Delete(&budget.Budget{}).Error
}

func (r *BudgetRepository) GetByID(ctx context.Context, budgetID, userID ulid.ULID) (*budget.Budget, error) {
	var b budget.Budget
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", budgetID.String(), userID.String()).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BudgetRepository) GetByUserID(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
	var budgets []*budget.Budget
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("category ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}
	return budgets, nil
}
