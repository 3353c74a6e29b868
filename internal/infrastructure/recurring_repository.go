package infrastructure

import (
	"context"
	"time"

	"Fluxo/internal/domain/recurring"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type RecurringRepository struct {
	DB *gorm.DB
}

var _ recurring.Repository = (*RecurringRepository)(nil)

func NewRecurringRepository(db *gorm.DB) *RecurringRepository {
	return &RecurringRepository{DB: db}
}

func (r *RecurringRepository) Create(ctx context.Context, rule *recurring.RecurringRule) error {
	return r.DB.WithContext(ctx).Create(rule).Error
}

func (r *RecurringRepository) Update(ctx context.Context, rule *recurring.RecurringRule) error {
	return r.DB.WithContext(ctx).Save(rule).Error
}

func (r *RecurringRepository) Delete(ctx context.Context, ruleID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", ruleID.String(), userID.String()).
		Delete(&recurring.RecurringRule{}).Error
}

func (r *RecurringRepository) GetByID(ctx context.Context, ruleID, userID ulid.ULID) (*recurring.RecurringRule, error) {
	var rule recurring.RecurringRule
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", ruleID.String(), userID.String()).
		First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *RecurringRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*recurring.RecurringRule, int64, error) {
	query := r.DB.WithContext(ctx).Model(&recurring.RecurringRule{}).Where("user_id = ?", userID.String())
	return pkg.Paginate[recurring.RecurringRule](query, pagination, "created_at DESC")
}

func (r *RecurringRepository) GetDueRules(ctx context.Context, asOf time.Time) ([]*recurring.RecurringRule, error) {
	var rules []*recurring.RecurringRule
	err := r.DB.WithContext(ctx).
		Where("is_active = ? AND next_run <= ?", true, asOf).
		Order("next_run ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *RecurringRepository) AdvanceNextRun(ctx context.Context, ruleID ulid.ULID, expected, next time.Time) (int64, error) {
	result := r.DB.WithContext(ctx).Model(&recurring.RecurringRule{}).
		Where("id = ? AND next_run = ?", ruleID.String(), expected).
		Updates(map[string]interface{}{
			"next_run":   next,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
