package infrastructure

import (
	"context"

	"Fluxo/internal/domain/goal"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

var _ goal.Repository = (*GoalRepository)(nil)

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	return r.DB.WithContext(ctx).Create(g).Error
}

func (r *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	return r.DB.WithContext(ctx).Save(g).Error
}

func (r *GoalRepository) Delete(ctx context.Context, goalID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID.String(), userID.String()).
		Delete(&goal.Goal{}).Error
}

func (r *GoalRepository) GetByID(ctx context.Context, goalID, userID ulid.ULID) (*goal.Goal, error) {
	var g goal.Goal
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID.String(), userID.String()).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GoalRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*goal.Goal, int64, error) {
	query := r.DB.WithContext(ctx).Model(&goal.Goal{}).Where("user_id = ?", userID.String())
	return pkg.Paginate[goal.Goal](query, pagination, "created_at DESC")
}
